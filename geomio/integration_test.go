package geomio

import (
	"testing"

	"github.com/obrix/overlay"
	"github.com/stretchr/testify/require"
)

// TestOverlayAgainstRealGeomValues drives the full overlay.Overlay pipeline
// with this package's own Locator and Factory, confirming the adapters are
// enough on their own to run the engine against github.com/ctessum/geom
// values with no test-only stand-ins.
func TestOverlayAgainstRealGeomValues(t *testing.T) {
	a := New(square(0, 0, 10, 10))
	b := New(square(5, 5, 15, 15))

	result, err := overlay.Overlay(a, b, overlay.Intersection, overlay.Options{
		Locator: Locator{},
		Factory: Factory{},
	})
	require.NoError(t, err)
	require.Len(t, result.Polygons, 1)

	out := Factory{}.CreatePolygons(result.Polygons).(Geometry)
	bounds := out.G.Bounds()
	require.InDelta(t, 5, bounds.Min.X, 1e-9)
	require.InDelta(t, 5, bounds.Min.Y, 1e-9)
	require.InDelta(t, 10, bounds.Max.X, 1e-9)
	require.InDelta(t, 10, bounds.Max.Y, 1e-9)
}
