package geomio

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/obrix/overlay"
	"github.com/stretchr/testify/require"
)

func TestLocatorClassifiesAgainstPolygon(t *testing.T) {
	g := New(square(0, 0, 10, 10))
	loc := Locator{}

	require.Equal(t, overlay.LocationInterior, loc.Locate(overlay.Coordinate{X: 5, Y: 5}, g))
	require.Equal(t, overlay.LocationBoundary, loc.Locate(overlay.Coordinate{X: 0, Y: 5}, g))
	require.Equal(t, overlay.LocationExterior, loc.Locate(overlay.Coordinate{X: 20, Y: 20}, g))
}

func TestLocatorClassifiesAgainstLine(t *testing.T) {
	g := New(geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}})
	loc := Locator{}

	require.Equal(t, overlay.LocationBoundary, loc.Locate(overlay.Coordinate{X: 0, Y: 0}, g))
	require.Equal(t, overlay.LocationInterior, loc.Locate(overlay.Coordinate{X: 5, Y: 0}, g))
	require.Equal(t, overlay.LocationExterior, loc.Locate(overlay.Coordinate{X: 5, Y: 5}, g))
}

func TestLocatorClassifiesAgainstPoints(t *testing.T) {
	g := New(geom.MultiPoint{{X: 1, Y: 1}, {X: 2, Y: 2}})
	loc := Locator{}

	require.Equal(t, overlay.LocationInterior, loc.Locate(overlay.Coordinate{X: 1, Y: 1}, g))
	require.Equal(t, overlay.LocationExterior, loc.Locate(overlay.Coordinate{X: 9, Y: 9}, g))
}

func TestLocatorNonGeomioGeometryIsExterior(t *testing.T) {
	loc := Locator{}
	require.Equal(t, overlay.LocationExterior, loc.Locate(overlay.Coordinate{X: 0, Y: 0}, fakeGeometry{}))
}

type fakeGeometry struct{}

func (fakeGeometry) Dimension() int                { return 2 }
func (fakeGeometry) IsEmpty() bool                 { return false }
func (fakeGeometry) AreaRings() []overlay.AreaRing { return nil }
func (fakeGeometry) Lines() [][]overlay.Coordinate { return nil }
func (fakeGeometry) Points() []overlay.Coordinate  { return nil }
