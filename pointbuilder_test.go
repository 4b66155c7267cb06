package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// thresholdLocator reports INTERIOR for any coordinate inside a fixed
// square and EXTERIOR otherwise, regardless of which geometry is asked
// about — a stand-in for a real PointLocator good enough to drive
// BuildPoints' control flow.
type thresholdLocator struct {
	minX, minY, maxX, maxY float64
}

func (tl thresholdLocator) Locate(c Coordinate, g Geometry) Location {
	if c.X >= tl.minX && c.X <= tl.maxX && c.Y >= tl.minY && c.Y <= tl.maxY {
		return LocationInterior
	}
	return LocationExterior
}

func TestBuildPointsSelectsByOpAndDropsCoveredPoints(t *testing.T) {
	geoms := [2]Geometry{fakeGeometry{"A"}, fakeGeometry{"B"}}
	locator := thresholdLocator{minX: 0, minY: 0, maxX: 10, maxY: 10}

	insideBoth := Coordinate{X: 8, Y: 8}    // Interior/Interior, outside the result polygon below
	outsideBoth := Coordinate{X: 50, Y: 50} // Exterior/Exterior -> Intersection drops it

	polys := []PolygonShape{{Shell: []Coordinate{
		{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}, {X: -5, Y: -5},
	}}}
	covered := Coordinate{X: 0, Y: 0} // Interior/Interior, but inside the result polygon already

	result := BuildPoints(Intersection, []Coordinate{insideBoth, outsideBoth, covered}, geoms, locator, polys)

	require.Len(t, result, 1)
	require.Equal(t, insideBoth, result[0])
}
