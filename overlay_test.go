package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// planarGeometry is a minimal Geometry over plain coordinate rings/lines/
// points, enough to drive Overlay end to end without depending on any
// concrete geometry library.
type planarGeometry struct {
	rings  []AreaRing
	lines  [][]Coordinate
	points []Coordinate
}

func (g planarGeometry) Dimension() int {
	switch {
	case len(g.rings) > 0:
		return 2
	case len(g.lines) > 0:
		return 1
	case len(g.points) > 0:
		return 0
	default:
		return -1
	}
}
func (g planarGeometry) IsEmpty() bool         { return g.Dimension() < 0 }
func (g planarGeometry) AreaRings() []AreaRing { return g.rings }
func (g planarGeometry) Lines() [][]Coordinate { return g.lines }
func (g planarGeometry) Points() []Coordinate  { return g.points }

func squareRing(x0, y0, x1, y1 float64) AreaRing {
	return AreaRing{
		Coordinates: []Coordinate{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}},
		IsShell:     true,
	}
}

// planarLocator does even-odd ray-casting against a planarGeometry's own
// shell rings, treating every ring as a shell (no holes in these tests).
type planarLocator struct{}

func (planarLocator) Locate(c Coordinate, g Geometry) Location {
	pg, ok := g.(planarGeometry)
	if !ok {
		return LocationExterior
	}
	for _, r := range pg.rings {
		if containsPointInRing(r.Coordinates, c) {
			return LocationInterior
		}
	}
	return LocationExterior
}

type planarFactory struct{}

func (planarFactory) CreateEmpty() Geometry                 { return planarGeometry{} }
func (planarFactory) CreatePoints(c []Coordinate) Geometry  { return planarGeometry{points: c} }
func (planarFactory) CreateLines(l [][]Coordinate) Geometry { return planarGeometry{lines: l} }
func (planarFactory) CreatePolygons(polys []PolygonShape) Geometry {
	var rings []AreaRing
	for _, p := range polys {
		rings = append(rings, AreaRing{Coordinates: p.Shell, IsShell: true})
		for _, h := range p.Holes {
			rings = append(rings, AreaRing{Coordinates: h, IsShell: false})
		}
	}
	return planarGeometry{rings: rings}
}
func (planarFactory) CreateCollection(parts []Geometry) Geometry {
	var out planarGeometry
	for _, p := range parts {
		pg := p.(planarGeometry)
		out.rings = append(out.rings, pg.rings...)
		out.lines = append(out.lines, pg.lines...)
		out.points = append(out.points, pg.points...)
	}
	return out
}

func TestOverlayIntersectionOfTwoOverlappingSquares(t *testing.T) {
	a := planarGeometry{rings: []AreaRing{squareRing(0, 0, 10, 10)}}
	b := planarGeometry{rings: []AreaRing{squareRing(5, 5, 15, 15)}}

	result, err := Overlay(a, b, Intersection, Options{Locator: planarLocator{}, Factory: planarFactory{}})
	require.NoError(t, err)
	require.Len(t, result.Polygons, 1)

	shell := result.Polygons[0].Shell
	minX, minY, maxX, maxY := shell[0].X, shell[0].Y, shell[0].X, shell[0].Y
	for _, c := range shell {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	require.InDelta(t, 5, minX, 1e-9)
	require.InDelta(t, 5, minY, 1e-9)
	require.InDelta(t, 10, maxX, 1e-9)
	require.InDelta(t, 10, maxY, 1e-9)
}

func TestOverlayRequiresLocatorAndFactory(t *testing.T) {
	a := planarGeometry{rings: []AreaRing{squareRing(0, 0, 10, 10)}}
	b := planarGeometry{rings: []AreaRing{squareRing(5, 5, 15, 15)}}

	_, err := Overlay(a, b, Intersection, Options{Factory: planarFactory{}})
	require.Error(t, err)

	_, err = Overlay(a, b, Intersection, Options{Locator: planarLocator{}})
	require.Error(t, err)
}

func TestOverlayUnionWithEmptyOperandReturnsOtherOperandUnchanged(t *testing.T) {
	a := planarGeometry{rings: []AreaRing{squareRing(0, 0, 10, 10)}}
	empty := planarGeometry{}

	result, err := Overlay(a, empty, Union, Options{Locator: planarLocator{}, Factory: planarFactory{}})
	require.NoError(t, err)
	require.Len(t, result.Polygons, 1)
	require.Equal(t, a.rings[0].Coordinates, result.Polygons[0].Shell)
}
