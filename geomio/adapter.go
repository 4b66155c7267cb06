package geomio

import (
	"github.com/ctessum/geom"
	"github.com/obrix/overlay"
)

// Geometry adapts a github.com/ctessum/geom value to overlay.Geometry. The
// zero value wraps a nil Geom and behaves as an empty geometry.
type Geometry struct {
	G geom.Geom
}

// New wraps g as an overlay.Geometry.
func New(g geom.Geom) Geometry {
	return Geometry{G: g}
}

// Dimension returns 2 for polygonal, 1 for lineal, 0 for point-only, or -1
// for an empty or dimensionally-mixed geometry (including a
// GeometryCollection whose members don't all share one dimension).
func (g Geometry) Dimension() int {
	rings, lines, points := g.decompose()
	switch {
	case len(rings) > 0 && len(lines) == 0 && len(points) == 0:
		return 2
	case len(lines) > 0 && len(rings) == 0 && len(points) == 0:
		return 1
	case len(points) > 0 && len(rings) == 0 && len(lines) == 0:
		return 0
	default:
		return -1
	}
}

// IsEmpty reports whether g carries no rings, lines, or points at all.
func (g Geometry) IsEmpty() bool {
	rings, lines, points := g.decompose()
	return len(rings) == 0 && len(lines) == 0 && len(points) == 0
}

// AreaRings returns every polygon ring in g, shells before their holes.
func (g Geometry) AreaRings() []overlay.AreaRing {
	rings, _, _ := g.decompose()
	return rings
}

// Lines returns every linestring component of g.
func (g Geometry) Lines() [][]overlay.Coordinate {
	_, lines, _ := g.decompose()
	return lines
}

// Points returns every standalone point component of g.
func (g Geometry) Points() []overlay.Coordinate {
	_, _, points := g.decompose()
	return points
}

// decompose walks g's concrete geom.Geom value, recursing into
// GeometryCollection members, and collects rings/lines/points the way
// overlay.Geometry expects.
func (g Geometry) decompose() (rings []overlay.AreaRing, lines [][]overlay.Coordinate, points []overlay.Coordinate) {
	appendGeom(g.G, &rings, &lines, &points)
	return rings, lines, points
}

func appendGeom(v geom.Geom, rings *[]overlay.AreaRing, lines *[][]overlay.Coordinate, points *[]overlay.Coordinate) {
	switch t := v.(type) {
	case nil:
	case geom.Point:
		*points = append(*points, toCoordinate(t))
	case *geom.Point:
		*points = append(*points, toCoordinate(*t))
	case geom.MultiPoint:
		*points = append(*points, coordinatesFromPoints(t)...)
	case geom.LineString:
		*lines = append(*lines, coordinatesFromPoints(t))
	case geom.MultiLineString:
		for _, l := range t {
			*lines = append(*lines, coordinatesFromPoints(l))
		}
	case geom.Polygon:
		*rings = append(*rings, ringsFromPolygon(t)...)
	case geom.MultiPolygon:
		for _, p := range t {
			*rings = append(*rings, ringsFromPolygon(p)...)
		}
	case geom.GeometryCollection:
		for _, member := range t {
			appendGeom(member, rings, lines, points)
		}
	default:
		log.Debug("geomio: unrecognized geom.Geom type, treating as empty")
	}
}
