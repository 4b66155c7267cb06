package geomio

import (
	"github.com/ctessum/geom"
	"github.com/obrix/overlay"
)

func toCoordinate(p geom.Point) overlay.Coordinate {
	return overlay.Coordinate{X: p.X, Y: p.Y}
}

func toPoint(c overlay.Coordinate) geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

func coordinatesFromPoints(pts []geom.Point) []overlay.Coordinate {
	out := make([]overlay.Coordinate, len(pts))
	for i, p := range pts {
		out[i] = toCoordinate(p)
	}
	return out
}

func pointsFromCoordinates(cs []overlay.Coordinate) []geom.Point {
	out := make([]geom.Point, len(cs))
	for i, c := range cs {
		out[i] = toPoint(c)
	}
	return out
}

// ringsFromPolygon decomposes a geom.Polygon into the engine's AreaRing
// form: its own first ring is the shell, every ring after it is a hole, per
// geom.Polygon's own doc comment ("inner rings should be nested inside of
// the outer ring").
func ringsFromPolygon(p geom.Polygon) []overlay.AreaRing {
	rings := make([]overlay.AreaRing, 0, len(p))
	for i, ring := range p {
		rings = append(rings, overlay.AreaRing{
			Coordinates: coordinatesFromPoints(ring),
			IsShell:     i == 0,
		})
	}
	return rings
}

// polygonFromShape rebuilds a geom.Polygon from a result PolygonShape, shell
// first, holes after, matching geom.Polygon's own ring convention.
func polygonFromShape(shape overlay.PolygonShape) geom.Polygon {
	p := make(geom.Polygon, 0, 1+len(shape.Holes))
	p = append(p, pointsFromCoordinates(shape.Shell))
	for _, h := range shape.Holes {
		p = append(p, pointsFromCoordinates(h))
	}
	return p
}
