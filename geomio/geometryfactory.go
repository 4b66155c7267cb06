package geomio

import (
	"github.com/ctessum/geom"
	"github.com/obrix/overlay"
)

// Factory implements overlay.GeometryFactory by building the corresponding
// github.com/ctessum/geom value for each output dimension.
type Factory struct{}

// CreateEmpty returns a Geometry wrapping a nil Geom.
func (Factory) CreateEmpty() overlay.Geometry {
	return Geometry{}
}

// CreatePoints wraps coords as a geom.MultiPoint, or a single geom.Point
// when there is exactly one.
func (Factory) CreatePoints(coords []overlay.Coordinate) overlay.Geometry {
	if len(coords) == 0 {
		return Geometry{}
	}
	if len(coords) == 1 {
		return Geometry{G: toPoint(coords[0])}
	}
	return Geometry{G: geom.MultiPoint(pointsFromCoordinates(coords))}
}

// CreateLines wraps lines as a geom.MultiLineString, or a single
// geom.LineString when there is exactly one.
func (Factory) CreateLines(lines [][]overlay.Coordinate) overlay.Geometry {
	if len(lines) == 0 {
		return Geometry{}
	}
	if len(lines) == 1 {
		return Geometry{G: geom.LineString(pointsFromCoordinates(lines[0]))}
	}
	ml := make(geom.MultiLineString, len(lines))
	for i, l := range lines {
		ml[i] = geom.LineString(pointsFromCoordinates(l))
	}
	return Geometry{G: ml}
}

// CreatePolygons wraps polys as a geom.MultiPolygon, or a single
// geom.Polygon when there is exactly one.
func (Factory) CreatePolygons(polys []overlay.PolygonShape) overlay.Geometry {
	if len(polys) == 0 {
		return Geometry{}
	}
	if len(polys) == 1 {
		return Geometry{G: polygonFromShape(polys[0])}
	}
	mp := make(geom.MultiPolygon, len(polys))
	for i, p := range polys {
		mp[i] = polygonFromShape(p)
	}
	return Geometry{G: mp}
}

// CreateCollection wraps a dimensionally-mixed result as a
// geom.GeometryCollection.
func (Factory) CreateCollection(geoms []overlay.Geometry) overlay.Geometry {
	gc := make(geom.GeometryCollection, 0, len(geoms))
	for _, og := range geoms {
		adapted, ok := og.(Geometry)
		if !ok || adapted.G == nil {
			continue
		}
		gc = append(gc, adapted.G)
	}
	return Geometry{G: gc}
}
