package geomio

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/obrix/overlay"
)

// Locator implements overlay.PointLocator against github.com/ctessum/geom
// values: for a polygonal operand it converts the coordinate to a geom.Point
// and reuses geom.Point.Within(geom.Polygonal), the library's own ray-casting
// classification, rather than re-deriving one; for a lineal or point-only
// operand it walks the decomposed coordinates directly, since geom has no
// equivalent exported line/point locate helper.
type Locator struct{}

// Locate classifies c against g, which must be a geomio.Geometry (or
// anything implementing overlay.Geometry backed by one of this package's
// adapters). Anything else locates as exterior.
func (Locator) Locate(c overlay.Coordinate, g overlay.Geometry) overlay.Location {
	adapted, ok := g.(Geometry)
	if !ok {
		log.Debug("geomio: Locate called against a non-geomio Geometry, treating as exterior")
		return overlay.LocationExterior
	}
	switch adapted.Dimension() {
	case 2:
		return locatePolygonal(c, adapted)
	case 1:
		return locateLineal(c, adapted)
	case 0:
		return locatePointwise(c, adapted)
	default:
		return overlay.LocationExterior
	}
}

func locatePolygonal(c overlay.Coordinate, g Geometry) overlay.Location {
	poly, ok := g.G.(geom.Polygonal)
	if !ok {
		var mp geom.MultiPolygon
		for _, r := range g.AreaRings() {
			if r.IsShell {
				mp = append(mp, geom.Polygon{})
			}
			if len(mp) == 0 {
				continue
			}
			mp[len(mp)-1] = append(mp[len(mp)-1], pointsFromCoordinates(r.Coordinates))
		}
		poly = mp
	}
	switch toPoint(c).Within(poly) {
	case geom.Inside:
		return overlay.LocationInterior
	case geom.OnEdge:
		return overlay.LocationBoundary
	default:
		return overlay.LocationExterior
	}
}

func locateLineal(c overlay.Coordinate, g Geometry) overlay.Location {
	for _, line := range g.Lines() {
		if len(line) == 0 {
			continue
		}
		if c.Equals(line[0]) || c.Equals(line[len(line)-1]) {
			return overlay.LocationBoundary
		}
		for i := 0; i+1 < len(line); i++ {
			if pointOnSegment(c, line[i], line[i+1]) {
				return overlay.LocationInterior
			}
		}
	}
	return overlay.LocationExterior
}

func locatePointwise(c overlay.Coordinate, g Geometry) overlay.Location {
	for _, p := range g.Points() {
		if p.Equals(c) {
			return overlay.LocationInterior
		}
	}
	return overlay.LocationExterior
}

// pointOnSegment reports whether p lies on the closed segment a-b, within a
// tight numerical tolerance, mirroring geom's own private helper of the same
// name (simplify.go), which this package cannot call directly.
func pointOnSegment(p, a, b overlay.Coordinate) bool {
	const epsilon = 1e-9
	cross := (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
	if math.Abs(cross) > epsilon {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-epsilon && p.X <= math.Max(a.X, b.X)+epsilon &&
		p.Y >= math.Min(a.Y, b.Y)-epsilon && p.Y <= math.Max(a.Y, b.Y)+epsilon
}
