package overlay

import "math"

// IntersectionType classifies the outcome of RobustLineIntersector.
type IntersectionType int

const (
	NoIntersection IntersectionType = iota
	PointIntersection
	CollinearIntersection
)

// RobustLineIntersector computes the intersection of two segments using the
// cross-product formulation (adapted from the polyclip/Martinez-Rueda
// segment intersection routine), and additionally classifies whether the
// resulting point(s) fall strictly inside each input segment or coincide
// with one of its endpoints — the distinction the labeller needs that a
// clipper's own intersection test has no reason to make.
type RobustLineIntersector struct {
	kind          IntersectionType
	points        [2]Coordinate
	numIntersects int
	inputs        [2]Segment
}

// ComputeIntersection runs the intersection test for segments s0 and s1.
func (ri *RobustLineIntersector) ComputeIntersection(s0, s1 Segment) {
	ri.inputs[0] = s0
	ri.inputs[1] = s1
	n, p0, p1 := findIntersection(s0, s1)
	ri.numIntersects = n
	switch n {
	case 0:
		ri.kind = NoIntersection
	case 1:
		ri.kind = PointIntersection
		ri.points[0] = p0
	case 2:
		ri.kind = CollinearIntersection
		ri.points[0] = p0
		ri.points[1] = p1
	}
}

// HasIntersection reports whether the segments intersect at all.
func (ri *RobustLineIntersector) HasIntersection() bool { return ri.numIntersects > 0 }

// Type returns the intersection classification from the last ComputeIntersection call.
func (ri *RobustLineIntersector) Type() IntersectionType { return ri.kind }

// IntersectionNum returns how many intersection points were found (0, 1, or
// 2 — 2 only for overlapping collinear segments).
func (ri *RobustLineIntersector) IntersectionNum() int { return ri.numIntersects }

// Intersection returns the i'th intersection point.
func (ri *RobustLineIntersector) Intersection(i int) Coordinate { return ri.points[i] }

// IsInteriorIntersection reports whether any intersection point lies
// strictly inside both input segments (equal to neither segment's
// endpoints). Such a point must become a node in both operands' edges.
func (ri *RobustLineIntersector) IsInteriorIntersection() bool {
	for i := 0; i < ri.numIntersects; i++ {
		if !ri.isEndpoint(i) {
			return true
		}
	}
	return false
}

// IsInteriorIntersectionFor reports whether intersection point i is strictly
// interior to segment geomIndex's endpoints (0 or 1, selecting s0 or s1 as
// passed to ComputeIntersection).
func (ri *RobustLineIntersector) IsInteriorIntersectionFor(geomIndex, i int) bool {
	seg := ri.inputs[geomIndex]
	p := ri.points[i]
	return !p.Equals(seg.P0) && !p.Equals(seg.P1)
}

func (ri *RobustLineIntersector) isEndpoint(i int) bool {
	p := ri.points[i]
	return p.Equals(ri.inputs[0].P0) || p.Equals(ri.inputs[0].P1) ||
		p.Equals(ri.inputs[1].P0) || p.Equals(ri.inputs[1].P1)
}

// findIntersection implements the cross-product segment intersection test:
// parallel segments are handled by projecting onto the first segment's
// direction and intersecting the two 1-D overlap intervals; non-parallel
// segments solve the 2x2 linear system for the two parameters directly.
func findIntersection(seg0, seg1 Segment) (int, Coordinate, Coordinate) {
	var nan Coordinate
	p0 := seg0.P0
	d0 := Coordinate{X: seg0.P1.X - p0.X, Y: seg0.P1.Y - p0.Y}
	p1 := seg1.P0
	d1 := Coordinate{X: seg1.P1.X - p1.X, Y: seg1.P1.Y - p1.Y}
	e := Coordinate{X: p1.X - p0.X, Y: p1.Y - p0.Y}

	kross := d0.X*d1.Y - d0.Y*d1.X
	sqrKross := kross * kross
	sqrLen0 := d0.X*d0.X + d0.Y*d0.Y

	if sqrKross > 0 {
		s := (e.X*d1.Y - e.Y*d1.X) / kross
		if s < 0 || s > 1 {
			return 0, Coordinate{}, Coordinate{}
		}
		t := (e.X*d0.Y - e.Y*d0.X) / kross
		if t < 0 || t > 1 {
			return 0, nan, nan
		}
		pi := Coordinate{X: p0.X + s*d0.X, Y: p0.Y + s*d0.Y}
		return 1, pi, nan
	}

	// lines are parallel
	kross = e.X*d0.Y - e.Y*d0.X
	sqrKross = kross * kross
	if sqrKross > 0 {
		return 0, nan, nan // parallel, not collinear
	}

	if sqrLen0 == 0 {
		return 0, nan, nan
	}
	s0 := (d0.X*e.X + d0.Y*e.Y) / sqrLen0
	s1 := s0 + (d0.X*d1.X+d0.Y*d1.Y)/sqrLen0
	smin := math.Min(s0, s1)
	smax := math.Max(s0, s1)

	w, n := overlapInterval(0, 1, smin, smax)
	if n == 0 {
		return 0, nan, nan
	}
	pi0 := Coordinate{X: p0.X + w[0]*d0.X, Y: p0.Y + w[0]*d0.Y}
	if n == 1 {
		return 1, pi0, nan
	}
	pi1 := Coordinate{X: p0.X + w[1]*d0.X, Y: p0.Y + w[1]*d0.Y}
	return 2, pi0, pi1
}

// overlapInterval intersects [u0,u1] with [v0,v1] and returns the 0, 1, or
// 2 boundary parameters of the overlap.
func overlapInterval(u0, u1, v0, v1 float64) ([2]float64, int) {
	var w [2]float64
	if u1 < v0 || u0 > v1 {
		return w, 0
	}
	if u1 == v0 {
		w[0] = u1
		return w, 1
	}
	if u0 == v1 {
		w[0] = u0
		return w, 1
	}
	if u0 < v0 {
		w[0] = v0
	} else {
		w[0] = u0
	}
	if u1 > v1 {
		w[1] = v1
	} else {
		w[1] = u1
	}
	return w, 2
}
