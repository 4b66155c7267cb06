package overlay

// Segment is a directed straight edge between two coordinates, the unit the
// noder and intersector both operate on.
type Segment struct {
	P0, P1 Coordinate
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P0.Distance(s.P1)
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// EnvelopeOverlaps reports whether s and o's axis-aligned bounding boxes
// intersect. Cheap pre-filter used before the full intersection test.
func (s Segment) EnvelopeOverlaps(o Segment) bool {
	sMinX, sMaxX := minmax(s.P0.X, s.P1.X)
	sMinY, sMaxY := minmax(s.P0.Y, s.P1.Y)
	oMinX, oMaxX := minmax(o.P0.X, o.P1.X)
	oMinY, oMaxY := minmax(o.P0.Y, o.P1.Y)
	return sMinX <= oMaxX && sMaxX >= oMinX && sMinY <= oMaxY && sMaxY >= oMinY
}

// DistanceTo returns the shortest distance from p to any point on the
// (closed) segment, clamping the projection to the segment's endpoints.
func (s Segment) DistanceTo(p Coordinate) float64 {
	dx := s.P1.X - s.P0.X
	dy := s.P1.Y - s.P0.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return s.P0.Distance(p)
	}
	t := ((p.X-s.P0.X)*dx + (p.Y-s.P0.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Coordinate{X: s.P0.X + t*dx, Y: s.P0.Y + t*dy}
	return proj.Distance(p)
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
