package overlay

import "sort"

// NodedSegmentString is one operand edge source — a polygon ring or a
// linestring component — as it moves through the noding pipeline. Noding
// never removes or reorders its original vertices; it only records extra
// points found along each segment, which Split later turns into separate
// edge pieces.
type NodedSegmentString struct {
	GeomIndex int
	IsArea    bool
	IsShell   bool
	Coords    []Coordinate

	added map[int][]addedPoint
}

type addedPoint struct {
	point  Coordinate
	distSq float64
}

// NewNodedSegmentString wraps coords (already closed, first==last, for a
// ring) as one operand edge source.
func NewNodedSegmentString(geomIndex int, coords []Coordinate, isArea, isShell bool) *NodedSegmentString {
	return &NodedSegmentString{
		GeomIndex: geomIndex,
		IsArea:    isArea,
		IsShell:   isShell,
		Coords:    coords,
		added:     make(map[int][]addedPoint),
	}
}

// SegmentCount returns the number of segments in the string.
func (s *NodedSegmentString) SegmentCount() int {
	if len(s.Coords) == 0 {
		return 0
	}
	return len(s.Coords) - 1
}

// SegmentAt returns the i'th segment.
func (s *NodedSegmentString) SegmentAt(i int) Segment {
	return Segment{P0: s.Coords[i], P1: s.Coords[i+1]}
}

// AddIntersection records a point found on segment i. A point equal to
// segment i's own endpoint is already a node (the string's own vertex) and
// is silently ignored — recording it again would split off a zero-length
// piece.
func (s *NodedSegmentString) AddIntersection(segIndex int, p Coordinate) {
	seg := s.SegmentAt(segIndex)
	if p.Equals(seg.P0) || p.Equals(seg.P1) {
		return
	}
	s.added[segIndex] = append(s.added[segIndex], addedPoint{point: p, distSq: squaredDistance(seg.P0, p)})
}

func squaredDistance(a, b Coordinate) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Split returns the coordinate chains between consecutive nodes: the
// string's own endpoints, plus every point AddIntersection recorded, each
// chain ordered as it occurs walking the string from its start.
func (s *NodedSegmentString) Split() [][]Coordinate {
	if len(s.Coords) == 0 {
		return nil
	}
	var pieces [][]Coordinate
	current := []Coordinate{s.Coords[0]}
	for i := 0; i < s.SegmentCount(); i++ {
		points := append([]addedPoint(nil), s.added[i]...)
		sort.Slice(points, func(a, b int) bool { return points[a].distSq < points[b].distSq })
		for _, added := range points {
			current = append(current, added.point)
			pieces = append(pieces, current)
			current = []Coordinate{added.point}
		}
		current = append(current, s.Coords[i+1])
	}
	pieces = append(pieces, current)
	return pieces
}
