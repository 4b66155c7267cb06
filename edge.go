package overlay

// Edge is one noded, undirected coordinate chain between two graph nodes,
// carrying the accumulated topological label and area-coverage depth for
// both operands. Two Edges built from the same underlying linework but
// walked in opposite directions are equal up to reversal and are merged by
// EdgeList rather than kept as separate edges.
type Edge struct {
	Coords      []Coordinate
	Label       Label
	Depth       *Depth
	IsCollapsed bool

	// WasArea records whether this edge was built from a polygon ring
	// segment, as opposed to a linestring segment — EdgeList.Partition
	// needs it to decide whether a line-only label is just an ordinary line
	// operand, or an area operand that has dimensionally collapsed.
	WasArea bool
}

// NewEdge builds an edge over coords with the given initial label and a
// fresh, untouched depth.
func NewEdge(coords []Coordinate, label Label, wasArea bool) *Edge {
	return &Edge{Coords: coords, Label: label, Depth: NewDepth(), WasArea: wasArea}
}

// P0 and P1 are the edge's two endpoints, in its stored direction.
func (e *Edge) P0() Coordinate { return e.Coords[0] }
func (e *Edge) P1() Coordinate { return e.Coords[len(e.Coords)-1] }

// EqualsIgnoreDirection reports whether e and o trace the same coordinate
// sequence, either forwards or reversed.
func (e *Edge) EqualsIgnoreDirection(o *Edge) (equal, reversed bool) {
	if len(e.Coords) != len(o.Coords) {
		return false, false
	}
	if coordsEqual(e.Coords, o.Coords) {
		return true, false
	}
	if coordsEqualReversed(e.Coords, o.Coords) {
		return true, true
	}
	return false, false
}

func coordsEqual(a, b []Coordinate) bool {
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func coordsEqualReversed(a, b []Coordinate) bool {
	n := len(a)
	for i := range a {
		if !a[i].Equals(b[n-1-i]) {
			return false
		}
	}
	return true
}

// Reverse returns a copy of e with its coordinate sequence reversed and its
// label flipped (left/right swap to match the opposite traversal direction).
func (e *Edge) Reverse() *Edge {
	n := len(e.Coords)
	rev := make([]Coordinate, n)
	for i, c := range e.Coords {
		rev[n-1-i] = c
	}
	label := e.Label
	label.Flip()
	r := NewEdge(rev, label, e.WasArea)
	r.Depth = e.Depth
	r.IsCollapsed = e.IsCollapsed
	return r
}

// BuildEdges turns every noded string's split pieces into Edges, merging
// duplicates as it goes. Area-ring pieces get an initial area label derived
// from the parent ring's own signed area (CCW has INTERIOR on the left of
// forward travel, CW has it on the right) and ON=BOUNDARY, since a polygon
// ring is by definition its operand's boundary; line pieces get a simple
// ON=INTERIOR line label, leaving boundary-vs-interior node classification
// to the labeller's boundary node rule.
func BuildEdges(strings []*NodedSegmentString) *EdgeList {
	el := NewEdgeList()
	for _, s := range strings {
		var leftLoc, rightLoc Location
		if s.IsArea {
			if signedArea(s.Coords) > 0 {
				leftLoc, rightLoc = LocationInterior, LocationExterior
			} else {
				leftLoc, rightLoc = LocationExterior, LocationInterior
			}
		}
		for _, piece := range s.Split() {
			piece = dropConsecutiveDuplicates(piece)
			if len(piece) < 2 {
				continue
			}
			var label Label
			if s.IsArea {
				label = NewAreaLabelForGeom(s.GeomIndex, LocationBoundary, leftLoc, rightLoc)
			} else {
				label = NewLabelForGeom(s.GeomIndex, LocationInterior)
			}
			el.Add(NewEdge(piece, label, s.IsArea))
		}
	}
	return el
}

func dropConsecutiveDuplicates(coords []Coordinate) []Coordinate {
	out := make([]Coordinate, 0, len(coords))
	for i, c := range coords {
		if i > 0 && c.Equals(coords[i-1]) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// signedArea returns the shoelace-formula signed area of a closed
// coordinate sequence (first coordinate equal to last). Positive means the
// sequence is wound counterclockwise.
func signedArea(coords []Coordinate) float64 {
	sum := 0.0
	for i := 0; i+1 < len(coords); i++ {
		sum += coords[i].X*coords[i+1].Y - coords[i+1].X*coords[i].Y
	}
	return sum / 2
}
