package overlay

import "testing"

func TestNodedSegmentStringSplitNoIntersections(t *testing.T) {
	s := NewNodedSegmentString(0, []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, false, false)
	pieces := s.Split()
	if len(pieces) != 1 {
		t.Fatalf("expected one piece with no intersections, got %d", len(pieces))
	}
	if len(pieces[0]) != 3 {
		t.Fatalf("expected the full 3-coordinate chain, got %v", pieces[0])
	}
}

func TestNodedSegmentStringSplitAtIntersection(t *testing.T) {
	s := NewNodedSegmentString(0, []Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, false)
	s.AddIntersection(0, Coordinate{X: 5, Y: 0})
	pieces := s.Split()
	if len(pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d: %v", len(pieces), pieces)
	}
	if pieces[0][len(pieces[0])-1] != (Coordinate{X: 5, Y: 0}) {
		t.Fatalf("first piece should end at the intersection, got %v", pieces[0])
	}
	if pieces[1][0] != (Coordinate{X: 5, Y: 0}) {
		t.Fatalf("second piece should start at the intersection, got %v", pieces[1])
	}
}

func TestNodedSegmentStringAddIntersectionIgnoresOwnEndpoint(t *testing.T) {
	s := NewNodedSegmentString(0, []Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, false)
	s.AddIntersection(0, Coordinate{X: 0, Y: 0})
	s.AddIntersection(0, Coordinate{X: 10, Y: 0})
	if len(s.Split()) != 1 {
		t.Fatalf("adding a segment's own endpoints should not split it")
	}
}

func TestClassicNoderCrossNoding(t *testing.T) {
	a := NewNodedSegmentString(0, []Coordinate{{X: 0, Y: 5}, {X: 10, Y: 5}}, false, false)
	b := NewNodedSegmentString(1, []Coordinate{{X: 5, Y: 0}, {X: 5, Y: 10}}, false, false)

	n := &ClassicNoder{PrecisionModel: NewFloatingPrecisionModel()}
	strings, err := n.Node([]*NodedSegmentString{a, b})
	if err != nil {
		t.Fatalf("Node returned an error: %v", err)
	}

	for _, s := range strings {
		pieces := s.Split()
		if len(pieces) != 2 {
			t.Fatalf("expected operand to be split into 2 pieces by the crossing, got %d", len(pieces))
		}
		mid := pieces[0][len(pieces[0])-1]
		if mid != (Coordinate{X: 5, Y: 5}) {
			t.Fatalf("expected the split point to be the crossing (5,5), got %v", mid)
		}
	}
}

func TestClassicNoderSelfNodingDoesNotCascadeAcrossOperands(t *testing.T) {
	// A figure-eight-ish self-crossing ring in operand 0 only; operand 1 is
	// untouched and should remain unsplit.
	ring := NewNodedSegmentString(0, []Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}, true, true)
	other := NewNodedSegmentString(1, []Coordinate{{X: 100, Y: 100}, {X: 200, Y: 200}}, false, false)

	n := &ClassicNoder{PrecisionModel: NewFloatingPrecisionModel()}
	_, err := n.Node([]*NodedSegmentString{ring, other})
	if err != nil {
		t.Fatalf("Node returned an error: %v", err)
	}
	if len(other.Split()) != 1 {
		t.Fatalf("operand 1 should be untouched by operand 0's self-crossing")
	}
	if len(ring.Split()) < 2 {
		t.Fatalf("operand 0's self-crossing should have produced at least 2 pieces")
	}
}
