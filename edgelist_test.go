package overlay

import "testing"

func sharedRingEdge(label Label) *Edge {
	return NewEdge([]Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}, label, true)
}

func TestEdgeListMergesReversedDuplicate(t *testing.T) {
	el := NewEdgeList()
	e0 := NewEdge([]Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}},
		NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationExterior), true)
	e1 := NewEdge([]Coordinate{{X: 10, Y: 0}, {X: 0, Y: 0}},
		NewAreaLabelForGeom(1, LocationBoundary, LocationInterior, LocationExterior), true)

	el.Add(e0)
	el.Add(e1)

	if len(el.Edges()) != 1 {
		t.Fatalf("expected the reversed duplicate to merge, got %d edges", len(el.Edges()))
	}
	merged := el.Edges()[0]
	if !merged.Label.IsAreaFor(0) || !merged.Label.IsAreaFor(1) {
		t.Fatalf("merged edge should carry both operands' area labels: %v", merged.Label)
	}
}

func TestEdgeListComputeLabelsFromDepthsCollapsesZeroDelta(t *testing.T) {
	el := NewEdgeList()
	e := NewEdge([]Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}},
		NewLabelForGeom(0, LocationBoundary), true)
	e.Depth.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationInterior))
	el.Add(e)

	el.ComputeLabelsFromDepths()

	if e.Label.IsAreaFor(0) {
		t.Fatalf("equal left/right depth should collapse operand 0 to a line label: %v", e.Label)
	}
}

func TestEdgeListComputeLabelsFromDepthsKeepsAreaOnNonzeroDelta(t *testing.T) {
	el := NewEdgeList()
	e := NewEdge([]Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}},
		NewLabelForGeom(0, LocationBoundary), true)
	e.Depth.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationExterior))
	el.Add(e)

	el.ComputeLabelsFromDepths()

	if !e.Label.IsAreaFor(0) {
		t.Fatalf("unequal left/right depth should keep operand 0 as an area label: %v", e.Label)
	}
	if e.Label.GetLocation(0, PositionLeft) != LocationInterior {
		t.Fatalf("left side had positive depth, want INTERIOR: %v", e.Label)
	}
	if e.Label.GetLocation(0, PositionRight) != LocationExterior {
		t.Fatalf("right side had zero depth, want EXTERIOR: %v", e.Label)
	}
}

func TestEdgeListPartitionSeparatesCollapsedFromArea(t *testing.T) {
	el := NewEdgeList()
	collapsing := NewEdge([]Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}, NewLabelForGeom(0, LocationBoundary), true)
	collapsing.Depth.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationInterior))
	stillArea := NewEdge([]Coordinate{{X: 0, Y: 1}, {X: 10, Y: 1}}, NewLabelForGeom(0, LocationBoundary), true)
	stillArea.Depth.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationExterior))
	el.Add(collapsing)
	el.Add(stillArea)

	el.ComputeLabelsFromDepths()
	areaEdges, otherEdges := el.Partition()

	if len(otherEdges) != 1 || otherEdges[0] != collapsing {
		t.Fatalf("expected exactly the collapsing edge among otherEdges, got %v", otherEdges)
	}
	if len(areaEdges) != 1 || areaEdges[0] != stillArea {
		t.Fatalf("expected the area edge among areaEdges, got %v", areaEdges)
	}
	if !collapsing.IsCollapsed {
		t.Fatalf("collapsing edge should be flagged IsCollapsed")
	}
}
