package overlay

import "testing"

func TestDirectionPointSkipsZeroLengthLeadingSegment(t *testing.T) {
	de := &DirectedEdge{Coords: []Coordinate{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 5}}}
	got := de.DirectionPoint()
	want := Coordinate{X: 5, Y: 5}
	if !got.Equals(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDirectionPointFallsBackToLastCoordWhenAllDegenerate(t *testing.T) {
	de := &DirectedEdge{Coords: []Coordinate{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}}
	got := de.DirectionPoint()
	want := Coordinate{X: 1, Y: 1}
	if !got.Equals(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNodeIsIsolatedWithEmptyStar(t *testing.T) {
	n := &Node{Coord: Coordinate{X: 0, Y: 0}}
	if !n.IsIsolated() {
		t.Fatal("a node with no incident directed edges should be isolated")
	}
}
