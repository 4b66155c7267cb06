package overlay

import (
	"errors"
	"testing"
)

func TestTopologyErrorWrapsSentinel(t *testing.T) {
	err := NewTopologyError("something went wrong")
	if !errors.Is(err, ErrTopology) {
		t.Fatal("TopologyError should unwrap to ErrTopology")
	}
	var te *TopologyError
	if !errors.As(err, &te) {
		t.Fatal("errors.As should recover the concrete TopologyError")
	}
}

func TestTopologyErrorAtIncludesCoordinate(t *testing.T) {
	err := NewTopologyErrorAt("bad ring", Coordinate{X: 1, Y: 2})
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected a non-empty message")
	}
	if err.Coord == nil || !err.Coord.Equals(Coordinate{X: 1, Y: 2}) {
		t.Fatalf("expected offending coordinate to be recorded, got %v", err.Coord)
	}
}

func TestTopologyErrorWithoutCoordinate(t *testing.T) {
	err := NewTopologyError("no location")
	if err.Coord != nil {
		t.Fatal("NewTopologyError should leave Coord nil")
	}
}
