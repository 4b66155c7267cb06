package overlay

import (
	"errors"
	"fmt"
)

// ErrTopology is the sentinel every TopologyError wraps, so callers can test
// for it with errors.Is without depending on the concrete type.
var ErrTopology = errors.New("overlay: topology error")

// TopologyError is the one failure kind this engine raises: noding that
// could not be resolved, a free hole that could not be assigned to any
// shell, or a maximal ring that failed its validity check. Every other
// anomaly a caller might expect (nil coordinates, mismatched dimension, an
// empty operand) is a normal input producing a well-defined result, not an
// error.
type TopologyError struct {
	Msg   string
	Coord *Coordinate
}

func (e *TopologyError) Error() string {
	if e.Coord != nil {
		return fmt.Sprintf("%s [%v]", e.Msg, *e.Coord)
	}
	return e.Msg
}

func (e *TopologyError) Unwrap() error { return ErrTopology }

// NewTopologyError builds a TopologyError with no offending coordinate.
func NewTopologyError(msg string) *TopologyError {
	return &TopologyError{Msg: msg}
}

// NewTopologyErrorAt builds a TopologyError that pinpoints coord as the
// offending location.
func NewTopologyErrorAt(msg string, coord Coordinate) *TopologyError {
	c := coord
	return &TopologyError{Msg: msg, Coord: &c}
}
