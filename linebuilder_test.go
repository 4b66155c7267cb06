package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLinesSelectsByOpAndDropsCoveredLines(t *testing.T) {
	keep := NewEdge([]Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}}, NewLabel(LocationInterior), false)
	dropByOp := NewEdge([]Coordinate{{X: 5, Y: 5}, {X: 6, Y: 5}}, NewLabelForGeom(0, LocationInterior), false)
	dropByOp.Label.SetLocation(1, PositionOn, LocationExterior)
	coveredByResult := NewEdge([]Coordinate{{X: 20, Y: 20}, {X: 21, Y: 20}}, NewLabel(LocationInterior), false)

	polys := []PolygonShape{{Shell: []Coordinate{
		{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}, {X: 10, Y: 10},
	}}}

	lines := BuildLines(Intersection, []*Edge{keep, dropByOp, coveredByResult}, polys)

	require.Len(t, lines, 1)
	require.Equal(t, Coordinate{X: 0, Y: 0}, lines[0][0])
}
