package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapRoundingNoderSnapsVerticesToGrid(t *testing.T) {
	a := NewNodedSegmentString(0, []Coordinate{{X: 0.04, Y: 0}, {X: 10, Y: 0}}, false, false)

	n := &SnapRoundingNoder{PrecisionModel: NewFixedPrecisionModel(10)}
	strings, err := n.Node([]*NodedSegmentString{a})
	require.NoError(t, err)
	require.Len(t, strings, 1)
	require.Equal(t, Coordinate{X: 0, Y: 0}, strings[0].Coords[0])
}

func TestApplyHotPixelsInsertsNodeForNearMissNotCaughtByExactIntersection(t *testing.T) {
	// A hot pixel centered just off a segment's interior, well within tau but
	// not lying exactly on the line, is exactly the case classic exact
	// intersection testing would miss entirely: there is no real crossing to
	// compute.
	a := NewNodedSegmentString(0, []Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, false)
	pixel := HotPixel{Center: Coordinate{X: 5, Y: 0.05}, Tau: 0.1}

	n := &SnapRoundingNoder{}
	n.applyHotPixels(a, []HotPixel{pixel}, 0.1)

	pieces := a.Split()
	require.Len(t, pieces, 2, "a near-miss hot pixel within tau should still split the segment")
}

func TestApplyHotPixelsSkipsPixelBeyondTau(t *testing.T) {
	a := NewNodedSegmentString(0, []Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}, false, false)
	pixel := HotPixel{Center: Coordinate{X: 5, Y: 5}, Tau: 0.1}

	n := &SnapRoundingNoder{}
	n.applyHotPixels(a, []HotPixel{pixel}, 0.1)

	require.Len(t, a.Split(), 1)
}

func TestSnapRoundingNoderValidateOffByDefault(t *testing.T) {
	n := &SnapRoundingNoder{PrecisionModel: NewFixedPrecisionModel(10)}
	require.False(t, n.Validate)
}
