package overlay

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// SnapRoundingNoder nodes two operands by first snapping every vertex to a
// fixed-precision grid, then running the same self/cross intersection pass
// ClassicNoder runs (rounding can both create and preserve genuine
// crossings), and finally inserting a node wherever a rounded vertex from
// elsewhere in the input falls near — but not on — a grid-snapped segment,
// per HotPixel's near-vertex rule. That last pass is what classic noding
// alone cannot give you: without it, snap-rounding can silently leave two
// segments that now pass within less than a grid cell of each other
// unnoded.
type SnapRoundingNoder struct {
	PrecisionModel *PrecisionModel
	// Validate re-runs the noding validator after snap-rounding too. Off by
	// default: the hot-pixel pass is itself a constructive proof of the
	// validity property for the inputs it was designed for, so the extra
	// full pairwise re-check is normally redundant cost.
	Validate bool
}

func (n *SnapRoundingNoder) Node(strings []*NodedSegmentString) ([]*NodedSegmentString, error) {
	pm := n.PrecisionModel
	for _, s := range strings {
		for i := range s.Coords {
			s.Coords[i] = pm.Snap(s.Coords[i])
		}
	}

	classic := &ClassicNoder{PrecisionModel: pm}
	classic.selfNode(strings, 0)
	classic.selfNode(strings, 1)
	classic.crossNode(strings)

	tau := 1 / (pm.Scale * nearnessFactor)
	hotPixels := collectHotPixels(strings, tau)
	for _, s := range strings {
		n.applyHotPixels(s, hotPixels, tau)
	}

	if n.Validate {
		if err := validateNoding(strings); err != nil {
			return nil, err
		}
	}
	log.Debug("overlay: snap-rounding noding complete")
	return strings, nil
}

// applyHotPixels inserts a node into s wherever a hot pixel center other
// than s's own segment endpoints satisfies the near-vertex rule. Candidate
// segments are pruned with an rtree query over a box of width 2*tau around
// each hot pixel, rather than testing every segment against every pixel.
func (n *SnapRoundingNoder) applyHotPixels(s *NodedSegmentString, hotPixels []HotPixel, tau float64) {
	tree, _ := buildSegmentIndex([]*NodedSegmentString{s})
	for _, hp := range hotPixels {
		box := rtree.ToRect(geom.Point{X: hp.Center.X, Y: hp.Center.Y}, tau)
		for _, cand := range tree.SearchIntersect(box) {
			h := cand.(segmentHandle)
			if hp.NearVertexRule(h.seg.P0, h.seg.P1) {
				s.AddIntersection(h.idx, hp.Center)
			}
		}
	}
}
