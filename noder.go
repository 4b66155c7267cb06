package overlay

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"
)

// segmentHandle is the unit the rtree indexes: one segment of one
// NodedSegmentString, plus enough identity to dedupe candidate pairs and
// skip segments that are already adjacent (and so already share a node) in
// their own string.
type segmentHandle struct {
	str    *NodedSegmentString
	strPos int
	idx    int
	seg    Segment
}

// Bounds implements the rtree's geom.Geom contract; it is the only method
// of that interface the rtree implementation actually calls.
func (h segmentHandle) Bounds() *geom.Bounds {
	minX, maxX := minmax(h.seg.P0.X, h.seg.P1.X)
	minY, maxY := minmax(h.seg.P0.Y, h.seg.P1.Y)
	return &geom.Bounds{Min: geom.Point{X: minX, Y: minY}, Max: geom.Point{X: maxX, Y: maxY}}
}

// Len, Points, Similar, and Transform exist only to satisfy the rtree's
// geom.Geom contract; the rtree implementation never calls them.
func (h segmentHandle) Len() int {
	return 2
}

func (h segmentHandle) Points() func() geom.Point {
	pts := [2]geom.Point{
		{X: h.seg.P0.X, Y: h.seg.P0.Y},
		{X: h.seg.P1.X, Y: h.seg.P1.Y},
	}
	i := 0
	return func() geom.Point {
		if i >= len(pts) {
			return geom.Point{}
		}
		p := pts[i]
		i++
		return p
	}
}

func (h segmentHandle) Similar(g geom.Geom, tolerance float64) bool {
	o, ok := g.(segmentHandle)
	if !ok {
		return false
	}
	return h.seg.P0 == o.seg.P0 && h.seg.P1 == o.seg.P1
}

func (h segmentHandle) Transform(t proj.Transformer) (geom.Geom, error) {
	x0, y0, err := t(h.seg.P0.X, h.seg.P0.Y)
	if err != nil {
		return nil, err
	}
	x1, y1, err := t(h.seg.P1.X, h.seg.P1.Y)
	if err != nil {
		return nil, err
	}
	h.seg.P0 = Coordinate{X: x0, Y: y0}
	h.seg.P1 = Coordinate{X: x1, Y: y1}
	return h, nil
}

func buildSegmentIndex(strings []*NodedSegmentString) (*rtree.Rtree, []segmentHandle) {
	tree := rtree.NewTree(25, 50)
	var handles []segmentHandle
	for pos, s := range strings {
		for i := 0; i < s.SegmentCount(); i++ {
			h := segmentHandle{str: s, strPos: pos, idx: i, seg: s.SegmentAt(i)}
			handles = append(handles, h)
			tree.Insert(h)
		}
	}
	return tree, handles
}

func lessHandle(a, b segmentHandle) bool {
	if a.strPos != b.strPos {
		return a.strPos < b.strPos
	}
	return a.idx < b.idx
}

// segmentsAdjacent reports whether segments i and j of a count-segment
// string already share an endpoint in the original linework — for a ring,
// the last segment wraps around to share the first segment's start vertex.
func segmentsAdjacent(count, i, j int, isRing bool) bool {
	if i == j {
		return true
	}
	d := i - j
	if d == 1 || d == -1 {
		return true
	}
	if isRing && ((i == 0 && j == count-1) || (j == 0 && i == count-1)) {
		return true
	}
	return false
}

func stringsForOperand(strings []*NodedSegmentString, geomIndex int) []*NodedSegmentString {
	var out []*NodedSegmentString
	for _, s := range strings {
		if s.GeomIndex == geomIndex {
			out = append(out, s)
		}
	}
	return out
}

// Noder turns two operands' raw segment strings into fully noded ones —
// every two output segments sharing at most their endpoints — or reports a
// TopologyError if it cannot. ClassicNoder and SnapRoundingNoder are the
// two implementations Overlay chooses between via Options.NodingPrecision.
type Noder interface {
	Node(strings []*NodedSegmentString) ([]*NodedSegmentString, error)
}

// ClassicNoder nodes two operands' segment strings against each other using
// exact robust intersection: each operand is self-noded first so a
// self-intersection never cascades back as a further self-intersection
// within the same operand, then the two operands are cross-noded against
// each other. Candidate segment pairs are pruned with an rtree over segment
// bounding boxes before the exact test runs, turning the common case of
// spatially separated input from quadratic into near-linear; a fully
// overlapping pair of combs still degrades to the full pairwise count.
type ClassicNoder struct {
	PrecisionModel *PrecisionModel
}

// Node runs the full classic noding pipeline in place and validates the
// result. strings is mutated (AddIntersection is called on its members) and
// also returned for convenience.
func (n *ClassicNoder) Node(strings []*NodedSegmentString) ([]*NodedSegmentString, error) {
	n.selfNode(strings, 0)
	n.selfNode(strings, 1)
	n.crossNode(strings)
	if err := validateNoding(strings); err != nil {
		return nil, err
	}
	log.Debug("overlay: classic noding complete")
	return strings, nil
}

func (n *ClassicNoder) selfNode(strings []*NodedSegmentString, geomIndex int) {
	operand := stringsForOperand(strings, geomIndex)
	tree, handles := buildSegmentIndex(operand)
	for _, h := range handles {
		for _, cand := range tree.SearchIntersect(h.Bounds()) {
			o := cand.(segmentHandle)
			if !lessHandle(h, o) {
				continue
			}
			if h.str == o.str && segmentsAdjacent(h.str.SegmentCount(), h.idx, o.idx, h.str.IsArea) {
				continue
			}
			testAndAdd(h.str, h.idx, o.str, o.idx)
		}
	}
}

func (n *ClassicNoder) crossNode(strings []*NodedSegmentString) {
	op0 := stringsForOperand(strings, 0)
	op1 := stringsForOperand(strings, 1)
	if len(op0) == 0 || len(op1) == 0 {
		return
	}
	tree, _ := buildSegmentIndex(op1)
	_, op0Handles := buildSegmentIndex(op0)
	for _, h := range op0Handles {
		for _, cand := range tree.SearchIntersect(h.Bounds()) {
			o := cand.(segmentHandle)
			testAndAdd(h.str, h.idx, o.str, o.idx)
		}
	}
}

// testAndAdd computes the exact intersection of two segments and records
// every resulting point as an intersection on both of their owning strings.
// NodedSegmentString.AddIntersection silently drops points already equal to
// a segment's own endpoint, so no further filtering is needed here.
func testAndAdd(sa *NodedSegmentString, ia int, sb *NodedSegmentString, ib int) {
	var ri RobustLineIntersector
	ri.ComputeIntersection(sa.SegmentAt(ia), sb.SegmentAt(ib))
	for k := 0; k < ri.IntersectionNum(); k++ {
		p := ri.Intersection(k)
		sa.AddIntersection(ia, p)
		sb.AddIntersection(ib, p)
	}
}
