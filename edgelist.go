package overlay

// EdgeList collects the edges produced by noding, merging any that trace
// identical linework (forwards or reversed) into one edge with a combined
// label and depth — this is what lets two operands' coincident boundaries
// resolve to a single shared edge instead of two overlapping ones.
type EdgeList struct {
	edges []*Edge
}

// NewEdgeList returns an empty edge list.
func NewEdgeList() *EdgeList {
	return &EdgeList{}
}

// Edges returns the list's current edges. Callers must not retain the
// returned slice across further Add calls.
func (el *EdgeList) Edges() []*Edge {
	return el.edges
}

// Add inserts e, merging it into an existing equal-up-to-reversal edge if
// one is already present.
func (el *EdgeList) Add(e *Edge) {
	existing := el.FindEqualEdge(e)
	if existing == nil {
		el.edges = append(el.edges, e)
		return
	}
	mergeDuplicateEdge(existing, e)
}

// FindEqualEdge returns the list's edge that traces the same linework as e
// (forwards or reversed), or nil if there is none.
func (el *EdgeList) FindEqualEdge(e *Edge) *Edge {
	for _, o := range el.edges {
		if eq, _ := e.EqualsIgnoreDirection(o); eq {
			return o
		}
	}
	return nil
}

// mergeDuplicateEdge folds incoming into existing: incoming's label is
// flipped first if it was traced in the opposite direction, existing's
// depth is seeded from its own label the first time a duplicate arrives
// (it starts out null), then incoming's label is added to the depth and
// merged into existing's label.
func mergeDuplicateEdge(existing, incoming *Edge) {
	labelToMerge := incoming.Label
	if _, reversed := incoming.EqualsIgnoreDirection(existing); reversed {
		labelToMerge.Flip()
	}
	if existing.Depth.IsNull() {
		existing.Depth.Add(existing.Label)
	}
	existing.Depth.Add(labelToMerge)
	existing.Label.Merge(labelToMerge)
}

// ComputeLabelsFromDepths normalizes every edge's depth and derives its
// final LEFT/RIGHT area location from it, per operand: zero coverage delta
// collapses the operand to a line label (ToLine); otherwise positive depth
// on a side means that side is INTERIOR to the operand, zero means
// EXTERIOR.
func (el *EdgeList) ComputeLabelsFromDepths() {
	for _, e := range el.edges {
		e.Depth.Normalize()
		for i := 0; i < 2; i++ {
			if e.Depth.IsNullGeom(i) {
				continue
			}
			if e.Depth.Delta(i) == 0 {
				e.Label.ToLine(i)
				continue
			}
			e.Label.SetLocation(i, PositionLeft, e.Depth.GetLocation(i, PositionLeft))
			e.Label.SetLocation(i, PositionRight, e.Depth.GetLocation(i, PositionRight))
		}
	}
}

// Partition splits the list into edges that still carry an area label for
// at least one operand (areaEdges — ring assembly's input) and everything
// else (otherEdges): genuine line-operand edges, plus edges that were built
// from a polygon ring but ended up with no area label for either operand
// after ComputeLabelsFromDepths — i.e. edges whose two operands' rings
// touched exactly along it, contributing no coverage on either side, and so
// have dimensionally collapsed to a line. The latter are flagged
// IsCollapsed; both kinds are handled by the line builder, never by ring
// assembly.
func (el *EdgeList) Partition() (areaEdges, otherEdges []*Edge) {
	for _, e := range el.edges {
		if e.Label.IsArea() {
			areaEdges = append(areaEdges, e)
			continue
		}
		if e.WasArea {
			e.IsCollapsed = true
		}
		otherEdges = append(otherEdges, e)
	}
	return areaEdges, otherEdges
}
