package overlay

import "fmt"

// Overlay computes the Boolean combination op of geom0 and geom1 and
// returns the selected polygons, lines, and points as a Result. opts.Locator
// and opts.Factory are required; everything else about opts is optional.
func Overlay(geom0, geom1 Geometry, op OpCode, opts Options) (*Result, error) {
	if opts.Locator == nil {
		return nil, fmt.Errorf("overlay: Options.Locator is required")
	}
	if opts.Factory == nil {
		return nil, fmt.Errorf("overlay: Options.Factory is required")
	}

	if geom0.IsEmpty() || geom1.IsEmpty() {
		log.Debug("overlay: short-circuiting on an empty operand")
		dim := resultDimension(op, geom0.Dimension(), geom1.Dimension())
		return emptyResultOperand(op, geom0, geom1, dim), nil
	}

	geoms := [2]Geometry{geom0, geom1}

	strings := geometrySegmentStrings(geom0, 0)
	strings = append(strings, geometrySegmentStrings(geom1, 1)...)

	noder := selectNoder(opts)
	noded, err := noder.Node(strings)
	if err != nil {
		return nil, err
	}
	log.Debug("overlay: noding complete")

	edgeList := BuildEdges(noded)
	edgeList.ComputeLabelsFromDepths()
	areaEdges, otherEdges := edgeList.Partition()

	allEdges := make([]*Edge, 0, len(areaEdges)+len(otherEdges))
	allEdges = append(allEdges, areaEdges...)
	allEdges = append(allEdges, otherEdges...)

	g := BuildLabelledGraph(allEdges, geoms, opts.Locator)
	log.Debug("overlay: labelling complete")

	FindResultAreaEdges(g, op)
	CancelDuplicateResultEdges(g)

	polys, err := BuildPolygons(g)
	if err != nil {
		return nil, err
	}
	log.Debug("overlay: ring and polygon assembly complete")

	lines := BuildLines(op, otherEdges, polys)
	points := BuildPoints(op, dedupedPoints(geom0, geom1), geoms, opts.Locator, polys)

	return &Result{Polygons: polys, Lines: lines, Points: points}, nil
}

// geometrySegmentStrings turns every area ring and linestring component of
// g into a NodedSegmentString tagged with geomIndex, ready for the noder.
// Standalone points never enter this list — they never need noding, only
// direct PointLocator classification.
func geometrySegmentStrings(g Geometry, geomIndex int) []*NodedSegmentString {
	var out []*NodedSegmentString
	for _, r := range g.AreaRings() {
		out = append(out, NewNodedSegmentString(geomIndex, r.Coordinates, true, r.IsShell))
	}
	for _, l := range g.Lines() {
		out = append(out, NewNodedSegmentString(geomIndex, l, false, false))
	}
	return out
}

// dedupedPoints merges both operands' standalone point components,
// collapsing exact duplicates so a coordinate present in both inputs is
// only ever classified, and potentially emitted, once.
func dedupedPoints(geom0, geom1 Geometry) []Coordinate {
	seen := make(map[Coordinate]bool)
	var out []Coordinate
	for _, c := range geom0.Points() {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range geom1.Points() {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// selectNoder picks classic robust noding at full double precision, unless
// opts.NodingPrecision asks for snap-rounding instead. Classic noding has
// no practical use for a coarser precision model of its own — the exact
// RobustLineIntersector it runs on needs no snapping — so unlike
// snap-rounding, which is meaningless without a grid, it does not read
// opts.NodingPrecision at all.
func selectNoder(opts Options) Noder {
	if opts.NodingPrecision != nil {
		return &SnapRoundingNoder{PrecisionModel: opts.NodingPrecision, Validate: opts.ValidateSnapRoundedNoding}
	}
	return &ClassicNoder{PrecisionModel: NewFloatingPrecisionModel()}
}

// emptyResultOperand handles the case where at least one operand is empty:
// Intersection and SymDifference/Union/Difference all reduce to either an
// empty result or a direct copy of one operand with no noding involved, since an
// empty geometry can never intersect, bound, or contribute a boundary
// crossing to anything.
func emptyResultOperand(op OpCode, geom0, geom1 Geometry, dim int) *Result {
	if dim < 0 {
		return &Result{}
	}
	switch op {
	case Intersection:
		return &Result{}
	case Union:
		if geom0.IsEmpty() {
			return geometryToResult(geom1)
		}
		return geometryToResult(geom0)
	case Difference:
		if geom0.IsEmpty() {
			return &Result{}
		}
		return geometryToResult(geom0)
	case SymDifference:
		if geom0.IsEmpty() && geom1.IsEmpty() {
			return &Result{}
		}
		if geom0.IsEmpty() {
			return geometryToResult(geom1)
		}
		return geometryToResult(geom0)
	default:
		return &Result{}
	}
}

// geometryToResult copies g's own rings, lines, and points directly into a
// Result with no overlay processing — used only for the empty-operand
// shortcut, where the answer is just "the other operand, unchanged".
func geometryToResult(g Geometry) *Result {
	r := &Result{Points: append([]Coordinate(nil), g.Points()...)}
	for _, l := range g.Lines() {
		r.Lines = append(r.Lines, append([]Coordinate(nil), l...))
	}
	shells := map[int]*PolygonShape{}
	var order []int
	ringIdx := 0
	for _, ring := range g.AreaRings() {
		if ring.IsShell {
			shells[ringIdx] = &PolygonShape{Shell: ring.Coordinates}
			order = append(order, ringIdx)
			ringIdx++
			continue
		}
		if len(order) == 0 {
			continue
		}
		last := shells[order[len(order)-1]]
		last.Holes = append(last.Holes, ring.Coordinates)
	}
	for _, idx := range order {
		r.Polygons = append(r.Polygons, *shells[idx])
	}
	return r
}
