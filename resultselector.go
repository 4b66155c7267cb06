package overlay

// isResultOfOp answers, for a single point classified against both
// operands, whether that point belongs to op's result — treating BOUNDARY
// the same as INTERIOR, since a point on an operand's own boundary is
// still "in" that operand for the purpose of combining two operands.
func isResultOfOp(op OpCode, loc0, loc1 Location) bool {
	if loc0 == LocationBoundary {
		loc0 = LocationInterior
	}
	if loc1 == LocationBoundary {
		loc1 = LocationInterior
	}
	in0 := loc0 == LocationInterior
	in1 := loc1 == LocationInterior
	switch op {
	case Intersection:
		return in0 && in1
	case Union:
		return in0 || in1
	case Difference:
		return in0 && !in1
	case SymDifference:
		return in0 != in1
	default:
		return false
	}
}

// markInteriorAreaEdges flags every DirectedEdge that sits strictly inside
// both operands' areas — its LEFT and RIGHT locations are INTERIOR for
// operand 0 and for operand 1 — as IsInteriorAreaEdge. Such an edge can
// never be a boundary of any op's result: it separates neither operand's
// interior from its exterior, so no result combination can ever need it as
// a boundary segment. An edge interior to only one operand still bounds the
// other, and is left for FindResultAreaEdges to classify.
func markInteriorAreaEdges(g *PlanarGraph) {
	for _, de := range g.DirectedEdges {
		interior := true
		for i := 0; i < 2; i++ {
			if !de.Label.IsAreaFor(i) ||
				de.Label.GetLocation(i, PositionLeft) != LocationInterior ||
				de.Label.GetLocation(i, PositionRight) != LocationInterior {
				interior = false
			}
		}
		if interior {
			de.IsInteriorAreaEdge = true
		}
	}
}

// FindResultAreaEdges marks InResult on every DirectedEdge whose LEFT side
// is inside op's result: the engine's ring-tracing direction always keeps
// a ring's own interior on the left of travel (the same CCW-shell/CW-hole
// convention BuildEdges uses when it derives a ring piece's initial label
// from its signed area), so an edge belongs to the result boundary, in
// exactly this direction, when its LEFT side is in and its RIGHT side is
// out. An edge whose two sides are both in is selected in both directions
// here, and CancelDuplicateResultEdges then clears it.
func FindResultAreaEdges(g *PlanarGraph, op OpCode) {
	markInteriorAreaEdges(g)
	for _, de := range g.DirectedEdges {
		if !de.Label.IsArea() || de.IsInteriorAreaEdge {
			continue
		}
		if isResultOfOp(op, de.Label.GetLocation(0, PositionLeft), de.Label.GetLocation(1, PositionLeft)) {
			de.InResult = true
		}
	}
}

// CancelDuplicateResultEdges unmarks both directions of any edge whose
// forward and sym directed edges were both selected InResult. That happens
// when both sides of the edge lie inside op's result — two operands'
// boundaries running exactly along the same linework in opposite
// directions, or one operand's boundary lying inside the other operand
// under Union — and the edge would otherwise appear twice in the traced
// result, once from each side, which is not a valid ring.
func CancelDuplicateResultEdges(g *PlanarGraph) {
	for _, de := range g.DirectedEdges {
		sym := g.DirectedEdges[de.SymID]
		if de.InResult && sym.InResult {
			de.InResult = false
			sym.InResult = false
		}
	}
}
