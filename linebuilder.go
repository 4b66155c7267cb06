package overlay

// BuildLines selects the result's linestring components from the edges
// EdgeList.Partition set aside as non-area: genuine line-operand edges, and
// polygon-ring edges that dimensionally collapsed when two operands' rings
// ran exactly along each other. An edge qualifies for op by the same
// in/out rule the result selector applies to areas, checked against its
// ON location for each operand (a line edge has no LEFT/RIGHT, it's either
// on/in/out of each operand, never bounding one); a qualifying edge is then
// dropped if the result's own polygonal output already covers it, since an
// output line wholly inside the result area is redundant with that area's
// boundary.
func BuildLines(op OpCode, otherEdges []*Edge, resultPolygons []PolygonShape) [][]Coordinate {
	var lines [][]Coordinate
	for _, e := range otherEdges {
		loc0 := e.Label.GetLocation(0, PositionOn)
		loc1 := e.Label.GetLocation(1, PositionOn)
		if !isResultOfOp(op, loc0, loc1) {
			continue
		}
		if len(e.Coords) < 2 {
			continue
		}
		if coveredByPolygons(lineRepresentativePoint(e.Coords), resultPolygons) {
			continue
		}
		lines = append(lines, e.Coords)
	}
	return lines
}

// lineRepresentativePoint picks the midpoint of an edge's first segment as
// the point tested against the result's polygonal output — any point
// along a straight segment has the same coverage classification as any
// other, since the segment itself was never noded against the result
// polygon's boundary; a midpoint just avoids the corner cases of the
// segment's own endpoints landing exactly on that boundary.
func lineRepresentativePoint(coords []Coordinate) Coordinate {
	return Coordinate{X: (coords[0].X + coords[1].X) / 2, Y: (coords[0].Y + coords[1].Y) / 2}
}
