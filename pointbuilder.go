package overlay

// BuildPoints selects the result's standalone point components. Unlike
// edges, a point operand component never enters the planar graph unless
// some other operand's linework happens to touch it; it is classified
// directly against both operands via the PointLocator instead. points is
// the union of both operands' standalone point components (duplicates
// across operands are fine — isResultOfOp only fires once per coordinate
// via the caller passing each distinct point once, see Overlay).
func BuildPoints(op OpCode, points []Coordinate, geoms [2]Geometry, locator PointLocator, resultPolygons []PolygonShape) []Coordinate {
	var result []Coordinate
	for _, c := range points {
		loc0 := locator.Locate(c, geoms[0])
		loc1 := locator.Locate(c, geoms[1])
		if !isResultOfOp(op, loc0, loc1) {
			continue
		}
		if coveredByPolygons(c, resultPolygons) {
			continue
		}
		result = append(result, c)
	}
	return result
}
