package overlay

// Result is one Overlay call's output, before it is turned into a concrete
// geometry value: every polygon, linestring, and standalone point the
// chosen operation selected. Most callers only need ToGeometry; the raw
// fields are exposed for callers that want to inspect or post-process the
// pieces directly.
type Result struct {
	Polygons []PolygonShape
	Lines    [][]Coordinate
	Points   []Coordinate
}

// IsEmpty reports whether the result has no components of any dimension.
func (r *Result) IsEmpty() bool {
	return len(r.Polygons) == 0 && len(r.Lines) == 0 && len(r.Points) == 0
}

// Dimension returns the highest dimension present in the result (2 for any
// polygon, 1 for any line with no polygon, 0 for points only), or -1 if the
// result is empty.
func (r *Result) Dimension() int {
	switch {
	case len(r.Polygons) > 0:
		return 2
	case len(r.Lines) > 0:
		return 1
	case len(r.Points) > 0:
		return 0
	default:
		return -1
	}
}

// ToGeometry builds the concrete geometry value for r using factory,
// dispatching to whichever Create* method matches the result's actual
// component mix: a single call for a dimensionally pure result, or
// CreateCollection over the individually-built pieces for a heterogeneous
// one (e.g. a polygon unioned with a linestring lying outside it).
func (r *Result) ToGeometry(factory GeometryFactory) Geometry {
	kinds := 0
	if len(r.Polygons) > 0 {
		kinds++
	}
	if len(r.Lines) > 0 {
		kinds++
	}
	if len(r.Points) > 0 {
		kinds++
	}

	switch kinds {
	case 0:
		return factory.CreateEmpty()
	case 1:
		switch {
		case len(r.Polygons) > 0:
			return factory.CreatePolygons(r.Polygons)
		case len(r.Lines) > 0:
			return factory.CreateLines(r.Lines)
		default:
			return factory.CreatePoints(r.Points)
		}
	default:
		var parts []Geometry
		if len(r.Polygons) > 0 {
			parts = append(parts, factory.CreatePolygons(r.Polygons))
		}
		if len(r.Lines) > 0 {
			parts = append(parts, factory.CreateLines(r.Lines))
		}
		if len(r.Points) > 0 {
			parts = append(parts, factory.CreatePoints(r.Points))
		}
		return factory.CreateCollection(parts)
	}
}

// resultDimension returns the dimension an empty result would have had for
// op, given each operand's own dimension, without running the overlay
// pipeline at all — used when either operand is empty, since nothing needs
// noding in that case.
func resultDimension(op OpCode, dim0, dim1 int) int {
	switch op {
	case Intersection:
		return minDim(dim0, dim1)
	case Difference:
		return dim0
	case Union, SymDifference:
		return maxDim(dim0, dim1)
	default:
		return -1
	}
}

func minDim(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxDim(a, b int) int {
	if a > b {
		return a
	}
	return b
}
