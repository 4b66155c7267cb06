package overlay

// OpCode selects which Boolean combination Overlay computes. The integer
// values are load-bearing: callers may persist them, so they must not be
// renumbered.
type OpCode int

const (
	Intersection  OpCode = 1
	Union         OpCode = 2
	Difference    OpCode = 3
	SymDifference OpCode = 4
)

func (op OpCode) String() string {
	switch op {
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Difference:
		return "Difference"
	case SymDifference:
		return "SymDifference"
	default:
		return "Unknown"
	}
}

// Options configures one Overlay call. Locator and Factory are required;
// everything else has a usable zero value (classic noding at full double
// precision). The operands' own precision models are not consulted: the
// Geometry interface does not expose one.
type Options struct {
	// NodingPrecision, if non-nil, switches noding to snap-rounding at this
	// precision instead of classic robust noding.
	NodingPrecision *PrecisionModel
	// ValidateSnapRoundedNoding re-runs the noding validator after
	// snap-rounding as well as after classic noding. Off by default: the
	// hot-pixel grid construction is itself a validity proof for the common
	// case, and the extra pass is normally redundant work.
	ValidateSnapRoundedNoding bool
	// Locator classifies coordinates against either operand — required,
	// there is no fallback implementation in the core itself.
	Locator PointLocator
	// Factory builds the concrete result geometry. Required.
	Factory GeometryFactory
}

// AreaRing is one ring of a polygonal operand or result: a closed
// coordinate sequence (first coordinate equals last) plus whether it is an
// outer shell or a hole.
type AreaRing struct {
	Coordinates []Coordinate
	IsShell     bool
}

// PolygonShape is one polygon of a polygonal result: a shell ring plus its
// holes, ready for a GeometryFactory to turn into a concrete polygon value.
type PolygonShape struct {
	Shell []Coordinate
	Holes [][]Coordinate
}

// Geometry is the collaborator interface an operand must satisfy so the
// core can decompose it into noding input: area rings, line chains, and
// standalone points. Implementations are expected to be simple views over
// an existing geometry value, not a copy.
type Geometry interface {
	// Dimension returns 2 for polygonal, 1 for lineal, 0 for point-only, or
	// -1 for an empty or dimensionally-mixed geometry.
	Dimension() int
	IsEmpty() bool
	// AreaRings returns every ring of every polygon component, shells
	// before their holes.
	AreaRings() []AreaRing
	// Lines returns every linestring component as an open coordinate chain.
	Lines() [][]Coordinate
	// Points returns every standalone point component.
	Points() []Coordinate
}

// PointLocator classifies a coordinate's topological relationship to a
// geometry. It is pure: no mutation, no I/O. The core asks it about one
// point per edge that lacks a label for an operand, about graph nodes left
// unlabelled, and about each standalone point component of the operands.
type PointLocator interface {
	Locate(c Coordinate, g Geometry) Location
}

// GeometryFactory builds the concrete result value for one dimension of
// output. Result.ToGeometry calls exactly one of these for an empty or
// single-dimension result, and one per dimension plus CreateCollection for
// a mixed one.
type GeometryFactory interface {
	CreateEmpty() Geometry
	CreatePoints(coords []Coordinate) Geometry
	CreateLines(lines [][]Coordinate) Geometry
	CreatePolygons(polys []PolygonShape) Geometry
	// CreateCollection wraps a dimensionally-mixed result, e.g. the polygons
	// and lines of a polygon unioned with a linestring outside it.
	CreateCollection(geoms []Geometry) Geometry
}
