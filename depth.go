package overlay

// depthNull marks a side that has never been incremented, distinct from a
// side that has been incremented zero net times.
const depthNull = -1

// Depth tracks, for each operand and each side of a directed edge, how many
// times an incident area label claimed that side as INTERIOR. It is the
// mechanism by which dimensional collapse is detected: an edge with equal
// left/right coverage for an operand contributes no area to that operand and
// is downgraded to a line via Label.ToLine.
type Depth struct {
	left, right [2]int
}

// NewDepth returns a Depth with both operands' sides unset.
func NewDepth() *Depth {
	return &Depth{left: [2]int{depthNull, depthNull}, right: [2]int{depthNull, depthNull}}
}

// GetDepth returns the raw counter for geomIndex at pos (LEFT or RIGHT; ON
// is not tracked and returns the LEFT counter).
func (d *Depth) GetDepth(geomIndex int, pos Position) int {
	if pos == PositionRight {
		return d.right[geomIndex]
	}
	return d.left[geomIndex]
}

// SetDepth overwrites the raw counter for geomIndex at pos.
func (d *Depth) SetDepth(geomIndex int, pos Position, v int) {
	if pos == PositionRight {
		d.right[geomIndex] = v
	} else {
		d.left[geomIndex] = v
	}
}

// IsNull reports whether neither operand has been touched.
func (d *Depth) IsNull() bool {
	return d.IsNullGeom(0) && d.IsNullGeom(1)
}

// IsNullGeom reports whether geomIndex has never been touched on either side.
func (d *Depth) IsNullGeom(geomIndex int) bool {
	return d.left[geomIndex] == depthNull && d.right[geomIndex] == depthNull
}

// IsNullAt reports whether geomIndex's pos side has never been touched.
func (d *Depth) IsNullAt(geomIndex int, pos Position) bool {
	return d.GetDepth(geomIndex, pos) == depthNull
}

// GetLocation derives a side's Location from its coverage count: positive
// coverage is interior, zero or untouched is exterior.
func (d *Depth) GetLocation(geomIndex int, pos Position) Location {
	if d.GetDepth(geomIndex, pos) <= 0 {
		return LocationExterior
	}
	return LocationInterior
}

func (d *Depth) addAt(geomIndex int, pos Position, loc Location) {
	if loc == LocationNone {
		return
	}
	if d.IsNullAt(geomIndex, pos) {
		d.SetDepth(geomIndex, pos, depthAtLocation(loc))
		return
	}
	d.SetDepth(geomIndex, pos, d.GetDepth(geomIndex, pos)+depthAtLocation(loc))
}

// depthAtLocation returns the depth increment contributed by a single side
// label: INTERIOR contributes 1, anything else (EXTERIOR or BOUNDARY) 0.
func depthAtLocation(loc Location) int {
	if loc == LocationInterior {
		return 1
	}
	return 0
}

// Add increments depths by 1 on every side lbl labels INTERIOR.
func (d *Depth) Add(lbl Label) {
	for i := 0; i < 2; i++ {
		d.addAt(i, PositionLeft, lbl.GetLocation(i, PositionLeft))
		d.addAt(i, PositionRight, lbl.GetLocation(i, PositionRight))
	}
}

// Normalize subtracts each operand's per-operand minimum side count from
// both of its sides, so that after normalization every count is
// non-negative and at least one side is exactly 0. An operand that was
// never touched is left alone; Delta/ToLine callers must check IsNullGeom
// first.
func (d *Depth) Normalize() {
	for i := 0; i < 2; i++ {
		if d.IsNullGeom(i) {
			continue
		}
		min := d.left[i]
		if d.right[i] < min {
			min = d.right[i]
		}
		if min < 0 {
			min = 0
		}
		d.left[i] = clampDelta(d.left[i], min)
		d.right[i] = clampDelta(d.right[i], min)
	}
}

func clampDelta(v, min int) int {
	if v > min {
		return v - min
	}
	return 0
}

// Delta returns the normalized LEFT-minus-RIGHT coverage difference for
// geomIndex. A zero delta means the operand contributes no area coverage to
// this edge (the dimensional-collapse case); callers normalize before
// calling Delta.
func (d *Depth) Delta(geomIndex int) int {
	return d.left[geomIndex] - d.right[geomIndex]
}
