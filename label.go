package overlay

import "fmt"

// Label records, for each of the two operands, this edge or node's
// topological location on the line itself and on its left/right sides.
// A side holding LocationNone means "not known" for area labels; an operand
// whose on/left/right are all LocationNone has no opinion about that operand
// at all (IsNull reports true for it).
type Label struct {
	on          [2]Location
	left, right [2]Location
}

func nullLabel() Label {
	return Label{
		on:    [2]Location{LocationNone, LocationNone},
		left:  [2]Location{LocationNone, LocationNone},
		right: [2]Location{LocationNone, LocationNone},
	}
}

// NewLabel builds a line label applying loc to both operands' ON location,
// leaving LEFT/RIGHT unset.
func NewLabel(loc Location) Label {
	l := nullLabel()
	l.on[0] = loc
	l.on[1] = loc
	return l
}

// NewLabelForGeom builds a line label for a single operand only.
func NewLabelForGeom(geomIndex int, loc Location) Label {
	l := nullLabel()
	l.on[geomIndex] = loc
	return l
}

// NewAreaLabel builds an area label applying the same on/left/right triple
// to both operands.
func NewAreaLabel(on, left, right Location) Label {
	return Label{on: [2]Location{on, on}, left: [2]Location{left, left}, right: [2]Location{right, right}}
}

// NewAreaLabelForGeom builds an area label for a single operand only.
func NewAreaLabelForGeom(geomIndex int, on, left, right Location) Label {
	l := nullLabel()
	l.on[geomIndex] = on
	l.left[geomIndex] = left
	l.right[geomIndex] = right
	return l
}

// GetLocation returns the location recorded for geomIndex at pos.
func (l Label) GetLocation(geomIndex int, pos Position) Location {
	switch pos {
	case PositionLeft:
		return l.left[geomIndex]
	case PositionRight:
		return l.right[geomIndex]
	default:
		return l.on[geomIndex]
	}
}

// SetLocation records loc for geomIndex at pos.
func (l *Label) SetLocation(geomIndex int, pos Position, loc Location) {
	switch pos {
	case PositionLeft:
		l.left[geomIndex] = loc
	case PositionRight:
		l.right[geomIndex] = loc
	default:
		l.on[geomIndex] = loc
	}
}

// SetAllLocations sets ON, LEFT, and RIGHT for geomIndex to the same value.
func (l *Label) SetAllLocations(geomIndex int, loc Location) {
	l.on[geomIndex] = loc
	l.left[geomIndex] = loc
	l.right[geomIndex] = loc
}

// SetAllLocationsIfNull fills in any of geomIndex's three slots that are
// still LocationNone, leaving already-known slots untouched.
func (l *Label) SetAllLocationsIfNull(geomIndex int, loc Location) {
	if l.on[geomIndex] == LocationNone {
		l.on[geomIndex] = loc
	}
	if l.left[geomIndex] == LocationNone {
		l.left[geomIndex] = loc
	}
	if l.right[geomIndex] == LocationNone {
		l.right[geomIndex] = loc
	}
}

// IsNull reports whether geomIndex has no location information at all.
func (l Label) IsNull(geomIndex int) bool {
	return l.on[geomIndex] == LocationNone && l.left[geomIndex] == LocationNone && l.right[geomIndex] == LocationNone
}

// IsAnyNull reports whether any of geomIndex's three slots are still unset.
func (l Label) IsAnyNull(geomIndex int) bool {
	return l.on[geomIndex] == LocationNone || l.left[geomIndex] == LocationNone || l.right[geomIndex] == LocationNone
}

// IsArea reports whether either operand carries an area (left+right) label.
func (l Label) IsArea() bool {
	return l.IsAreaFor(0) || l.IsAreaFor(1)
}

// IsAreaFor reports whether geomIndex carries an area label, i.e. both its
// LEFT and RIGHT locations are known.
func (l Label) IsAreaFor(geomIndex int) bool {
	return l.left[geomIndex] != LocationNone && l.right[geomIndex] != LocationNone
}

// IsLine reports whether geomIndex carries only a line (ON-only) label.
func (l Label) IsLine(geomIndex int) bool {
	return !l.IsAreaFor(geomIndex)
}

// Flip swaps LEFT and RIGHT for both operands, reflecting a directed edge
// being traversed in its reverse direction.
func (l *Label) Flip() {
	l.left[0], l.right[0] = l.right[0], l.left[0]
	l.left[1], l.right[1] = l.right[1], l.left[1]
}

// ToLine collapses geomIndex to an ON-only label, discarding LEFT/RIGHT. It
// is a no-op if geomIndex is not currently an area label. Used when depth
// normalization finds zero coverage delta for an operand: the edge has no
// area contribution from that operand and is relabelled as a pure line.
func (l *Label) ToLine(geomIndex int) {
	if !l.IsAreaFor(geomIndex) {
		return
	}
	l.left[geomIndex] = LocationNone
	l.right[geomIndex] = LocationNone
}

// Merge combines other into l: any slot l does not yet know is filled in
// from other; slots both know must agree, or Merge panics — two noded edge
// occurrences disagreeing about a geometry's side is a bug in the noder or
// labeller, not a recoverable input condition.
func (l *Label) Merge(other Label) {
	for i := 0; i < 2; i++ {
		l.on[i] = mergeLocation(l.on[i], other.on[i])
		l.left[i] = mergeLocation(l.left[i], other.left[i])
		l.right[i] = mergeLocation(l.right[i], other.right[i])
	}
}

func mergeLocation(have, incoming Location) Location {
	if have == LocationNone {
		return incoming
	}
	if incoming == LocationNone || incoming == have {
		return have
	}
	panic(fmt.Sprintf("overlay: inconsistent label merge: have %v, incoming %v", have, incoming))
}

func (l Label) String() string {
	return fmt.Sprintf("A:%s/%s/%s B:%s/%s/%s",
		l.on[0], l.left[0], l.right[0], l.on[1], l.left[1], l.right[1])
}
