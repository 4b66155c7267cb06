package overlay

import (
	"reflect"
	"testing"
)

func TestDepthAddIncrementsOnlyInterior(t *testing.T) {
	d := NewDepth()
	d.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationExterior))
	got := [2]int{d.GetDepth(0, PositionLeft), d.GetDepth(0, PositionRight)}
	want := [2]int{1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after one INTERIOR/EXTERIOR add: got %v, want %v", got, want)
	}
}

func TestDepthNormalizeSubtractsMinimum(t *testing.T) {
	d := NewDepth()
	for i := 0; i < 3; i++ {
		d.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationInterior))
	}
	d.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationExterior, LocationInterior))
	// left saw 3 INTERIOR claims, right saw 4.
	d.Normalize()
	got := [2]int{d.GetDepth(0, PositionLeft), d.GetDepth(0, PositionRight)}
	want := [2]int{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize: got %v, want %v", got, want)
	}
}

func TestDepthDeltaZeroAfterEqualCoverage(t *testing.T) {
	d := NewDepth()
	d.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationInterior))
	d.Normalize()
	if delta := d.Delta(0); delta != 0 {
		t.Errorf("Delta with equal left/right coverage = %d, want 0", delta)
	}
}

func TestDepthIsNullGeomUntouched(t *testing.T) {
	d := NewDepth()
	if !d.IsNullGeom(0) || !d.IsNullGeom(1) {
		t.Fatalf("fresh Depth should report both operands null")
	}
	d.Add(NewAreaLabelForGeom(0, LocationBoundary, LocationInterior, LocationExterior))
	if d.IsNullGeom(0) {
		t.Fatalf("operand 0 should no longer be null after Add")
	}
	if !d.IsNullGeom(1) {
		t.Fatalf("operand 1 should still be null")
	}
}
