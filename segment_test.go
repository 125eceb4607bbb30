package edgefit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentLength(t *testing.T) {
	s := Segment{Pt(0, 0), Pt(3, 4)}
	if l := s.Length(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
	diff(t, Pt(1.5, 2), s.Midpoint())
	diff(t, Pt(0.75, 1), s.Eval(0.25))
}

func TestSegmentCrossingPoint(t *testing.T) {
	left := Ln(1.8, 0.1)
	right := Ln(-10.3, 4.0)
	want, _ := Intersection(left, right)

	// The segments don't overlap the crossing; their extensions do.
	got, ok := left.Segment(0, 1).CrossingPoint(right.Segment(5, 6))
	if !ok {
		t.Fatal("segments don't cross")
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))

	if pt, ok := Ln(0, 1).Segment(0, 1).CrossingPoint(Ln(1, 1).Segment(0, 1)); ok {
		t.Errorf("parallel segments cross at %v", pt)
	}
}

func TestSegmentLine(t *testing.T) {
	l, ok := Segment{Pt(0, 1), Pt(2, 5)}.Line()
	if !ok {
		t.Fatal("no line through non-vertical segment")
	}
	diff(t, Ln(1, 2), l)

	if l, ok := (Segment{Pt(1, 0), Pt(1, 5)}).Line(); ok {
		t.Errorf("got line %v through vertical segment", l)
	}
}

func TestSegmentIsInf(t *testing.T) {
	if (Segment{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsInf() {
		t.Error("segment is infinite but shouldn't be")
	}
	if !(Segment{Pt(0.0, 0.0), Pt(math.Inf(1), 1.0)}).IsInf() {
		t.Errorf("segment is finite but shouldn't be")
	}
	if !(Segment{Pt(Ln(3, 0).Inverse(3), 0), Pt(0, 0)}).IsNaN() {
		t.Errorf("segment isn't NaN but should be")
	}
}
