package edgefit

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// edgeSpectrum returns a spectrum that is flat-ish up to x = 9 and rises
// steeply afterwards.
func edgeSpectrum() (xs, ys []float64) {
	left, right := Ln(1, 0.1), Ln(-30, 4)
	xs = Linspace(0, 19, 20)
	ys = make([]float64, len(xs))
	for i, x := range xs {
		if x < 10 {
			ys[i] = left.Eval(x)
		} else {
			ys[i] = right.Eval(x)
		}
	}
	return xs, ys
}

func TestFitEdge(t *testing.T) {
	xs, ys := edgeSpectrum()
	fg, err := FitEdge(xs, ys, Span{Start: 0, Len: 8}, Span{Start: 10, Len: 10})
	if err != nil {
		t.Fatal(err)
	}
	if fg.IsEmpty() {
		t.Fatal("fit graphics are empty")
	}

	approx := cmpopts.EquateApprox(0, 1e-9)
	edge := 31 / 3.9
	if math.Abs(fg.Edge-edge) > 1e-9 {
		t.Errorf("got edge at %v, want %v", fg.Edge, edge)
	}
	diff(t, Pt(edge, 1+0.1*edge), fg.Intersection, approx)
	diff(t, Ln(1, 0.1), fg.Left, approx)
	diff(t, Ln(-30, 4), fg.Right, approx)
	diff(t, Segment{Pt(0, 1), Pt(19, 2.9)}, fg.LeftSegment, approx)
	diff(t, Segment{Pt(7.5, 0), Pt(19, 46)}, fg.RightSegment, approx)
	diff(t, Span{0, 8}, fg.MarkedLeft)
	diff(t, Span{10, 10}, fg.MarkedRight)
	if math.Abs(fg.LeftRSquared-1) > 1e-9 || math.Abs(fg.RightRSquared-1) > 1e-9 {
		t.Errorf("got R² %v and %v, want 1", fg.LeftRSquared, fg.RightRSquared)
	}

	// The plotted segments cross where the lines do.
	pt, ok := fg.LeftSegment.CrossingPoint(fg.RightSegment)
	if !ok {
		t.Fatal("segments don't cross")
	}
	diff(t, fg.Intersection, pt, approx)
}

func TestFitEdgeErrors(t *testing.T) {
	xs, ys := edgeSpectrum()
	tests := []struct {
		left, right Span
		want        error
	}{
		{Span{0, 8}, Span{15, 10}, ErrSpan},
		{Span{-1, 8}, Span{10, 10}, ErrSpan},
		{Span{0, 1}, Span{10, 10}, ErrTooFewPoints},
		{Span{0, 8}, Span{10, 0}, ErrTooFewPoints},
	}
	for _, tt := range tests {
		fg, err := FitEdge(xs, ys, tt.left, tt.right)
		if !errors.Is(err, tt.want) {
			t.Errorf("FitEdge(%v, %v): got error %v, want %v", tt.left, tt.right, err, tt.want)
		}
		if !fg.IsEmpty() {
			t.Errorf("FitEdge(%v, %v): got non-empty result on error", tt.left, tt.right)
		}
	}

	if _, err := FitEdge(xs, ys[:5], Span{0, 2}, Span{2, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("got error %v, want %v", err, ErrLengthMismatch)
	}
}

func TestNewFitGraphics(t *testing.T) {
	spectrum := Gaussian{Amplitude: 10, Variance: math.Sqrt2, Center: 6, Baseline: 2}
	xs := Linspace(1, 8, 15)
	ys := spectrum.EvalSlice(nil, xs)
	left, right := Ln(1.8, 0.1), Ln(-10.3, 4.0)

	fg, err := NewFitGraphics(xs, ys, left, right)
	if err != nil {
		t.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-12)
	want, _ := Intersection(left, right)
	diff(t, want, fg.Intersection, approx)
	if fg.Edge != fg.Intersection.X {
		t.Errorf("edge %v differs from intersection %v", fg.Edge, fg.Intersection)
	}
	// xs[10] == 6 is the peak of the spectrum.
	diff(t, Segment{Pt(1, left.Eval(1)), Pt(6, left.Eval(6))}, fg.LeftSegment, approx)
	diff(t, Segment{Pt(right.Inverse(0), 0), Pt(right.Inverse(12), 12)}, fg.RightSegment, approx)
	diff(t, Span{}, fg.MarkedLeft)

	if _, err := NewFitGraphics(xs, ys, left, Ln(0, 0.1)); !errors.Is(err, ErrParallel) {
		t.Errorf("got error %v, want %v", err, ErrParallel)
	}
	if _, err := NewFitGraphics(nil, nil, left, right); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("got error %v, want %v", err, ErrTooFewPoints)
	}
}

func TestSpanSlice(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{10, 11, 12, 13}
	mx, my, err := Span{Start: 1, Len: 2}.Slice(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, 2}, mx)
	diff(t, []float64{11, 12}, my)

	mx[0] = 100
	if xs[1] != 1 {
		t.Error("Slice didn't copy")
	}

	if _, _, err := (Span{Start: 3, Len: 2}).Slice(xs, ys); !errors.Is(err, ErrSpan) {
		t.Errorf("got error %v, want %v", err, ErrSpan)
	}
}

func TestFitGraphicsZero(t *testing.T) {
	var fg FitGraphics
	if !fg.IsEmpty() {
		t.Error("zero value isn't empty")
	}
}
