package edgefit

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of samples used for plotting a curve.
const DefaultSamples = 1000

// Linspace returns n evenly spaced values over [lo, hi], including both end
// points. For n == 1 it returns [lo], for n <= 0 it returns nil.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	default:
		return floats.Span(make([]float64, n), lo, hi)
	}
}

// Sample evaluates f at n evenly spaced points of [lo, hi].
func Sample(f Func, lo, hi float64, n int) []Point {
	xs := Linspace(lo, hi, n)
	if xs == nil {
		return nil
	}
	out := make([]Point, len(xs))
	for i, x := range xs {
		out[i] = Pt(x, f.Eval(x))
	}
	return out
}
