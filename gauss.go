package edgefit

import (
	"fmt"
	"math"
)

// Gaussian is a bell-shaped curve on top of a constant baseline,
//
//	f(x) = Amplitude · exp(−(x − Center)² / (2·Variance²)) + Baseline.
//
// Variance is the width parameter σ of the curve, not σ². A zero variance
// divides by zero: the result is NaN at the center and Baseline elsewhere.
type Gaussian struct {
	Amplitude float64
	Variance  float64
	Center    float64
	Baseline  float64
}

var _ Func = Gaussian{}

// MakeGaussian returns the Gaussian curve of the given parameters as a
// function.
func MakeGaussian(amplitude, variance, center, baseline float64) func(float64) float64 {
	return Gaussian{
		Amplitude: amplitude,
		Variance:  variance,
		Center:    center,
		Baseline:  baseline,
	}.Eval
}

// Eval returns the value of the curve at x. At the center, the result is
// exactly Amplitude + Baseline.
func (g Gaussian) Eval(x float64) float64 {
	d := x - g.Center
	return g.Amplitude*math.Exp(-(d*d)/(2*g.Variance*g.Variance)) + g.Baseline
}

// EvalSlice evaluates the curve at every element of xs. The results are stored
// in dst if it has sufficient capacity.
func (g Gaussian) EvalSlice(dst, xs []float64) []float64 {
	return apply(dst, xs, g.Eval)
}

// Peak returns the extremum of the curve, (Center, Amplitude + Baseline). It is
// a maximum for positive amplitudes.
func (g Gaussian) Peak() Point {
	return Pt(g.Center, g.Amplitude+g.Baseline)
}

func (g Gaussian) String() string {
	return fmt.Sprintf("y = %g·exp(−(x − %g)² / (2·%g²)) + %g", g.Amplitude, g.Center, g.Variance, g.Baseline)
}
