package edgefit

import (
	"fmt"
)

// Line represents the linear function y = Slope·x + Constant. It is both a
// [Func] and an [Invertible].
//
// Unlike [Segment], a Line has no end points.
type Line struct {
	// The constant term, i.e. the value at x = 0.
	Constant float64
	// The linear term.
	Slope float64
}

var _ Invertible = Line{}

// Ln returns the line y = slope·x + constant.
func Ln(constant, slope float64) Line {
	return Line{Constant: constant, Slope: slope}
}

// Eval returns the value of the line at x.
func (l Line) Eval(x float64) float64 {
	return l.Slope*x + l.Constant
}

// EvalSlice evaluates the line at every element of xs. The results are stored
// in dst if it has sufficient capacity.
func (l Line) EvalSlice(dst, xs []float64) []float64 {
	return apply(dst, xs, l.Eval)
}

// Inverse returns the x at which the line takes the value y.
//
// The slope must not be zero. For horizontal lines, the result is ±Inf, or
// NaN if y equals the constant.
func (l Line) Inverse(y float64) float64 {
	return (y - l.Constant) / l.Slope
}

// InverseSlice is the vectorized form of [Line.Inverse].
func (l Line) InverseSlice(dst, ys []float64) []float64 {
	return apply(dst, ys, l.Inverse)
}

// Intersect is shorthand for Intersection(l, o).
func (l Line) Intersect(o Line) (Point, bool) {
	return Intersection(l, o)
}

// IsParallel reports whether the two lines have the same slope.
func (l Line) IsParallel(o Line) bool {
	return l.Slope == o.Slope
}

// Segment returns the part of the line between x0 and x1.
func (l Line) Segment(x0, x1 float64) Segment {
	return Segment{
		P0: Pt(x0, l.Eval(x0)),
		P1: Pt(x1, l.Eval(x1)),
	}
}

func (l Line) String() string {
	return fmt.Sprintf("y = %gx + %g", l.Slope, l.Constant)
}

// Intersection computes the point where the two lines cross. The y
// coordinate is that of a at the crossing.
//
// Lines of equal slope are parallel (or coincident) and don't have a unique
// intersection; in that case, ok is false.
func Intersection(a, b Line) (pt Point, ok bool) {
	if a.IsParallel(b) {
		return Point{}, false
	}
	x := (a.Constant - b.Constant) / (b.Slope - a.Slope)
	return Pt(x, a.Eval(x)), true
}
