package edgefit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrParallel = errors.New("fitted lines do not intersect")
	ErrSpan     = errors.New("span out of range")
)

// Span marks Len consecutive data points, starting at index Start.
type Span struct {
	Start int
	Len   int
}

// End returns the index just past the span.
func (sp Span) End() int { return sp.Start + sp.Len }

func (sp Span) valid(n int) bool {
	return sp.Start >= 0 && sp.Len >= 0 && sp.End() <= n
}

// Slice returns copies of the marked parts of xs and ys.
func (sp Span) Slice(xs, ys []float64) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, ErrLengthMismatch
	}
	if !sp.valid(len(xs)) {
		return nil, nil, fmt.Errorf("span [%d, %d) of %d points: %w", sp.Start, sp.End(), len(xs), ErrSpan)
	}
	mx := make([]float64, sp.Len)
	my := make([]float64, sp.Len)
	copy(mx, xs[sp.Start:sp.End()])
	copy(my, ys[sp.Start:sp.End()])
	return mx, my, nil
}

// FitGraphics describes how the absorption edge of a spectrum was found: two
// lines, one fitted to the flat part of the spectrum left of the edge and one
// to its steep flank, and their intersection.
//
// The zero value is empty and has nothing to show.
type FitGraphics struct {
	// The wavelength of the absorption edge, i.e. Intersection.X.
	Edge         float64
	Intersection Point

	Left  Line
	Right Line

	// The left line between the first wavelength and the wavelength of
	// maximum intensity.
	LeftSegment Segment
	// The right line between zero and maximum intensity.
	RightSegment Segment

	// Goodness of the fits. Zero if the lines weren't fitted.
	LeftRSquared  float64
	RightRSquared float64
	// Data points the lines were fitted to. Zero if the lines weren't fitted.
	MarkedLeft  Span
	MarkedRight Span

	nonEmpty bool
}

// IsEmpty reports whether fg is the zero value.
func (fg FitGraphics) IsEmpty() bool { return !fg.nonEmpty }

// Temperature converts the absorption edge to a temperature. ok is false if
// fg is empty or c is nil.
func (fg FitGraphics) Temperature(c Calibration) (t float64, ok bool) {
	if fg.IsEmpty() || c == nil {
		return 0, false
	}
	return c.Temperature(fg.Edge), true
}

// NewFitGraphics describes the spectrum (xs[i], ys[i]) and the given left and
// right lines. The right line must not be horizontal.
func NewFitGraphics(xs, ys []float64, left, right Line) (FitGraphics, error) {
	if len(xs) != len(ys) {
		return FitGraphics{}, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return FitGraphics{}, ErrTooFewPoints
	}
	pt, ok := Intersection(left, right)
	if !ok {
		return FitGraphics{}, fmt.Errorf("%v and %v: %w", left, right, ErrParallel)
	}

	imax := floats.MaxIdx(ys)
	yMax := ys[imax]
	return FitGraphics{
		Edge:         pt.X,
		Intersection: pt,
		Left:         left,
		Right:        right,
		LeftSegment:  left.Segment(xs[0], xs[imax]),
		RightSegment: Segment{
			P0: Pt(right.Inverse(0), 0),
			P1: Pt(right.Inverse(yMax), yMax),
		},
		nonEmpty: true,
	}, nil
}

// FitEdge finds the absorption edge of the spectrum (xs[i], ys[i]) by fitting a
// line to each of the two spans and intersecting the lines.
func FitEdge(xs, ys []float64, left, right Span) (FitGraphics, error) {
	lfit, err := fitSpan(xs, ys, left)
	if err != nil {
		return FitGraphics{}, fmt.Errorf("left line: %w", err)
	}
	rfit, err := fitSpan(xs, ys, right)
	if err != nil {
		return FitGraphics{}, fmt.Errorf("right line: %w", err)
	}
	fg, err := NewFitGraphics(xs, ys, lfit.Line, rfit.Line)
	if err != nil {
		return FitGraphics{}, err
	}
	fg.LeftRSquared = lfit.RSquared
	fg.RightRSquared = rfit.RSquared
	fg.MarkedLeft = left
	fg.MarkedRight = right
	return fg, nil
}

func fitSpan(xs, ys []float64, sp Span) (LineFit, error) {
	mx, my, err := sp.Slice(xs, ys)
	if err != nil {
		return LineFit{}, err
	}
	return FitLine(mx, my)
}
