package edgefit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrLengthMismatch = errors.New("x and y data differ in length")
	ErrTooFewPoints   = errors.New("at least two points are required")
	ErrDegenerate     = errors.New("all x values are equal")
	ErrNonFinite      = errors.New("data contain NaN or infinite values")
)

// LineFit is the result of fitting a line to data.
type LineFit struct {
	Line Line
	// The coefficient of determination of the fit. It is 1 for data that lie
	// exactly on the line, and NaN if all y values are equal.
	RSquared float64
}

// FitLine fits a line to the points (xs[i], ys[i]) by ordinary least squares.
func FitLine(xs, ys []float64) (LineFit, error) {
	if len(xs) != len(ys) {
		return LineFit{}, fmt.Errorf("fitting %d x values to %d y values: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) < 2 {
		return LineFit{}, fmt.Errorf("fitting %d points: %w", len(xs), ErrTooFewPoints)
	}
	if floats.HasNaN(xs) || floats.HasNaN(ys) {
		return LineFit{}, fmt.Errorf("fitting %d points: %w", len(xs), ErrNonFinite)
	}
	if floats.Max(xs) == floats.Min(xs) {
		return LineFit{}, fmt.Errorf("fitting %d points: %w", len(xs), ErrDegenerate)
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return LineFit{}, fmt.Errorf("fitting %d points: %w", len(xs), ErrNonFinite)
	}
	return LineFit{
		Line:     Ln(alpha, beta),
		RSquared: stat.RSquared(xs, ys, nil, alpha, beta),
	}, nil
}
