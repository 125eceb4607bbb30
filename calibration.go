package edgefit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

var ErrNotIncreasing = errors.New("calibration edges must be strictly increasing")

// Calibration converts the wavelength of an absorption edge to the
// temperature of the sample.
type Calibration interface {
	Temperature(edge float64) float64
}

var (
	_ Calibration = Polynomial(nil)
	_ Calibration = (*SplineCalibration)(nil)
	_ Func        = Polynomial(nil)
)

// Polynomial is a polynomial given by its coefficients in order of increasing
// degree, so that Polynomial{c0, c1, c2} is c0 + c1·x + c2·x². The zero-length
// polynomial is zero everywhere.
type Polynomial []float64

// Eval evaluates the polynomial at x.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Temperature evaluates the polynomial at the edge wavelength.
func (p Polynomial) Temperature(edge float64) float64 {
	return p.Eval(edge)
}

// SplineCalibration interpolates between measured pairs of edge wavelength
// and temperature with a natural cubic spline.
type SplineCalibration struct {
	spline interp.NaturalCubic
	lo, hi float64
}

// NewSplineCalibration returns a calibration passing through the points
// (edges[i], temperatures[i]). At least three points are required and the
// edges must be strictly increasing.
func NewSplineCalibration(edges, temperatures []float64) (*SplineCalibration, error) {
	if len(edges) != len(temperatures) {
		return nil, fmt.Errorf("calibrating %d edges to %d temperatures: %w", len(edges), len(temperatures), ErrLengthMismatch)
	}
	if len(edges) < 3 {
		return nil, fmt.Errorf("calibrating with %d points: %w", len(edges), ErrTooFewPoints)
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, fmt.Errorf("edge %d (%g) after %g: %w", i, edges[i], edges[i-1], ErrNotIncreasing)
		}
	}

	c := &SplineCalibration{
		lo: edges[0],
		hi: edges[len(edges)-1],
	}
	if err := c.spline.Fit(edges, temperatures); err != nil {
		return nil, fmt.Errorf("fitting calibration spline: %w", err)
	}
	return c, nil
}

// Temperature interpolates the temperature at the edge wavelength. Outside the
// calibrated range, see [SplineCalibration.InRange], the result is not
// meaningful.
func (c *SplineCalibration) Temperature(edge float64) float64 {
	return c.spline.Predict(edge)
}

// InRange reports whether edge lies within the calibrated wavelengths.
func (c *SplineCalibration) InRange(edge float64) bool {
	return edge >= c.lo && edge <= c.hi
}
