// Command fitgraphics prints the data of the figure explaining how the
// absorption edge is found: a model spectrum, the left and right lines, their
// intersection, and the guides marking WMin and IMax.
//
// The output is YAML, meant to be fed to a plotting tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"honnef.co/go/edgefit"
)

var (
	samplesArg = flag.Int("n", edgefit.DefaultSamples, "number of samples per curve")
	outArg     = flag.String("o", "", "write to `file` instead of standard output")
	calibArg   = flag.String("calib", "", "report the temperature using the calibration in YAML `file`")
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options]\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 || *samplesArg < 2 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	err := run(*outArg, *calibArg, *samplesArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out, calib string, n int) (err error) {
	var cal edgefit.Calibration
	if calib != "" {
		cal, err = loadCalibration(calib)
		if err != nil {
			return err
		}
	}
	fig, err := explanatoryFigure(n, cal)
	if err != nil {
		return err
	}
	if out == "" {
		return writeFigure(os.Stdout, fig)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeFigure(f, fig)
}

type figure struct {
	Title        string     `yaml:"title"`
	XLabel       string     `yaml:"xlabel"`
	YLabel       string     `yaml:"ylabel"`
	Curves       []curve    `yaml:"curves"`
	Intersection [2]float64 `yaml:"intersection,flow"`
	Temperature  *float64   `yaml:"temperature,omitempty"`
	Guides       []guide    `yaml:"guides"`
}

type curve struct {
	Name     string       `yaml:"name"`
	Function string       `yaml:"function"`
	Points   [][2]float64 `yaml:"points,flow"`
}

type guide struct {
	At         [2]float64    `yaml:"at,flow"`
	Vertical   [2][2]float64 `yaml:"vertical,flow"`
	Horizontal [2][2]float64 `yaml:"horizontal,flow"`
	Labels     []label       `yaml:"labels,omitempty"`
}

type label struct {
	Text string     `yaml:"text"`
	At   [2]float64 `yaml:"at,flow"`
}

// explanatoryFigure computes the figure with n samples per curve. If cal is
// not nil, the temperature belonging to the edge is included.
func explanatoryFigure(n int, cal edgefit.Calibration) (*figure, error) {
	const (
		xMin   = 1.0
		center = 6.0
	)
	spectrum := edgefit.Gaussian{Amplitude: 10, Variance: math.Sqrt2, Center: center, Baseline: 2}
	left := edgefit.Ln(1.8, 0.1)
	right := edgefit.Ln(-10.3, 4.0)

	xs := edgefit.Linspace(xMin, 8, n)
	fg, err := edgefit.NewFitGraphics(xs, spectrum.EvalSlice(nil, xs), left, right)
	if err != nil {
		return nil, err
	}

	fig := &figure{
		Title:  "SpectraProcessor.FitGraphics",
		XLabel: "Wavelength (a.u.)",
		YLabel: "Intensities (a.u.)",
		Curves: []curve{
			newCurve("spectrum", spectrum, xMin, 8, n),
			newCurve("left", left, 0, 7, n),
			newCurve("right", right, 2, 6, n),
		},
		Intersection: pair(fg.Intersection),
	}
	if t, ok := fg.Temperature(cal); ok {
		fig.Temperature = &t
	}

	guides := []edgefit.Guide{
		edgefit.NewGuide(xMin, left, edgefit.WithXLabel("WMin")),
		edgefit.NewGuide(center, left, edgefit.WithYMax(13)),
		edgefit.NewGuide(right.Inverse(0), right),
		edgefit.NewGuide(right.Inverse(spectrum.Eval(center)), right,
			edgefit.WithXMax(6.5), edgefit.WithYLabel("IMax")),
	}
	for _, g := range guides {
		fig.Guides = append(fig.Guides, newGuide(g))
	}
	return fig, nil
}

type describedFunc interface {
	edgefit.Func
	fmt.Stringer
}

func newCurve(name string, f describedFunc, lo, hi float64, n int) curve {
	pts := edgefit.Sample(f, lo, hi, n)
	c := curve{
		Name:     name,
		Function: f.String(),
		Points:   make([][2]float64, len(pts)),
	}
	for i, pt := range pts {
		c.Points[i] = pair(pt)
	}
	return c
}

func newGuide(g edgefit.Guide) guide {
	out := guide{
		At:         pair(g.At),
		Vertical:   segment(g.Vertical()),
		Horizontal: segment(g.Horizontal()),
	}
	if pt, ok := g.XLabelAt(); ok {
		out.Labels = append(out.Labels, label{Text: g.XLabel, At: pair(pt)})
	}
	if pt, ok := g.YLabelAt(); ok {
		out.Labels = append(out.Labels, label{Text: g.YLabel, At: pair(pt)})
	}
	return out
}

func pair(pt edgefit.Point) [2]float64 {
	x, y := pt.Splat()
	return [2]float64{x, y}
}

func segment(s edgefit.Segment) [2][2]float64 {
	return [2][2]float64{pair(s.P0), pair(s.P1)}
}

// calibrationFile is either
//
//	polynomial: [c0, c1, ...]
//
// or
//
//	points:
//	  edges: [...]
//	  temperatures: [...]
type calibrationFile struct {
	Polynomial []float64 `yaml:"polynomial"`
	Points     *struct {
		Edges        []float64 `yaml:"edges"`
		Temperatures []float64 `yaml:"temperatures"`
	} `yaml:"points"`
}

func loadCalibration(name string) (edgefit.Calibration, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var cf calibrationFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	switch {
	case cf.Polynomial != nil && cf.Points != nil:
		return nil, fmt.Errorf("%s: both polynomial and points given", name)
	case cf.Polynomial != nil:
		return edgefit.Polynomial(cf.Polynomial), nil
	case cf.Points != nil:
		c, err := edgefit.NewSplineCalibration(cf.Points.Edges, cf.Points.Temperatures)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%s: no calibration found", name)
	}
}

func writeFigure(w io.Writer, fig *figure) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fig); err != nil {
		return fmt.Errorf("encoding figure: %w", err)
	}
	return enc.Close()
}
