package edgefit

// Offset of guide labels from the point they annotate.
var labelOffset = Vec(0.1, 0.2)

// Guide highlights the point (x, f(x)) of a plot by connecting it to both axes.
//
// The vertical guide runs from (x, 0) up to (x, YMax), the horizontal guide
// from (0, y) to (XMax, y). Without options, both end at the highlighted point.
type Guide struct {
	// The highlighted point.
	At Point
	// How far the horizontal guide extends.
	XMax float64
	// How far the vertical guide extends.
	YMax float64
	// Annotation of the vertical guide, placed near the x axis.
	XLabel string
	// Annotation of the horizontal guide, placed near the y axis.
	YLabel string
}

// GuideOption configures a [Guide] created by [NewGuide].
type GuideOption func(*Guide)

// WithXMax extends the horizontal guide to xMax.
func WithXMax(xMax float64) GuideOption {
	return func(g *Guide) { g.XMax = xMax }
}

// WithYMax extends the vertical guide to yMax.
func WithYMax(yMax float64) GuideOption {
	return func(g *Guide) { g.YMax = yMax }
}

// WithXLabel annotates the vertical guide.
func WithXLabel(label string) GuideOption {
	return func(g *Guide) { g.XLabel = label }
}

// WithYLabel annotates the horizontal guide.
func WithYLabel(label string) GuideOption {
	return func(g *Guide) { g.YLabel = label }
}

// NewGuide returns a guide highlighting (x, f(x)).
func NewGuide(x float64, f Func, opts ...GuideOption) Guide {
	y := f.Eval(x)
	g := Guide{
		At:   Pt(x, y),
		XMax: x,
		YMax: y,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Vertical returns the guide connecting the point to the x axis.
func (g Guide) Vertical() Segment {
	return Segment{P0: Pt(g.At.X, 0), P1: Pt(g.At.X, g.YMax)}
}

// Horizontal returns the guide connecting the point to the y axis.
func (g Guide) Horizontal() Segment {
	return Segment{P0: Pt(0, g.At.Y), P1: Pt(g.XMax, g.At.Y)}
}

// XLabelAt returns the anchor of XLabel, just right of the vertical guide's
// foot. ok is false if the guide has no XLabel.
func (g Guide) XLabelAt() (pt Point, ok bool) {
	if g.XLabel == "" {
		return Point{}, false
	}
	return Pt(g.XMax+labelOffset.X, labelOffset.Y), true
}

// YLabelAt returns the anchor of YLabel, just above the horizontal guide's
// start. ok is false if the guide has no YLabel.
func (g Guide) YLabelAt() (pt Point, ok bool) {
	if g.YLabel == "" {
		return Point{}, false
	}
	return Pt(labelOffset.X, g.YMax+labelOffset.Y), true
}
