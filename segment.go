package edgefit

// Segment represents a line segment, as drawn for a fitted line or a guide.
type Segment struct {
	/// The segment's start point.
	P0 Point
	/// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Eval returns the point at t ∈ [0, 1] along the segment.
func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

func (s Segment) Midpoint() Point {
	return s.P0.Midpoint(s.P1)
}

// CrossingPoint computes the point where two segments, if extended to
// infinity, would cross.
func (s Segment) CrossingPoint(o Segment) (Point, bool) {
	ab := s.P1.Sub(s.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(s.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Line returns the linear function passing through both end points. Vertical
// and degenerate segments have no such function.
func (s Segment) Line() (Line, bool) {
	d := s.P1.Sub(s.P0)
	if d.X == 0 {
		return Line{}, false
	}
	slope := d.Y / d.X
	return Line{Constant: s.P0.Y - slope*s.P0.X, Slope: slope}, true
}

func (s Segment) IsInf() bool {
	return s.P0.IsInf() || s.P1.IsInf()
}

func (s Segment) IsNaN() bool {
	return s.P0.IsNaN() || s.P1.IsNaN()
}
