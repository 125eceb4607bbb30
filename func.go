package edgefit

// Func describes real functions of one variable, such as [Line] and
// [Gaussian].
type Func interface {
	Eval(x float64) float64
}

// Invertible is implemented by functions that can solve for x given y.
type Invertible interface {
	Func
	Inverse(y float64) float64
}

var _ Func = FuncOf(nil)

// FuncOf adapts an ordinary function to the [Func] interface.
type FuncOf func(float64) float64

func (f FuncOf) Eval(x float64) float64 { return f(x) }

// apply evaluates f for every element of xs, storing the results in dst. If
// dst is too short, a new slice is allocated.
func apply(dst, xs []float64, f func(float64) float64) []float64 {
	if cap(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}
	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = f(x)
	}
	return dst
}
