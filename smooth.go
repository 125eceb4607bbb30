package edgefit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultPeakDifference is the largest difference between a point and the
// mean of its neighbours that [SmoothPointPeaks] tolerates by default.
const DefaultPeakDifference = 20

// SmoothBoxcar smooths src with a moving average of width 2·half + 1 and
// stores the result in dst, which is reallocated if too short. Near the ends
// of the data, the window is clipped to the available points. dst must not
// overlap src.
func SmoothBoxcar(dst, src []float64, half int) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	if half <= 0 {
		copy(dst, src)
		return dst
	}

	for i := range src {
		lo := max(i-half, 0)
		hi := min(i+half+1, len(src))
		dst[i] = floats.Sum(src[lo:hi]) / float64(hi-lo)
	}
	return dst
}

// SmoothPointPeaks replaces isolated spikes in src, such as those caused by
// hot detector pixels. A spike is an interior point that lies above both or
// below both of its neighbours, differs from their mean by more than maxDiff,
// and differs from it by at least as much as either neighbour differs from
// its own neighbourhood. Spikes are replaced by the mean of their neighbours;
// the end points are kept. The result is stored in dst, which is reallocated
// if too short; dst may be src itself.
func SmoothPointPeaks(dst, src []float64, maxDiff float64) []float64 {
	type fix struct {
		i    int
		mean float64
	}

	heights := make([]float64, len(src))
	for i := 1; i < len(src)-1; i++ {
		heights[i] = spikeHeight(src[i-1], src[i], src[i+1])
	}
	var fixes []fix
	for i := 1; i < len(src)-1; i++ {
		h := heights[i]
		if h > maxDiff && h >= heights[i-1] && h >= heights[i+1] {
			fixes = append(fixes, fix{i, (src[i-1] + src[i+1]) / 2})
		}
	}

	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	for _, f := range fixes {
		dst[f.i] = f.mean
	}
	return dst
}

// spikeHeight returns how far v sticks out of the mean of its neighbours, or
// zero if v lies between them.
func spikeHeight(left, v, right float64) float64 {
	if (v > left && v > right) || (v < left && v < right) {
		return math.Abs(v - (left+right)/2)
	}
	return 0
}
