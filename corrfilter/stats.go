package corrfilter

import (
	"fmt"

	"github.com/jvlmdr/go-fftw/fftw"
)

// Stats contains the Fourier-domain sums accumulated over a training set.
// Auto[p][q] is the sum over images of conj(F[p]) * F[q] per frequency bin.
// The independent-channel estimator populates the diagonal only.
// Cross[p] is the sum over images of conj(F[p]) * GHat per frequency bin,
// where GHat is the transform of the desired response.
// The trained filter is recoverable from these sums alone.
type Stats struct {
	Auto   [][]*fftw.Array2
	Cross  []*fftw.Array2
	Images int
}

// NewStats allocates zeroed sums for the given number of channels
// at m x n frequency bins.
// If joint is false, only the diagonal of Auto is allocated.
func NewStats(channels, m, n int, joint bool) *Stats {
	auto := make([][]*fftw.Array2, channels)
	for p := range auto {
		auto[p] = make([]*fftw.Array2, channels)
		for q := range auto[p] {
			if p != q && !joint {
				continue
			}
			auto[p][q] = fftw.NewArray2(m, n)
		}
	}
	cross := make([]*fftw.Array2, channels)
	for p := range cross {
		cross[p] = fftw.NewArray2(m, n)
	}
	return &Stats{auto, cross, 0}
}

// Channels returns the number of channels.
func (s *Stats) Channels() int {
	return len(s.Cross)
}

// Dims returns the number of frequency bins in each direction.
func (s *Stats) Dims() (int, int) {
	return s.Cross[0].Dims()
}

// accumulate adds the contribution of one image.
// fHat[p] is the transform of channel p at the solve dimensions.
func (s *Stats) accumulate(fHat []*fftw.Array2, gHat *fftw.Array2) {
	for p := range s.Auto {
		for q, a := range s.Auto[p] {
			if a == nil {
				continue
			}
			addConjMul(a, fHat[p], fHat[q])
		}
	}
	for p := range s.Cross {
		addConjMul(s.Cross[p], fHat[p], gHat)
	}
	s.Images++
}

// Clone creates a copy.
func (s *Stats) Clone() *Stats {
	t := &Stats{
		Auto:   make([][]*fftw.Array2, len(s.Auto)),
		Cross:  make([]*fftw.Array2, len(s.Cross)),
		Images: s.Images,
	}
	for p := range s.Auto {
		t.Auto[p] = make([]*fftw.Array2, len(s.Auto[p]))
		for q, a := range s.Auto[p] {
			if a == nil {
				continue
			}
			t.Auto[p][q] = cloneArray(a)
		}
	}
	for p, b := range s.Cross {
		t.Cross[p] = cloneArray(b)
	}
	return t
}

// AddStats combines the sums of two training runs.
// Neither operand can be nil.
// Panics if the dimensions or sparsity patterns differ.
func AddStats(lhs, rhs *Stats) *Stats {
	out := lhs.Clone()
	addStatsTo(out, rhs)
	return out
}

// AddStatsToEither combines the sums of two training runs.
// One of the inputs will be modified.
// If either operand is nil, then the other is returned.
func AddStatsToEither(lhs, rhs *Stats) *Stats {
	if rhs == nil {
		return lhs
	}
	if lhs == nil {
		return rhs
	}
	addStatsTo(lhs, rhs)
	return lhs
}

func addStatsTo(dst, src *Stats) {
	if dst.Channels() != src.Channels() {
		panic(fmt.Sprintf("different number of channels: %d, %d", dst.Channels(), src.Channels()))
	}
	for p := range dst.Auto {
		for q := range dst.Auto[p] {
			if (dst.Auto[p][q] == nil) != (src.Auto[p][q] == nil) {
				panic(fmt.Sprintf("different auto terms at (%d, %d)", p, q))
			}
			if dst.Auto[p][q] == nil {
				continue
			}
			addTo(dst.Auto[p][q], src.Auto[p][q])
		}
	}
	for p := range dst.Cross {
		addTo(dst.Cross[p], src.Cross[p])
	}
	dst.Images += src.Images
}
