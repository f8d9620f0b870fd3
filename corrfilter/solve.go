package corrfilter

import (
	"fmt"

	"github.com/jvlmdr/go-fftw/fftw"
	"github.com/jvlmdr/lin-go/clap"
	"github.com/jvlmdr/lin-go/cmat"
)

// Algorithm names.
const (
	// MOSSE estimates each channel independently.
	MOSSE = "mosse"
	// MCCF couples the channels with one system per frequency bin.
	MCCF = "mccf"
)

// Guards against division by a zero spectrum when lambda is zero.
const epsReg = 1e-10

// Solve recovers the Fourier-domain filter from accumulated sums.
// The returned slice holds one frequency plane per channel.
func Solve(stats *Stats, algo string, lambda float64) ([]*fftw.Array2, error) {
	switch algo {
	case MOSSE:
		return solveIndep(stats, lambda), nil
	case MCCF:
		return solveJoint(stats, lambda)
	default:
		return nil, fmt.Errorf(`unknown algorithm: "%s"`, algo)
	}
}

func regularize(lambda float64) float64 {
	if lambda <= 0 {
		return epsReg
	}
	return lambda
}

// solveIndep divides the cross term by the auto spectrum channel by channel.
func solveIndep(stats *Stats, lambda float64) []*fftw.Array2 {
	m, n := stats.Dims()
	reg := complex(regularize(lambda), 0)
	hHat := make([]*fftw.Array2, stats.Channels())
	for p := range hHat {
		hHat[p] = fftw.NewArray2(m, n)
		a, b := stats.Auto[p][p], stats.Cross[p]
		for u := 0; u < m; u++ {
			for v := 0; v < n; v++ {
				hHat[p].Set(u, v, b.At(u, v)/(a.At(u, v)+reg))
			}
		}
	}
	return hHat
}

// solveJoint solves a channels x channels Hermitian system per frequency bin.
// The regularized matrix is positive definite even where the
// accumulated spectra are rank deficient.
func solveJoint(stats *Stats, lambda float64) ([]*fftw.Array2, error) {
	c := stats.Channels()
	m, n := stats.Dims()
	reg := complex(regularize(lambda), 0)
	for p := 0; p < c; p++ {
		for q := 0; q < c; q++ {
			if stats.Auto[p][q] == nil {
				return nil, fmt.Errorf("no cross-channel sums for (%d, %d)", p, q)
			}
		}
	}
	hHat := make([]*fftw.Array2, c)
	for p := range hHat {
		hHat[p] = fftw.NewArray2(m, n)
	}
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			A := cmat.New(c, c)
			for p := 0; p < c; p++ {
				for q := 0; q < c; q++ {
					a := stats.Auto[p][q].At(u, v)
					if p == q {
						a += reg
					}
					A.Set(p, q, a)
				}
			}
			y := make([]complex128, c)
			for p := 0; p < c; p++ {
				y[p] = stats.Cross[p].At(u, v)
			}
			z, err := clap.SolvePosDef(A, y)
			if err != nil {
				return nil, err
			}
			for p := 0; p < c; p++ {
				hHat[p].Set(u, v, z[p])
			}
		}
	}
	return hHat, nil
}
