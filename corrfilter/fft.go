package corrfilter

import (
	"log"
	"math"
	"math/cmplx"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-fftw/fftw"
)

// Copies one channel of an image into an FFT array and
// computes the forward transform.
// The image is copied into the top-left corner.
// Any extra space is filled with zeros.
func dftChannel(src *rimg64.Multi, channel, m, n int) *fftw.Array2 {
	dst := fftw.NewArray2(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var val complex128
			if i < src.Width && j < src.Height {
				val = complex(src.At(i, j, channel), 0)
			}
			dst.Set(i, j, val)
		}
	}
	fftw.FFT2To(dst, dst)
	return dst
}

// Copies an image into an FFT array and computes the forward transform.
// The image is copied into the top-left corner.
// Any extra space is filled with zeros.
func dftImage(src *rimg64.Image, m, n int) *fftw.Array2 {
	dst := fftw.NewArray2(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var val complex128
			if i < src.Width && j < src.Height {
				val = complex(src.At(i, j), 0)
			}
			dst.Set(i, j, val)
		}
	}
	fftw.FFT2To(dst, dst)
	return dst
}

// Takes the 2D inverse FFT and copies the real part out to one
// channel of an image, scaled by 1/(m n).
// The image must have the same dimensions as the array.
func idftToChannel(dst *rimg64.Multi, channel int, src *fftw.Array2) {
	m, n := src.Dims()
	fftw.IFFT2To(src, src)
	N := float64(m) * float64(n)
	// Accumulate total real and imaginary components to check.
	var re, im float64
	for i := 0; i < dst.Width; i++ {
		for j := 0; j < dst.Height; j++ {
			a, b := real(src.At(i, j))/N, imag(src.At(i, j))/N
			re, im = re+a*a, im+b*b
			dst.Set(i, j, channel, a)
		}
	}
	re, im = math.Sqrt(re), math.Sqrt(im)
	const eps = 1e-6
	if (re > eps && im/re > 1e-12) || (re <= eps && im > 1e-6) {
		log.Printf("significant imaginary component (real %g, imag %g)", re, im)
	}
}

// Takes the 2D inverse FFT and returns the real part of the top-left
// width x height corner, scaled by 1/(m n).
func idftImage(src *fftw.Array2, width, height int) *rimg64.Image {
	m, n := src.Dims()
	fftw.IFFT2To(src, src)
	N := float64(m) * float64(n)
	dst := rimg64.New(width, height)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			dst.Set(i, j, real(src.At(i, j))/N)
		}
	}
	return dst
}

// z(u, v) <- z(u, v) + conj(x(u, v)) * y(u, v) for all u, v.
func addConjMul(z, x, y *fftw.Array2) {
	m, n := z.Dims()
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			xy := cmplx.Conj(x.At(u, v)) * y.At(u, v)
			z.Set(u, v, z.At(u, v)+xy)
		}
	}
}

// z(u, v) <- z(u, v) + x(u, v) for all u, v.
func addTo(z, x *fftw.Array2) {
	m, n := z.Dims()
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			z.Set(u, v, z.At(u, v)+x.At(u, v))
		}
	}
}

func cloneArray(x *fftw.Array2) *fftw.Array2 {
	m, n := x.Dims()
	y := fftw.NewArray2(m, n)
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			y.Set(u, v, x.At(u, v))
		}
	}
	return y
}
