package corrfilter

import (
	"fmt"
	"image"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-fftw/fftw"
	"github.com/nontas/trafficsignrecognition/imset"
)

// Options configures Train.
type Options struct {
	// Algo is one of MOSSE and MCCF.
	Algo string
	// Shape is the spatial size of the trained filter.
	Shape image.Point
	// ResponseCov is the covariance of the desired Gaussian response.
	ResponseCov float64
	// Lambda is the regularization parameter. Must be non-negative.
	Lambda float64
	// Boundary determines how images are padded to the solve size.
	Boundary Boundary
	// ResponseSize is the size at which the solve is performed.
	// Zero means the size of the training images.
	ResponseSize image.Point
	// Progress, if not nil, is invoked after each image is accumulated.
	Progress func(done, total int)
}

// Train learns a correlation filter from a set of images of equal size.
// The desired response is a Gaussian with covariance opts.ResponseCov
// at the solve size.
//
// Configuration errors are reported before any numerical work.
func Train(set imset.Set, opts Options) (*Filter, error) {
	if opts.Algo != MOSSE && opts.Algo != MCCF {
		return nil, fmt.Errorf(`unknown algorithm: "%s"`, opts.Algo)
	}
	if !opts.Boundary.valid() {
		return nil, fmt.Errorf(`unknown boundary: "%s"`, opts.Boundary)
	}
	if opts.Lambda < 0 {
		return nil, fmt.Errorf("negative regularization: %g", opts.Lambda)
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("no training images")
	}
	size := opts.ResponseSize
	if size.Eq(image.ZP) {
		size = set.ImageSize()
	}
	resp := GaussianResponse(size.X, size.Y, opts.ResponseCov)
	return train(set, resp, opts.Lambda, opts.Boundary, opts.Shape, opts.Algo, opts.Progress)
}

// TrainMOSSE learns one filter channel per image channel independently
// by dividing the accumulated spectra.
func TrainMOSSE(set imset.Set, resp *rimg64.Image, lambda float64, boundary Boundary, shape image.Point) (*Filter, error) {
	return train(set, resp, lambda, boundary, shape, MOSSE, nil)
}

// TrainMCCF estimates all filter channels jointly,
// solving one regularized system per frequency bin.
func TrainMCCF(set imset.Set, resp *rimg64.Image, lambda float64, boundary Boundary, shape image.Point) (*Filter, error) {
	return train(set, resp, lambda, boundary, shape, MCCF, nil)
}

func train(set imset.Set, resp *rimg64.Image, lambda float64, boundary Boundary, shape image.Point, algo string, progress func(done, total int)) (*Filter, error) {
	if set.Len() == 0 {
		return nil, fmt.Errorf("no training images")
	}
	if err := imset.Validate(set); err != nil {
		return nil, err
	}
	size, channels := set.ImageSize(), set.ImageChannels()
	m, n := resp.Width, resp.Height
	if size.X > m || size.Y > n {
		return nil, fmt.Errorf("images larger than desired response: %v, %dx%d", size, m, n)
	}
	if shape.Eq(image.ZP) {
		shape = image.Pt(m, n)
	}
	gHat := dftImage(resp, m, n)
	stats := NewStats(channels, m, n, algo == MCCF)
	for i := 0; i < set.Len(); i++ {
		padded := pad(set.At(i), m, n, boundary)
		fHat := make([]*fftw.Array2, channels)
		for p := 0; p < channels; p++ {
			fHat[p] = dftChannel(padded, p, m, n)
		}
		stats.accumulate(fHat, gHat)
		if progress != nil {
			progress(i+1, set.Len())
		}
	}
	hHat, err := Solve(stats, algo, lambda)
	if err != nil {
		return nil, err
	}
	return &Filter{
		Template:     spatial(hHat, shape),
		Stats:        stats,
		Algo:         algo,
		Lambda:       lambda,
		Boundary:     boundary,
		ResponseSize: image.Pt(m, n),
	}, nil
}

// spatial takes the filter back to the spatial domain:
// inverse transform, real part, origin moved to the center pixel,
// then a centered crop (or zero-pad) to the requested shape.
func spatial(hHat []*fftw.Array2, shape image.Point) *rimg64.Multi {
	m, n := hHat[0].Dims()
	h := rimg64.NewMulti(m, n, len(hHat))
	for p := range hHat {
		idftToChannel(h, p, hHat[p])
	}
	h = shift(h, m/2, n/2)
	return crop(h, shape.X, shape.Y)
}
