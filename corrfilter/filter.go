package corrfilter

import (
	"fmt"
	"image"
	"math/cmplx"

	"github.com/gonum/floats"
	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-cv/slide"
	"github.com/jvlmdr/go-fftw/fftw"
)

// Filter is a trained correlation filter together with the sums
// from which it was derived.
// A filter is never modified after training.
type Filter struct {
	// Template is the spatial filter, centered at (Width/2, Height/2).
	Template *rimg64.Multi
	// Stats are the Fourier-domain sums of the training run.
	Stats *Stats
	// Algo is the algorithm which produced the filter.
	Algo string
	// Lambda is the regularization parameter used in the solve.
	Lambda float64
	// Boundary is the padding mode used during training.
	Boundary Boundary
	// ResponseSize is the size at which the solve was performed.
	ResponseSize image.Point
}

// Channels returns the number of channels of the filter.
func (filt *Filter) Channels() int {
	return filt.Template.Channels
}

// Images returns the number of training images.
func (filt *Filter) Images() int {
	return filt.Stats.Images
}

// Energy returns the L2 norm of the spatial template.
func (filt *Filter) Energy() float64 {
	return floats.Norm(filt.Template.Elems, 2)
}

// Score cross-correlates the image with the filter.
// The result has the size of the image and its maximum gives
// the most likely position of the object.
// The image must have the same number of channels as the filter
// and must not be smaller than it.
func (filt *Filter) Score(im *rimg64.Multi) (*rimg64.Image, error) {
	tmpl := filt.Template
	if im.Channels != tmpl.Channels {
		return nil, fmt.Errorf("channels differ: filter %d, image %d", tmpl.Channels, im.Channels)
	}
	if im.Width < tmpl.Width || im.Height < tmpl.Height {
		return nil, fmt.Errorf("image smaller than filter: %dx%d, %dx%d", im.Width, im.Height, tmpl.Width, tmpl.Height)
	}
	// Working dimension in Fourier domain.
	work, _ := slide.FFT2Size(image.Pt(im.Width, im.Height))
	m, n := work.X, work.Y
	// Re-anchor the template at the origin.
	h := pad(tmpl, m, n, Constant)
	h = shift(h, -(m / 2), -(n / 2))
	sHat := fftw.NewArray2(m, n)
	for p := 0; p < im.Channels; p++ {
		fHat := dftChannel(im, p, m, n)
		hHat := dftChannel(h, p, m, n)
		for u := 0; u < m; u++ {
			for v := 0; v < n; v++ {
				fh := fHat.At(u, v) * cmplx.Conj(hHat.At(u, v))
				sHat.Set(u, v, sHat.At(u, v)+fh)
			}
		}
	}
	return idftImage(sHat, im.Width, im.Height), nil
}

// Refit re-derives a filter from the stored sums with a new
// regularization parameter and shape.
// The receiver is left unchanged; the sums are shared.
func (filt *Filter) Refit(lambda float64, shape image.Point) (*Filter, error) {
	if lambda < 0 {
		return nil, fmt.Errorf("negative regularization: %g", lambda)
	}
	hHat, err := Solve(filt.Stats, filt.Algo, lambda)
	if err != nil {
		return nil, err
	}
	return &Filter{
		Template:     spatial(hHat, shape),
		Stats:        filt.Stats,
		Algo:         filt.Algo,
		Lambda:       lambda,
		Boundary:     filt.Boundary,
		ResponseSize: filt.ResponseSize,
	}, nil
}

// String describes the filter configuration.
func (filt *Filter) String() string {
	return fmt.Sprintf("%s filter %dx%d with %d channels (lambda %g, boundary %s, %d images)",
		filt.Algo, filt.Template.Width, filt.Template.Height, filt.Channels(),
		filt.Lambda, filt.Boundary, filt.Images())
}
