// Package detector trains a multi-channel correlation filter object
// detector and scores new images against it.
package detector

import (
	"fmt"
	"image"
	"log"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/nontas/trafficsignrecognition/corrfilter"
	"github.com/nontas/trafficsignrecognition/imset"
	"github.com/nontas/trafficsignrecognition/prep"
)

// Options configures training of a detector.
// The zero value of a field selects its default.
type Options struct {
	// Algo is one of corrfilter.MOSSE and corrfilter.MCCF.
	// Default MOSSE.
	Algo string
	// Shape is the size of the trained filter. Default 64x64.
	Shape image.Point
	// Feature names the feature transform. Default "none".
	Feature string
	// Normalize names the normalization. Default "norm".
	Normalize string
	// CosineMask multiplies every channel by a Hanning window.
	CosineMask bool
	// ResponseCov is the covariance of the desired Gaussian
	// response. Default 2.
	ResponseCov float64
	// Lambda is the regularization parameter. Default 0.01.
	// Call corrfilter.Train directly for a zero parameter.
	Lambda float64
	// Boundary is the padding mode. Default symmetric.
	Boundary corrfilter.Boundary
	// Verbose logs progress during training.
	Verbose bool
	// Progress, if not nil, is invoked once per image during
	// preprocessing and once per image during accumulation.
	// It is never required for control flow.
	Progress func(done, total int)
}

func (opts Options) withDefaults() Options {
	if opts.Algo == "" {
		opts.Algo = corrfilter.MOSSE
	}
	if opts.Shape.Eq(image.ZP) {
		opts.Shape = image.Pt(64, 64)
	}
	if opts.Feature == "" {
		opts.Feature = "none"
	}
	if opts.Normalize == "" {
		opts.Normalize = "norm"
	}
	if opts.ResponseCov == 0 {
		opts.ResponseCov = 2
	}
	if opts.Lambda == 0 {
		opts.Lambda = 0.01
	}
	if opts.Boundary == "" {
		opts.Boundary = corrfilter.Symmetric
	}
	return opts
}

// Detector localizes an object class by correlation peak detection.
type Detector struct {
	Model *corrfilter.Filter
	Prep  prep.Prep
}

// Train learns a detector from cropped training windows of equal size.
func Train(ims []*rimg64.Multi, opts Options) (*Detector, error) {
	opts = opts.withDefaults()
	if opts.Algo != corrfilter.MOSSE && opts.Algo != corrfilter.MCCF {
		return nil, fmt.Errorf(`unknown algorithm: "%s"`, opts.Algo)
	}
	pre, err := prep.New(opts.Feature, opts.Normalize, opts.CosineMask)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("pre-process %d images", len(ims))
	}
	stack, err := pre.Stack(ims, opts.Progress)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("train %s filter from %d images", opts.Algo, stack.Len())
	}
	model, err := corrfilter.Train(stack, corrfilter.Options{
		Algo:        opts.Algo,
		Shape:       opts.Shape,
		ResponseCov: opts.ResponseCov,
		Lambda:      opts.Lambda,
		Boundary:    opts.Boundary,
		Progress:    opts.Progress,
	})
	if err != nil {
		return nil, err
	}
	return &Detector{Model: model, Prep: pre}, nil
}

// TrainWindows learns a detector from windows of a source image
// centered on labeled object positions.
func TrainWindows(scene *rimg64.Multi, centers []image.Point, size image.Point, opts Options) (*Detector, error) {
	set := imset.Centered(scene, size, centers)
	ims := make([]*rimg64.Multi, set.Len())
	for i := range ims {
		ims[i] = set.At(i)
	}
	opts.Shape = size
	return Train(ims, opts)
}

// Channels returns the number of feature channels of the model.
func (d *Detector) Channels() int {
	return d.Model.Channels()
}

// Score applies the same preprocessing as training and correlates
// the result with the filter.
func (d *Detector) Score(im *rimg64.Multi) (*rimg64.Image, error) {
	x, err := d.Prep.Process(im)
	if err != nil {
		return nil, err
	}
	return d.Model.Score(x)
}
