// Package prep prepares raw images for correlation filter training.
package prep

import (
	"fmt"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/nontas/trafficsignrecognition/imset"
)

// Prep applies feature extraction, normalization and optional
// cosine masking to each image.
type Prep struct {
	Feature   Transform
	Normalize Normalizer
	// Mask multiplies every channel by a Hanning window.
	Mask bool
}

// New resolves the named strategies.
func New(feature, normalize string, mask bool) (Prep, error) {
	phi, err := Feature(feature)
	if err != nil {
		return Prep{}, err
	}
	norm, err := Norm(normalize)
	if err != nil {
		return Prep{}, err
	}
	return Prep{Feature: phi, Normalize: norm, Mask: mask}, nil
}

// Process prepares a single image.
func (p Prep) Process(im *rimg64.Multi) (*rimg64.Multi, error) {
	x, err := p.Feature.Apply(im)
	if err != nil {
		return nil, err
	}
	x = p.Normalize.Normalize(x)
	if p.Mask {
		x = applyMask(x, CosineMask(x.Width, x.Height))
	}
	return x, nil
}

// Stack prepares every image and collects the results.
// All images must have the same size after feature extraction;
// the index of the first offending image is reported otherwise.
// progress may be nil.
func (p Prep) Stack(ims []*rimg64.Multi, progress func(done, total int)) (imset.Slice, error) {
	if len(ims) == 0 {
		return nil, fmt.Errorf("no images")
	}
	stack := make(imset.Slice, 0, len(ims))
	for i, im := range ims {
		x, err := p.Process(im)
		if err != nil {
			return nil, fmt.Errorf("image %d: %v", i, err)
		}
		if i > 0 {
			first := stack[0]
			if !x.Size().Eq(first.Size()) || x.Channels != first.Channels {
				return nil, fmt.Errorf("image %d: size %vx%d differs from %vx%d",
					i, x.Size(), x.Channels, first.Size(), first.Channels)
			}
		}
		stack = append(stack, x)
		if progress != nil {
			progress(i+1, len(ims))
		}
	}
	return stack, nil
}
