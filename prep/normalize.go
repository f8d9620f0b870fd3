package prep

import (
	"fmt"

	"github.com/gonum/floats"
	"github.com/jvlmdr/go-cv/rimg64"
)

// Normalizer rescales an image before training.
type Normalizer interface {
	Normalize(im *rimg64.Multi) *rimg64.Multi
}

// Norms indexes the built-in normalizers by name.
var Norms = map[string]Normalizer{
	"norm": NormUnit{},
	"none": NormNone{},
}

// Norm returns the normalizer registered under the given name.
func Norm(name string) (Normalizer, error) {
	norm, ok := Norms[name]
	if !ok {
		return nil, fmt.Errorf(`unknown normalization: "%s"`, name)
	}
	return norm, nil
}

// Guards against division by the norm of a zero channel.
const normEps = 1e-10

// NormUnit gives each channel zero mean and unit L2 norm.
type NormUnit struct{}

func (NormUnit) Normalize(im *rimg64.Multi) *rimg64.Multi {
	y := rimg64.NewMulti(im.Width, im.Height, im.Channels)
	n := im.Width * im.Height
	buf := make([]float64, n)
	for k := 0; k < im.Channels; k++ {
		for i := 0; i < im.Width; i++ {
			for j := 0; j < im.Height; j++ {
				buf[i*im.Height+j] = im.At(i, j, k)
			}
		}
		floats.AddConst(-floats.Sum(buf)/float64(n), buf)
		floats.Scale(1/(floats.Norm(buf, 2)+normEps), buf)
		for i := 0; i < im.Width; i++ {
			for j := 0; j < im.Height; j++ {
				y.Set(i, j, k, buf[i*im.Height+j])
			}
		}
	}
	return y
}

// NormNone leaves the image unchanged.
type NormNone struct{}

func (NormNone) Normalize(im *rimg64.Multi) *rimg64.Multi {
	return im
}
