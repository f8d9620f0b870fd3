package prep

import (
	"fmt"
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

// Transform maps an image to its feature channels.
// Implementations must be pure and preserve spatial extent.
type Transform interface {
	Apply(im *rimg64.Multi) (*rimg64.Multi, error)
	// Channels returns the number of feature channels
	// produced from the given number of image channels.
	Channels(in int) int
}

// Features indexes the built-in feature transforms by name.
var Features = map[string]Transform{
	"none":    None{},
	"gray":    Gray{},
	"hsi":     HSI{},
	"rgb-hsi": RGBHSI{},
}

// Feature returns the transform registered under the given name.
func Feature(name string) (Transform, error) {
	phi, ok := Features[name]
	if !ok {
		return nil, fmt.Errorf(`unknown feature: "%s"`, name)
	}
	return phi, nil
}

// None passes the image through unchanged.
type None struct{}

func (None) Apply(im *rimg64.Multi) (*rimg64.Multi, error) {
	return im, nil
}

func (None) Channels(in int) int { return in }

// Gray averages the channels into one.
type Gray struct{}

func (Gray) Apply(im *rimg64.Multi) (*rimg64.Multi, error) {
	y := rimg64.NewMulti(im.Width, im.Height, 1)
	for i := 0; i < im.Width; i++ {
		for j := 0; j < im.Height; j++ {
			var t float64
			for k := 0; k < im.Channels; k++ {
				t += im.At(i, j, k)
			}
			y.Set(i, j, 0, t/float64(im.Channels))
		}
	}
	return y, nil
}

func (Gray) Channels(int) int { return 1 }

// HSI converts an RGB image to hue, saturation and intensity,
// all scaled to [0, 1].
type HSI struct{}

func (HSI) Apply(im *rimg64.Multi) (*rimg64.Multi, error) {
	if im.Channels != 3 {
		return nil, fmt.Errorf("hsi requires 3 channels: %d", im.Channels)
	}
	const eps = 0x1p-50
	y := rimg64.NewMulti(im.Width, im.Height, 3)
	for i := 0; i < im.Width; i++ {
		for j := 0; j < im.Height; j++ {
			r, g, b := im.At(i, j, 0), im.At(i, j, 1), im.At(i, j, 2)

			num := 0.5 * ((r - g) + (r - b))
			den := math.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
			h := math.Acos(clamp(num/(den+eps), -1, 1))
			if b > g {
				h = 2*math.Pi - h
			}
			h /= 2 * math.Pi

			sden := r + g + b
			if sden == 0 {
				sden = eps
			}
			s := 1 - 3*math.Min(math.Min(r, g), b)/sden
			if s == 0 {
				h = 0
			}

			y.Set(i, j, 0, h)
			y.Set(i, j, 1, s)
			y.Set(i, j, 2, (r+g+b)/3)
		}
	}
	return y, nil
}

func (HSI) Channels(int) int { return 3 }

// RGBHSI concatenates the RGB and HSI channels.
type RGBHSI struct{}

func (RGBHSI) Apply(im *rimg64.Multi) (*rimg64.Multi, error) {
	hsi, err := HSI{}.Apply(im)
	if err != nil {
		return nil, err
	}
	y := rimg64.NewMulti(im.Width, im.Height, 6)
	for i := 0; i < im.Width; i++ {
		for j := 0; j < im.Height; j++ {
			for k := 0; k < 3; k++ {
				y.Set(i, j, k, im.At(i, j, k))
				y.Set(i, j, k+3, hsi.At(i, j, k))
			}
		}
	}
	return y, nil
}

func (RGBHSI) Channels(int) int { return 6 }

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
