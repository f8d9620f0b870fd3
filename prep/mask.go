package prep

import (
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

// CosineMask returns a separable Hanning window.
// It is zero on the borders and rises smoothly towards the center.
func CosineMask(width, height int) *rimg64.Image {
	f := rimg64.New(width, height)
	for i := 0; i < width; i++ {
		wx := hann(i, width)
		for j := 0; j < height; j++ {
			f.Set(i, j, wx*hann(j, height))
		}
	}
	return f
}

func hann(i, n int) float64 {
	if n == 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

// applyMask multiplies every channel element-wise by the mask.
func applyMask(im *rimg64.Multi, mask *rimg64.Image) *rimg64.Multi {
	y := rimg64.NewMulti(im.Width, im.Height, im.Channels)
	for i := 0; i < im.Width; i++ {
		for j := 0; j < im.Height; j++ {
			for k := 0; k < im.Channels; k++ {
				y.Set(i, j, k, im.At(i, j, k)*mask.At(i, j))
			}
		}
	}
	return y
}
