package corrfilter

import (
	"fmt"
	"image"
	"math"
	"math/rand"

	"github.com/jvlmdr/go-cv/rimg64"
)

const eps = 1e-9

func epsEq(want, got, eps float64) bool {
	return math.Abs(want-got) <= eps
}

func imageDimsEq(want, got *rimg64.Multi) (bool, string) {
	if want.Width != got.Width || want.Height != got.Height {
		msg := fmt.Sprintf(
			"image sizes differ: want %dx%d, got %dx%d",
			want.Width, want.Height, got.Width, got.Height,
		)
		return false, msg
	}
	if want.Channels != got.Channels {
		msg := fmt.Sprintf("image channels differ: want %d, got %d", want.Channels, got.Channels)
		return false, msg
	}
	return true, ""
}

func imagesEq(want, got *rimg64.Multi, eps float64) (bool, string) {
	if eq, msg := imageDimsEq(want, got); !eq {
		return eq, msg
	}
	for i := 0; i < want.Width; i++ {
		for j := 0; j < want.Height; j++ {
			for k := 0; k < want.Channels; k++ {
				x := want.At(i, j, k)
				y := got.At(i, j, k)
				if !epsEq(x, y, eps) {
					msg := fmt.Sprintf("at (%d, %d, %d): want %.4g, got %.4g", i, j, k, x, y)
					return false, msg
				}
			}
		}
	}
	return true, ""
}

func randImage(width, height, channels int) *rimg64.Multi {
	f := rimg64.NewMulti(width, height, channels)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			for k := 0; k < channels; k++ {
				f.Set(i, j, k, rand.NormFloat64())
			}
		}
	}
	return f
}

// deltaImage contains a single unit pixel at the given position.
func deltaImage(width, height, channels int, at image.Point) *rimg64.Multi {
	f := rimg64.NewMulti(width, height, channels)
	for k := 0; k < channels; k++ {
		f.Set(at.X, at.Y, k, 1)
	}
	return f
}

// replicate copies a single channel into every channel.
func replicate(g *rimg64.Image, channels int) *rimg64.Multi {
	f := rimg64.NewMulti(g.Width, g.Height, channels)
	for i := 0; i < g.Width; i++ {
		for j := 0; j < g.Height; j++ {
			for k := 0; k < channels; k++ {
				f.Set(i, j, k, g.At(i, j))
			}
		}
	}
	return f
}

func argmax(f *rimg64.Image) (image.Point, float64) {
	arg, max := image.ZP, math.Inf(-1)
	for i := 0; i < f.Width; i++ {
		for j := 0; j < f.Height; j++ {
			if f.At(i, j) > max {
				arg, max = image.Pt(i, j), f.At(i, j)
			}
		}
	}
	return arg, max
}

func argmaxChannel(f *rimg64.Multi, k int) (image.Point, float64) {
	arg, max := image.ZP, math.Inf(-1)
	for i := 0; i < f.Width; i++ {
		for j := 0; j < f.Height; j++ {
			if f.At(i, j, k) > max {
				arg, max = image.Pt(i, j), f.At(i, j, k)
			}
		}
	}
	return arg, max
}

func chebDist(a, b image.Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
