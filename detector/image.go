package detector

import (
	"image"
	"image/draw"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/nfnt/resize"
)

// DefaultInterp is used when resizing training windows.
var DefaultInterp = resize.Bilinear

// FromImage converts an image to a 3-channel RGB array
// with values in [0, 1].
func FromImage(im image.Image) *rimg64.Multi {
	bnds := im.Bounds()
	f := rimg64.NewMulti(bnds.Dx(), bnds.Dy(), 3)
	for i := 0; i < f.Width; i++ {
		for j := 0; j < f.Height; j++ {
			r, g, b, _ := im.At(bnds.Min.X+i, bnds.Min.Y+j).RGBA()
			f.Set(i, j, 0, float64(r)/0xffff)
			f.Set(i, j, 1, float64(g)/0xffff)
			f.Set(i, j, 2, float64(b)/0xffff)
		}
	}
	return f
}

// Window extracts a rectangle from the image and resizes it to the
// given size.
func Window(im image.Image, rect image.Rectangle, size image.Point, interp resize.InterpolationFunction) *rimg64.Multi {
	sub := subImage(im, rect)
	sub = resize.Resize(uint(size.X), uint(size.Y), sub, interp)
	return FromImage(sub)
}

func subImage(im image.Image, r image.Rectangle) image.Image {
	r = r.Intersect(im.Bounds())
	dst := image.NewRGBA64(image.Rectangle{image.ZP, r.Size()})
	draw.Draw(dst, dst.Bounds(), im, r.Min, draw.Src)
	return dst
}
