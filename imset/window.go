package imset

import (
	"image"

	"github.com/jvlmdr/go-cv/rimg64"
)

// WindowSet defines a set of training windows in a source image.
// Windows which extend beyond the image are read as zero.
type WindowSet struct {
	Image   *rimg64.Multi // The source image.
	Size    image.Point   // The size of the windows.
	Windows []image.Point // The top-left corner of each window.
}

// Centered returns a window set whose windows are centered on
// the given points.
func Centered(im *rimg64.Multi, size image.Point, centers []image.Point) *WindowSet {
	set := &WindowSet{Image: im, Size: size}
	for _, c := range centers {
		set.Windows = append(set.Windows, c.Sub(image.Pt(size.X/2, size.Y/2)))
	}
	return set
}

func (set *WindowSet) Len() int {
	return len(set.Windows)
}

func (set *WindowSet) ImageSize() image.Point {
	return set.Size
}

func (set *WindowSet) ImageChannels() int {
	return set.Image.Channels
}

// At returns a copy of the window.
func (set *WindowSet) At(i int) *rimg64.Multi {
	w := set.Windows[i]
	bnds := image.Rect(0, 0, set.Image.Width, set.Image.Height)
	x := rimg64.NewMulti(set.Size.X, set.Size.Y, set.Image.Channels)
	for u := 0; u < set.Size.X; u++ {
		for v := 0; v < set.Size.Y; v++ {
			if !image.Pt(w.X+u, w.Y+v).In(bnds) {
				continue
			}
			for p := 0; p < set.Image.Channels; p++ {
				x.Set(u, v, p, set.Image.At(w.X+u, w.Y+v, p))
			}
		}
	}
	return x
}
