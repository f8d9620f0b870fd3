package corrfilter

import (
	"fmt"

	"github.com/jvlmdr/go-cv/rimg64"
)

// pad embeds the image in a width x height array such that the pixel at
// (Width/2, Height/2) moves to (width/2, height/2).
// The margins are filled according to the boundary mode.
func pad(f *rimg64.Multi, width, height int, boundary Boundary) *rimg64.Multi {
	if f.Width > width || f.Height > height {
		panic(fmt.Sprintf("image larger than padded size: %dx%d, %dx%d", f.Width, f.Height, width, height))
	}
	dx := width/2 - f.Width/2
	dy := height/2 - f.Height/2
	g := rimg64.NewMulti(width, height, f.Channels)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			u, v := i-dx, j-dy
			if boundary == Symmetric {
				u, v = reflect(u, f.Width), reflect(v, f.Height)
			} else if u < 0 || u >= f.Width || v < 0 || v >= f.Height {
				continue
			}
			for k := 0; k < f.Channels; k++ {
				g.Set(i, j, k, f.At(u, v, k))
			}
		}
	}
	return g
}

// reflect maps i into [0, n) by mirroring about the array edges.
// The edge samples themselves are repeated.
func reflect(i, n int) int {
	j := mod(i, 2*n)
	if j >= n {
		j = 2*n - 1 - j
	}
	return j
}

// crop extracts a width x height window such that the pixel at
// (Width/2, Height/2) stays at (width/2, height/2).
// Regions beyond the source are zero, so a crop larger than the
// source is a centered zero-pad.
func crop(f *rimg64.Multi, width, height int) *rimg64.Multi {
	dx := f.Width/2 - width/2
	dy := f.Height/2 - height/2
	g := rimg64.NewMulti(width, height, f.Channels)
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			u, v := i+dx, j+dy
			if u < 0 || u >= f.Width || v < 0 || v >= f.Height {
				continue
			}
			for k := 0; k < f.Channels; k++ {
				g.Set(i, j, k, f.At(u, v, k))
			}
		}
	}
	return g
}

// shift translates the image circularly by (dx, dy).
func shift(f *rimg64.Multi, dx, dy int) *rimg64.Multi {
	g := rimg64.NewMulti(f.Width, f.Height, f.Channels)
	for i := 0; i < f.Width; i++ {
		for j := 0; j < f.Height; j++ {
			u, v := mod(i+dx, f.Width), mod(j+dy, f.Height)
			for k := 0; k < f.Channels; k++ {
				g.Set(u, v, k, f.At(i, j, k))
			}
		}
	}
	return g
}
