package imset

import (
	"image"

	"github.com/jvlmdr/go-cv/rimg64"
)

// Slice presents a list of images as a Set.
// The declared size and channels are those of the first image.
type Slice []*rimg64.Multi

func (set Slice) Len() int {
	return len(set)
}

func (set Slice) ImageSize() image.Point {
	if len(set) == 0 {
		return image.ZP
	}
	return set[0].Size()
}

func (set Slice) ImageChannels() int {
	if len(set) == 0 {
		return 0
	}
	return set[0].Channels
}

func (set Slice) At(i int) *rimg64.Multi {
	return set[i]
}
