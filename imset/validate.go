package imset

import "fmt"

// Validate checks that every image in the set has the declared
// size and number of channels.
// The index of the first offending image is reported.
func Validate(set Set) error {
	size, channels := set.ImageSize(), set.ImageChannels()
	for i := 0; i < set.Len(); i++ {
		x := set.At(i)
		if !x.Size().Eq(size) {
			return fmt.Errorf("image %d: size %v differs from %v", i, x.Size(), size)
		}
		if x.Channels != channels {
			return fmt.Errorf("image %d: channels %d differ from %d", i, x.Channels, channels)
		}
	}
	return nil
}
