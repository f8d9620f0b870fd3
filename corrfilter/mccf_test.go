package corrfilter

import (
	"image"
	"testing"

	"github.com/nontas/trafficsignrecognition/imset"
)

// Checks that the joint solver localizes a multi-channel target.
func TestTrainMCCF_selfCorrelation(t *testing.T) {
	const (
		size     = 32
		channels = 3
	)
	var ims imset.Slice
	for i := 0; i < 4; i++ {
		ims = append(ims, randImage(size, size, channels))
	}
	g := GaussianResponse(size, size, 2)
	filt, err := TrainMCCF(ims, g, 0.01, Symmetric, image.Pt(size, size))
	if err != nil {
		t.Fatal(err)
	}
	if filt.Channels() != channels {
		t.Fatalf("channels: got %d, want %d", filt.Channels(), channels)
	}
	// The filter should respond most strongly to its own training
	// examples near the center.
	for i, im := range ims {
		resp, err := filt.Score(im)
		if err != nil {
			t.Fatal(err)
		}
		arg, _ := argmax(resp)
		if d := chebDist(arg, image.Pt(size/2, size/2)); d > 2 {
			t.Errorf("image %d: peak at %v, want near %v", i, arg, image.Pt(size/2, size/2))
		}
	}
}

// Checks that the joint solve uses cross-channel terms: with two
// identical channels, the joint filter splits the response between
// them rather than doubling it.
func TestTrainMCCF_duplicateChannels(t *testing.T) {
	const size = 16
	g := GaussianResponse(size, size, 2)
	single := imset.Slice{replicate(g, 1)}
	double := imset.Slice{replicate(g, 2)}
	one, err := TrainMCCF(single, g, 0.01, Constant, image.Pt(size, size))
	if err != nil {
		t.Fatal(err)
	}
	two, err := TrainMCCF(double, g, 0.01, Constant, image.Pt(size, size))
	if err != nil {
		t.Fatal(err)
	}
	if one.Energy() <= two.Energy() {
		t.Errorf("energy did not shrink with duplicate channels: %g, %g", one.Energy(), two.Energy())
	}
}
