package corrfilter

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/nontas/trafficsignrecognition/imset"
)

func trainTestFilter(t *testing.T, algo string, size, channels int) *Filter {
	var ims imset.Slice
	for i := 0; i < 3; i++ {
		ims = append(ims, randImage(size, size, channels))
	}
	filt, err := Train(ims, Options{
		Algo:        algo,
		Shape:       image.Pt(size, size),
		ResponseCov: 2,
		Lambda:      0.01,
		Boundary:    Symmetric,
	})
	if err != nil {
		t.Fatal(err)
	}
	return filt
}

func TestFilter_scoreChannelMismatch(t *testing.T) {
	filt := trainTestFilter(t, MOSSE, 16, 2)
	if _, err := filt.Score(randImage(32, 32, 3)); err == nil {
		t.Fatal("expect error for channel mismatch")
	}
}

func TestFilter_scoreTooSmall(t *testing.T) {
	filt := trainTestFilter(t, MOSSE, 16, 2)
	if _, err := filt.Score(randImage(8, 8, 2)); err == nil {
		t.Fatal("expect error for image smaller than filter")
	}
}

func TestFilter_scoreInputUnchanged(t *testing.T) {
	filt := trainTestFilter(t, MCCF, 16, 2)
	im := randImage(24, 24, 2)
	before := rimg64.NewMulti(24, 24, 2)
	copy(before.Elems, im.Elems)
	if _, err := filt.Score(im); err != nil {
		t.Fatal(err)
	}
	if eq, msg := imagesEq(before, im, 0); !eq {
		t.Error(msg)
	}
}

// Checks that scoring does not modify the filter itself.
func TestFilter_scoreFilterUnchanged(t *testing.T) {
	filt := trainTestFilter(t, MOSSE, 16, 2)
	before := rimg64.NewMulti(16, 16, 2)
	copy(before.Elems, filt.Template.Elems)
	for i := 0; i < 2; i++ {
		if _, err := filt.Score(randImage(32, 32, 2)); err != nil {
			t.Fatal(err)
		}
	}
	if eq, msg := imagesEq(before, filt.Template, 0); !eq {
		t.Error(msg)
	}
}

// Checks that refitting with the same regularization reproduces the
// original template from the accumulated statistics.
func TestFilter_refitSameLambda(t *testing.T) {
	for _, algo := range []string{MOSSE, MCCF} {
		filt := trainTestFilter(t, algo, 16, 2)
		refit, err := filt.Refit(filt.Lambda, filt.Template.Size())
		if err != nil {
			t.Fatal(err)
		}
		if eq, msg := imagesEq(filt.Template, refit.Template, 1e-9); !eq {
			t.Errorf("%s: %s", algo, msg)
		}
	}
}

func TestFilter_refitNewLambda(t *testing.T) {
	filt := trainTestFilter(t, MOSSE, 16, 2)
	refit, err := filt.Refit(100, filt.Template.Size())
	if err != nil {
		t.Fatal(err)
	}
	if refit.Energy() >= filt.Energy() {
		t.Errorf("energy did not shrink: %g, %g", filt.Energy(), refit.Energy())
	}
	// The original is untouched.
	if refit.Lambda == filt.Lambda {
		t.Error("lambda not updated")
	}
}

func TestFilter_saveLoad(t *testing.T) {
	for _, algo := range []string{MOSSE, MCCF} {
		filt := trainTestFilter(t, algo, 16, 2)
		fname := filepath.Join(t.TempDir(), "filter.json")
		if err := filt.SaveExt(fname); err != nil {
			t.Fatal(err)
		}
		got, err := LoadExt(fname)
		if err != nil {
			t.Fatal(err)
		}
		if eq, msg := imagesEq(filt.Template, got.Template, 0); !eq {
			t.Errorf("%s: %s", algo, msg)
		}
		if got.Algo != filt.Algo || got.Lambda != filt.Lambda || got.Boundary != filt.Boundary {
			t.Errorf("%s: metadata mismatch: %v, %v", algo, filt, got)
		}
		if got.Images() != filt.Images() {
			t.Errorf("%s: images: got %d, want %d", algo, got.Images(), filt.Images())
		}
		// Statistics survive the round trip: refitting the loaded
		// filter gives the same template.
		refit, err := got.Refit(filt.Lambda, filt.Template.Size())
		if err != nil {
			t.Fatal(err)
		}
		if eq, msg := imagesEq(filt.Template, refit.Template, 1e-9); !eq {
			t.Errorf("%s: after load: %s", algo, msg)
		}
	}
}
