package corrfilter

import "testing"

func TestGaussianResponse(t *testing.T) {
	const (
		width  = 32
		height = 32
		cov    = 2
	)
	g := GaussianResponse(width, height, cov)
	cx, cy := width/2, height/2
	if got := g.At(cx, cy); got != 1 {
		t.Errorf("center: want 1, got %g", got)
	}
	// Symmetric about the center.
	for d := 1; d < 8; d++ {
		if a, b := g.At(cx+d, cy), g.At(cx-d, cy); !epsEq(a, b, eps) {
			t.Errorf("asymmetric at x offset %d: %g, %g", d, a, b)
		}
		if a, b := g.At(cx, cy+d), g.At(cx, cy-d); !epsEq(a, b, eps) {
			t.Errorf("asymmetric at y offset %d: %g, %g", d, a, b)
		}
	}
	// Decreasing away from the center.
	for d := 1; d < cx; d++ {
		if g.At(cx+d, cy) >= g.At(cx+d-1, cy) {
			t.Errorf("not decreasing at x offset %d", d)
		}
	}
}
