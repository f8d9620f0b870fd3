package corrfilter

import (
	"math"

	"github.com/jvlmdr/go-cv/rimg64"
)

// GaussianResponse returns the desired correlation output for training:
// an unnormalized 2D Gaussian with the given covariance,
// equal to one at the center pixel (width/2, height/2).
func GaussianResponse(width, height int, cov float64) *rimg64.Image {
	g := rimg64.New(width, height)
	cx, cy := width/2, height/2
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			x, y := float64(i-cx), float64(j-cy)
			g.Set(i, j, math.Exp(-(x*x+y*y)/(2*cov)))
		}
	}
	return g
}
