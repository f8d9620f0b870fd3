/*
Package corrfilter trains multi-channel correlation filters in the Fourier domain.

To learn a filter from a stack of equal-size feature images:
	filt, err := corrfilter.Train(stack, corrfilter.Options{
		Algo:        corrfilter.MOSSE,
		Shape:       image.Pt(64, 64),
		ResponseCov: 2,
		Lambda:      0.01,
		Boundary:    corrfilter.Symmetric,
	})
To locate the object in a new image:
	resp, err := filt.Score(im)
The maximum of the response gives the most likely position of the object.

The filter retains the Fourier-domain sums from which it was derived.
These are sufficient to re-derive the filter, for example after merging
the sums of two training runs:
	stats := corrfilter.AddStatsToEither(a.Stats, b.Stats)
	hHat, err := corrfilter.Solve(stats, corrfilter.MOSSE, 0.01)
*/
package corrfilter
