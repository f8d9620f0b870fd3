package corrfilter

import (
	"image"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-file/fileutil"
	"github.com/jvlmdr/go-fftw/fftw"
)

// filterFile is the serialized form of a Filter.
// Frequency planes are stored as separate real and imaginary parts
// since neither gob nor json encodes complex numbers.
type filterFile struct {
	Template     *rimg64.Multi
	Algo         string
	Lambda       float64
	Boundary     Boundary
	ResponseSize image.Point
	Images       int
	Bins         image.Point
	AutoRe       [][][]float64
	AutoIm       [][][]float64
	CrossRe      [][]float64
	CrossIm      [][]float64
}

// SaveExt writes the filter to a file.
// The format is determined by the file extension.
func (filt *Filter) SaveExt(fname string) error {
	return fileutil.SaveExt(fname, encodeFilter(filt))
}

// LoadExt reads a filter saved by SaveExt.
// The template and sums are recovered exactly.
func LoadExt(fname string) (*Filter, error) {
	var file filterFile
	if err := fileutil.LoadExt(fname, &file); err != nil {
		return nil, err
	}
	return decodeFilter(&file), nil
}

func splitArray(x *fftw.Array2) (re, im []float64) {
	m, n := x.Dims()
	re = make([]float64, m*n)
	im = make([]float64, m*n)
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			re[u*n+v] = real(x.At(u, v))
			im[u*n+v] = imag(x.At(u, v))
		}
	}
	return re, im
}

func joinArray(re, im []float64, m, n int) *fftw.Array2 {
	x := fftw.NewArray2(m, n)
	for u := 0; u < m; u++ {
		for v := 0; v < n; v++ {
			x.Set(u, v, complex(re[u*n+v], im[u*n+v]))
		}
	}
	return x
}

func encodeFilter(filt *Filter) *filterFile {
	s := filt.Stats
	c := s.Channels()
	m, n := s.Dims()
	file := &filterFile{
		Template:     filt.Template,
		Algo:         filt.Algo,
		Lambda:       filt.Lambda,
		Boundary:     filt.Boundary,
		ResponseSize: filt.ResponseSize,
		Images:       s.Images,
		Bins:         image.Pt(m, n),
		AutoRe:       make([][][]float64, c),
		AutoIm:       make([][][]float64, c),
		CrossRe:      make([][]float64, c),
		CrossIm:      make([][]float64, c),
	}
	for p := 0; p < c; p++ {
		file.AutoRe[p] = make([][]float64, c)
		file.AutoIm[p] = make([][]float64, c)
		for q := 0; q < c; q++ {
			if s.Auto[p][q] == nil {
				continue
			}
			file.AutoRe[p][q], file.AutoIm[p][q] = splitArray(s.Auto[p][q])
		}
		file.CrossRe[p], file.CrossIm[p] = splitArray(s.Cross[p])
	}
	return file
}

func decodeFilter(file *filterFile) *Filter {
	c := len(file.CrossRe)
	m, n := file.Bins.X, file.Bins.Y
	stats := &Stats{
		Auto:   make([][]*fftw.Array2, c),
		Cross:  make([]*fftw.Array2, c),
		Images: file.Images,
	}
	for p := 0; p < c; p++ {
		stats.Auto[p] = make([]*fftw.Array2, c)
		for q := 0; q < c; q++ {
			if file.AutoRe[p][q] == nil {
				continue
			}
			stats.Auto[p][q] = joinArray(file.AutoRe[p][q], file.AutoIm[p][q], m, n)
		}
		stats.Cross[p] = joinArray(file.CrossRe[p], file.CrossIm[p], m, n)
	}
	return &Filter{
		Template:     file.Template,
		Stats:        stats,
		Algo:         file.Algo,
		Lambda:       file.Lambda,
		Boundary:     file.Boundary,
		ResponseSize: file.ResponseSize,
	}
}
