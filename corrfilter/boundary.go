package corrfilter

// Boundary determines how an image is padded before taking its transform.
type Boundary string

const (
	// Constant fills the margins with zeros.
	Constant Boundary = "constant"
	// Symmetric mirrors the image about its edges.
	Symmetric Boundary = "symmetric"
)

func (b Boundary) valid() bool {
	return b == Constant || b == Symmetric
}
