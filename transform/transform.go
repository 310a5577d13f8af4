// Package transform defines the decorrelating color/channel transform
// contract that the codec core applies before and undoes after entropy
// coding, plus a self-registration registry transforms join via init().
package transform

// Planes is the pixel accessor a Transform reads and writes through. It is
// the Go expression of a multi-plane image buffer: plane.Buffer is the
// module's concrete implementation, but any type satisfying this interface
// may be used.
type Planes interface {
	// NumPlanes returns the number of planes backing this buffer.
	NumPlanes() int
	// Rows returns the number of rows per plane.
	Rows() int
	// Cols returns the number of columns per plane.
	Cols() int
	// Get returns the sample at (plane, r, c).
	Get(plane, r, c int) int32
	// Set stores v at (plane, r, c).
	Set(plane, r, c int, v int32)
	// UndoMakeConstantPlane expands plane back to full per-pixel storage if
	// it was collapsed to a single repeated value.
	UndoMakeConstantPlane(plane int)
}

// ColorRanges reports the valid value range of a plane, optionally
// dependent on the already-decoded values of the planes before it.
type ColorRanges interface {
	// NumPlanes returns the number of planes this range set covers.
	NumPlanes() int
	// Min returns the plane's range-independent lower bound.
	Min(p int) int32
	// Max returns the plane's range-independent upper bound.
	Max(p int) int32
	// MinMax returns plane p's bounds given the already-decoded values of
	// the planes before it in prevPlanes (indexed 0..p-1).
	MinMax(p int, prevPlanes []int32) (lo, hi int32)
}

// Transform is a single decorrelating transform stage: Init decides whether
// the transform applies to src's ranges at all, Meta computes the output
// ranges it produces (and, on the encoder side, primes any per-image state
// Data will need), Data applies the transform in place over planes, and
// InvData undoes it.
type Transform interface {
	// Name identifies the transform, and is the key it registers under.
	Name() string
	// Init reports whether this transform is applicable to src; a
	// transform that cannot usefully operate on src (e.g. too few planes,
	// or a range it was not designed for) returns false and must not be
	// used further.
	Init(src ColorRanges) bool
	// Meta computes the ColorRanges produced by applying this transform to
	// planes, which currently hold ranges described by src.
	Meta(planes Planes, src ColorRanges) ColorRanges
	// Data applies the transform to planes in place (encoder direction).
	Data(planes Planes)
	// InvData undoes the transform on planes in place (decoder direction).
	InvData(planes Planes)
}

// Apply runs t's forward direction over planes: Init against src, Meta to
// compute the output ranges, then Data to transform planes in place. It
// exists for callers that would rather check an error than Init's bool,
// returning ErrNotApplicable instead of proceeding when t refuses src.
func Apply(t Transform, planes Planes, src ColorRanges) (ColorRanges, error) {
	if !t.Init(src) {
		return nil, ErrNotApplicable
	}
	dst := t.Meta(planes, src)
	t.Data(planes)
	return dst, nil
}
