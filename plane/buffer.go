// Package plane provides a minimal multi-plane integer pixel buffer, the
// concrete collaborator transform.Transform implementations read and write
// through the transform.Planes interface.
package plane

// Buffer stores numPlanes*rows*cols int32 samples as one flat, row-major
// slice per plane. A plane that has been collapsed to a single repeated
// value (e.g. a fully-opaque alpha plane) stores only that value in
// constVal and is not backed by any per-pixel storage until
// UndoMakeConstantPlane allocates it, mirroring the teacher's
// allocate-on-demand style seen in its transform codecs.
type Buffer struct {
	rows, cols int
	data       [][]int32
	isConst    []bool
	constVal   []int32
}

// New allocates a Buffer with numPlanes planes of rows x cols samples, all
// zero-valued and none constant.
func New(numPlanes, rows, cols int) *Buffer {
	b := &Buffer{
		rows:     rows,
		cols:     cols,
		data:     make([][]int32, numPlanes),
		isConst:  make([]bool, numPlanes),
		constVal: make([]int32, numPlanes),
	}
	for p := range b.data {
		b.data[p] = make([]int32, rows*cols)
	}
	return b
}

// NewConstant allocates a Buffer like New, but plane p starts collapsed to
// the single repeated value val instead of a fully allocated row/col slice.
func NewConstant(numPlanes, rows, cols, p int, val int32) *Buffer {
	b := New(numPlanes, rows, cols)
	b.MakeConstantPlane(p, val)
	return b
}

// NumPlanes implements transform.Planes.
func (b *Buffer) NumPlanes() int { return len(b.data) }

// Rows implements transform.Planes.
func (b *Buffer) Rows() int { return b.rows }

// Cols implements transform.Planes.
func (b *Buffer) Cols() int { return b.cols }

func (b *Buffer) index(r, c int) int { return r*b.cols + c }

// Get implements transform.Planes. On a constant plane it returns the
// stored constant regardless of (r, c).
func (b *Buffer) Get(p, r, c int) int32 {
	if b.isConst[p] {
		return b.constVal[p]
	}
	return b.data[p][b.index(r, c)]
}

// Set implements transform.Planes. On a constant plane it rewrites the
// stored constant in place without allocating the full per-pixel slice;
// callers that need genuinely divergent per-pixel values on that plane must
// call UndoMakeConstantPlane first.
func (b *Buffer) Set(p, r, c int, v int32) {
	if b.isConst[p] {
		b.constVal[p] = v
		return
	}
	b.data[p][b.index(r, c)] = v
}

// MakeConstantPlane collapses plane p to the single value val, discarding
// its per-pixel backing slice.
func (b *Buffer) MakeConstantPlane(p int, val int32) {
	b.isConst[p] = true
	b.constVal[p] = val
	b.data[p] = nil
}

// IsConstant reports whether plane p is currently collapsed.
func (b *Buffer) IsConstant(p int) bool { return b.isConst[p] }

// UndoMakeConstantPlane implements transform.Planes: it allocates the full
// row/col slice for plane p (if not already allocated) and fills it with
// the previously stored constant, then clears the constant flag. It is a
// no-op if p is not currently constant.
func (b *Buffer) UndoMakeConstantPlane(p int) {
	if !b.isConst[p] {
		return
	}
	val := b.constVal[p]
	data := make([]int32, b.rows*b.cols)
	for i := range data {
		data[i] = val
	}
	b.data[p] = data
	b.isConst[p] = false
}
