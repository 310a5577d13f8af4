// Package ycocg implements FLIF's lossless YCoCg color transform: a
// reversible RGB<->YCoCg decorrelation that trades the green channel's
// correlation with red/blue for a luma plane and two (narrower-range)
// chroma planes, without ever losing a bit of the original RGB values.
package ycocg

import "github.com/cocosip/go-flif-core/transform"

func init() {
	transform.Register(New())
}

// YCoCg is a transform.Transform implementing the lossless YCoCg
// decorrelation.
type YCoCg struct {
	par       int32
	srcRanges transform.ColorRanges
}

// New returns a fresh, uninitialized YCoCg transform.
func New() *YCoCg {
	return &YCoCg{}
}

// Name implements transform.Transform.
func (t *YCoCg) Name() string { return "YCoCg" }

// Init implements transform.Transform. It requires at least three planes,
// all with a non-negative, non-degenerate range, and derives par from the
// widest of the first three planes' maxima.
func (t *YCoCg) Init(src transform.ColorRanges) bool {
	if src.NumPlanes() < 3 {
		return false
	}
	if src.Min(0) < 0 || src.Min(1) < 0 || src.Min(2) < 0 {
		return false
	}
	if src.Min(0) == src.Max(0) || src.Min(1) == src.Max(1) || src.Min(2) == src.Max(2) {
		return false
	}
	max := src.Max(0)
	if src.Max(1) > max {
		max = src.Max(1)
	}
	if src.Max(2) > max {
		max = src.Max(2)
	}
	t.par = max/4 + 1
	t.srcRanges = src
	return true
}

// Meta implements transform.Transform, returning the dependent-range model
// for the Y/Co/Cg planes this transform produces.
func (t *YCoCg) Meta(planes transform.Planes, src transform.ColorRanges) transform.ColorRanges {
	return &ColorRanges{par: t.par, inner: src}
}

// Data implements transform.Transform: the forward RGB -> YCoCg pass.
func (t *YCoCg) Data(planes transform.Planes) {
	rows, cols := planes.Rows(), planes.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			red := planes.Get(0, r, c)
			green := planes.Get(1, r, c)
			blue := planes.Get(2, r, c)

			y := ((red+blue)>>1 + green) >> 1
			co := (red - blue) - 1
			cg := ((red+blue)>>1 - green) - 1

			planes.Set(0, r, c, y)
			planes.Set(1, r, c, co)
			planes.Set(2, r, c, cg)
		}
	}
}

// InvData implements transform.Transform: the inverse YCoCg -> RGB pass.
// Planes 0-2 are expanded out of any constant-plane collapse first, since
// the inverse generally produces a distinct value per pixel even when the
// Y/Co/Cg planes were constant.
func (t *YCoCg) InvData(planes transform.Planes) {
	planes.UndoMakeConstantPlane(0)
	planes.UndoMakeConstantPlane(1)
	planes.UndoMakeConstantPlane(2)

	maxR, maxG, maxB := t.srcRanges.Max(0), t.srcRanges.Max(1), t.srcRanges.Max(2)
	rows, cols := planes.Rows(), planes.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			y := planes.Get(0, r, c)
			co := planes.Get(1, r, c)
			cg := planes.Get(2, r, c)

			red := y + ((cg+2)>>1) + ((co+2)>>1)
			green := y - ((cg + 1) >> 1)
			blue := y + ((cg+2)>>1) - ((co+1)>>1)

			red = clip(red, 0, maxR)
			green = clip(green, 0, maxG)
			blue = clip(blue, 0, maxB)

			planes.Set(0, r, c, red)
			planes.Set(1, r, c, green)
			planes.Set(2, r, c, blue)
		}
	}
}

func clip(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
