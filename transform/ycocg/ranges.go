package ycocg

// ColorRanges is the dependent-range model produced by (YCoCg).Meta: plane 0
// (Y) has a fixed range; planes 1 (Co) and 2 (Cg) have ranges that tighten
// around the already-decoded values of the planes before them, following
// exactly the same min/max tables FLIF's encoder and decoder both rely on
// to keep the coded range as narrow as the transform allows.
type ColorRanges struct {
	par   int32
	inner interface {
		NumPlanes() int
		Min(p int) int32
		Max(p int) int32
		MinMax(p int, prevPlanes []int32) (int32, int32)
	}
}

// NumPlanes implements transform.ColorRanges.
func (r *ColorRanges) NumPlanes() int { return r.inner.NumPlanes() }

// Min implements transform.ColorRanges.
func (r *ColorRanges) Min(p int) int32 {
	switch p {
	case 0:
		return 0
	case 1, 2:
		return -4 * r.par
	default:
		return r.inner.Min(p)
	}
}

// Max implements transform.ColorRanges.
func (r *ColorRanges) Max(p int) int32 {
	switch p {
	case 0:
		return 4*r.par - 1
	case 1, 2:
		return 4*r.par - 2
	default:
		return r.inner.Max(p)
	}
}

// MinMax implements transform.ColorRanges: plane 0's range is fixed, plane
// 1's (Co) depends on plane 0's decoded value (prevPlanes[0] == Y), and
// plane 2's (Cg) depends on both (prevPlanes[0] == Y, prevPlanes[1] == Co).
func (r *ColorRanges) MinMax(p int, prevPlanes []int32) (int32, int32) {
	switch p {
	case 0:
		return 0, getMaxY(r.par)
	case 1:
		y := prevPlanes[0]
		return getMinCo(r.par, y), getMaxCo(r.par, y)
	case 2:
		y, co := prevPlanes[0], prevPlanes[1]
		return getMinCg(r.par, y, co), getMaxCg(r.par, y, co)
	default:
		return r.inner.MinMax(p, prevPlanes)
	}
}

func getMaxY(par int32) int32 { return par*4 - 1 }

// getMinCo and getMaxCo bound the Co (orange-blue chroma) plane given the
// already-decoded Y value; the tightened range is what lets the entropy
// coder spend fewer bits on Co than a flat [-4*par, 4*par-2] would cost.
func getMinCo(par, y int32) int32 {
	switch {
	case y < par-1:
		return -4 - 4*y
	case y >= 3*par:
		return 3 + 4*(y-4*par)
	default:
		return -4 * par
	}
}

func getMaxCo(par, y int32) int32 {
	switch {
	case y < par-1:
		return 2 + 4*y
	case y >= 3*par:
		return 4*par - 5 - 4*(y-3*par)
	default:
		return 4*par - 2
	}
}

// getMinCg and getMaxCg bound the Cg (green-purple chroma) plane given the
// already-decoded Y and Co values. An out-of-range co (outside
// [getMinCo,getMaxCo] for this y) is not a value the encoder or decoder
// should ever ask about; the sentinel returns here mirror the source's own
// defensive out-of-band markers rather than panicking on malformed input.
func getMinCg(par, y, co int32) int32 {
	if co < getMinCo(par, y) || co > getMaxCo(par, y) {
		return 8 * par
	}
	switch {
	case y < par-1:
		return -2 - 2*y + (abs32(co+1)/2)*2
	case y >= 3*par:
		return -1 - 2*(4*par-1-y)
	default:
		a := -4*par + 1 + (y-2*par)*2
		b := -2*par - (y-par+1)*2 + (abs32(co+1)/2)*2
		return max32(a, b)
	}
}

func getMaxCg(par, y, co int32) int32 {
	if co < getMinCo(par, y) || co > getMaxCo(par, y) {
		return -8 * par
	}
	switch {
	case y < par-1:
		return 2 * y
	case y >= 3*par:
		return -1 + 2*(4*par-1-y) - ((1+abs32(co+1))/2)*2
	default:
		a := 2*par - 2 + (y-par+1)*2
		b := 2*par - 1 + (3*par-1-y)*2 - ((1+abs32(co+1))/2)*2
		return min32(a, b)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
