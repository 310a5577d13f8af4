package maniac

// ChanceBits is the width of the probability state BitChance tracks.
const ChanceBits = 12

// ChanceMax is the number of distinct probability values (0..ChanceMax-1);
// valid chances are clamped to [1, ChanceMax-1].
const ChanceMax = 1 << ChanceBits

// initialChance is the starting probability of a freshly constructed
// BitChance: maximally uncertain, i.e. exactly in the middle.
const initialChance = ChanceMax / 2

// Table is an immutable probability-update table derived from (cut, alpha).
// Table.zero[p] / Table.one[p] give the new probability after observing a
// 0 or 1 bit, respectively, while the chance was p. It is built once per
// (cut, alpha) pair and is safe to share, read-only, across any number of
// BitChance values and coder instances.
type Table struct {
	zero [ChanceMax]uint16
	one  [ChanceMax]uint16
}

// NewTable builds the update table for the given (cut, alpha) pair. cut
// bounds how close a chance may drift to the 0/ChanceMax extremes; alpha is
// a Q32 fixed-point fraction controlling how far a single observation moves
// the chance toward its target.
func NewTable(cut int, alpha uint32) *Table {
	t := &Table{}
	for p := 0; p < ChanceMax; p++ {
		t.zero[p] = nextChance(p, false, cut, alpha)
		t.one[p] = nextChance(p, true, cut, alpha)
	}
	return t
}

func nextChance(p int, bit bool, cut int, alpha uint32) uint16 {
	target := int64(0)
	if bit {
		target = ChanceMax
	}
	delta := target - int64(p)
	step := (delta * int64(alpha)) >> 32
	if step == 0 && delta > 0 {
		// The shift rounds toward -inf, so an upward step can truncate to
		// zero short of the target; always move by at least one.
		step = 1
	}
	next := int64(p) + step

	lo := int64(cut)
	hi := int64(ChanceMax - cut)
	if lo < 1 {
		lo = 1
	}
	if hi > ChanceMax-1 {
		hi = ChanceMax - 1
	}
	if next < lo {
		next = lo
	}
	if next > hi {
		next = hi
	}
	return uint16(next)
}

// BitChance is a single adaptive probability estimate: P(bit==1), held in
// [1, ChanceMax-1]. Observing a bit updates the estimate in place via a
// Table lookup; no allocation, no branching beyond the table index.
type BitChance struct {
	prob uint16
}

// NewBitChance returns a BitChance at the uniform (maximally uncertain)
// starting probability.
func NewBitChance() BitChance {
	return BitChance{prob: initialChance}
}

// Get12Bit returns the current 12-bit probability.
func (c *BitChance) Get12Bit() uint16 {
	return c.prob
}

// Put updates the chance after observing bit, via table.
func (c *BitChance) Put(bit bool, table *Table) {
	if bit {
		c.prob = table.one[c.prob]
	} else {
		c.prob = table.zero[c.prob]
	}
}

// BitKind identifies which role a coded bit plays within a symbol: whether
// the value is exactly zero, its sign, the unary-coded length of its
// magnitude (exponent), or one of the magnitude's binary digits (mantissa).
type BitKind int

const (
	BitZero BitKind = iota
	BitSign
	BitExp
	BitMant
)

// maxBitIndex bounds the per-kind chance arrays for BitExp/BitMant. It is
// sized comfortably above the bit width of any property value this package
// is specified to carry (colour ranges up to a handful of multiples of the
// YCoCg scale parameter, well under 2^32).
const maxBitIndex = 32

// SymbolChance is the bundle of BitChances for one symbol: one chance each
// for the zero-flag and sign bits, plus one chance per bit position for the
// exponent (unary length) and mantissa (binary digits) bits.
type SymbolChance struct {
	zero BitChance
	sign BitChance
	exp  [maxBitIndex]BitChance
	mant [maxBitIndex]BitChance
}

// NewSymbolChance returns a SymbolChance with every BitChance at the
// uniform starting probability.
func NewSymbolChance() SymbolChance {
	sc := SymbolChance{zero: NewBitChance(), sign: NewBitChance()}
	for i := range sc.exp {
		sc.exp[i] = NewBitChance()
	}
	for i := range sc.mant {
		sc.mant[i] = NewBitChance()
	}
	return sc
}

// Bit returns the BitChance for (kind, i). i is ignored for BitZero/BitSign.
func (sc *SymbolChance) Bit(kind BitKind, i int) *BitChance {
	switch kind {
	case BitZero:
		return &sc.zero
	case BitSign:
		return &sc.sign
	case BitExp:
		return &sc.exp[i]
	case BitMant:
		return &sc.mant[i]
	default:
		panic("maniac: invalid bit kind")
	}
}

// FinalCompoundSymbolChances is the per-leaf chance table owned exclusively
// by a leaf store: one SymbolChance per leaf, duplicated on lazy split so
// both children of a newly activated node inherit their parent's learned
// state.
type FinalCompoundSymbolChances struct {
	real SymbolChance
}

// NewFinalCompoundSymbolChances returns a fresh, uniformly-initialized leaf
// chance table.
func NewFinalCompoundSymbolChances() FinalCompoundSymbolChances {
	return FinalCompoundSymbolChances{real: NewSymbolChance()}
}

// Chances returns the underlying SymbolChance.
func (c *FinalCompoundSymbolChances) Chances() *SymbolChance {
	return &c.real
}
