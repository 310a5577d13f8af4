package maniac

// SimpleSymbolCoder is a flat, non-tree integer coder: it owns exactly one
// SymbolChance and reuses it across every ReadInt/WriteInt call made
// through it, so adaptation accumulates across calls instead of starting
// fresh per leaf the way FinalCompoundSymbolCoder does per tree node.
// MetaPropertySymbolCoder drives one SimpleSymbolCoder for every field it
// codes while walking a tree's shape (property index, activation count,
// split value), matching the source's single shared
// SimpleSymbolCoder<BitChance, RAC, 18> reused across read_subtree's
// read_int calls, rather than giving each field its own chance table.
type SimpleSymbolCoder struct {
	rac     RAC
	table   *Table
	chances SymbolChance
}

// NewSimpleSymbolCoder builds a coder with the default meta (cut, alpha).
func NewSimpleSymbolCoder(rac RAC) *SimpleSymbolCoder {
	return NewSimpleSymbolCoderWithParams(rac, MetaCut, MetaAlpha)
}

// NewSimpleSymbolCoderWithParams builds a coder with explicit (cut, alpha).
func NewSimpleSymbolCoderWithParams(rac RAC, cut int, alpha uint32) *SimpleSymbolCoder {
	return &SimpleSymbolCoder{rac: rac, table: NewTable(cut, alpha), chances: NewSymbolChance()}
}

func (c *SimpleSymbolCoder) bitCoder() *FinalCompoundSymbolBitCoder {
	return newFinalCompoundSymbolBitCoder(c.table, c.rac, &c.chances)
}

// ReadInt decodes an integer in [min, max], updating the coder's shared
// chances in place.
func (c *SimpleSymbolCoder) ReadInt(min, max PropertyVal) (PropertyVal, error) {
	if min == max {
		return min, nil
	}
	return readIntWithBitCoder(c.bitCoder(), min, max)
}

// ReadIntBits decodes a fixed-width nbits-bit unsigned integer.
func (c *SimpleSymbolCoder) ReadIntBits(nbits int) (PropertyVal, error) {
	return readNBits(c.bitCoder(), nbits)
}

// WriteInt is the symmetric encoder for ReadInt.
func (c *SimpleSymbolCoder) WriteInt(min, max, val PropertyVal) error {
	if min == max {
		return nil
	}
	return writeIntWithBitCoder(c.bitCoder(), min, max, val)
}

// WriteIntBits is the symmetric encoder for ReadIntBits.
func (c *SimpleSymbolCoder) WriteIntBits(nbits int, val PropertyVal) error {
	return writeNBits(c.bitCoder(), nbits, val)
}
