package maniac

// bitReadWriter is the shape the integer-coding helpers in integer.go drive.
// FinalCompoundSymbolBitCoder implements it for both the tree-leaf coder and
// the flat SimpleSymbolCoder the meta coder uses. Keeping it package-private avoids exposing an extra public
// type for what is purely internal plumbing.
type bitReadWriter interface {
	read(kind BitKind, i int) (bool, error)
	write(bit bool, kind BitKind, i int) error
}

// FinalCompoundSymbolBitCoder reads or writes one bit at a time against a
// SymbolChance, updating the observed chance in place via table. It holds
// no state of its own beyond the table/rac/chances it was built from, and
// performs no allocation.
type FinalCompoundSymbolBitCoder struct {
	table   *Table
	rac     RAC
	chances *SymbolChance
}

// newFinalCompoundSymbolBitCoder builds a bit coder bound to chances.
func newFinalCompoundSymbolBitCoder(table *Table, rac RAC, chances *SymbolChance) *FinalCompoundSymbolBitCoder {
	return &FinalCompoundSymbolBitCoder{table: table, rac: rac, chances: chances}
}

// read decodes one bit using the chance at (kind, i) and updates it.
func (c *FinalCompoundSymbolBitCoder) read(kind BitKind, i int) (bool, error) {
	ch := c.chances.Bit(kind, i)
	bit, err := c.rac.ReadChance(ch.Get12Bit())
	if err != nil {
		return false, err
	}
	ch.Put(bit, c.table)
	return bit, nil
}

// write encodes bit using the chance at (kind, i) and updates it.
func (c *FinalCompoundSymbolBitCoder) write(bit bool, kind BitKind, i int) error {
	ch := c.chances.Bit(kind, i)
	if err := c.rac.WriteChance(ch.Get12Bit(), bit); err != nil {
		return err
	}
	ch.Put(bit, c.table)
	return nil
}
