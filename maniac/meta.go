package maniac

// MetaPropertySymbolCoder serializes the shape of a Tree itself: for every
// node it codes which property (if any) the node splits on and, for split
// nodes, the split value and the initial lazy-split activation count, then
// recurses into both children with that property's range narrowed by the
// split. It does not touch per-leaf FinalCompoundSymbolChances at all —
// tree shape and per-leaf statistics are coded as entirely separate
// streams.
//
// A single MetaPropertySymbolCoder drives one SimpleSymbolCoder for the
// whole walk: every field (which property, what activation count, what
// split value) is coded through that same coder, so its chances mix
// adaptation across all three rather than each field tracking its own.
// It uses the meta (cut, alpha) rather than the compound defaults, since
// tree shape changes far less often than leaf statistics.
//
// Children are always allocated as a contiguous pair: when a node decides
// to split, both child slots are appended before either subtree is filled
// in, so ChildID and ChildID+1 address them regardless of how large either
// subtree turns out to be.
type MetaPropertySymbolCoder struct {
	rac          RAC
	coder        *SimpleSymbolCoder
	nbProperties int
}

// NewMetaPropertySymbolCoder builds a coder for a tree over nbProperties
// properties using the default meta (cut, alpha).
func NewMetaPropertySymbolCoder(rac RAC, nbProperties int) *MetaPropertySymbolCoder {
	return NewMetaPropertySymbolCoderWithParams(rac, nbProperties, MetaCut, MetaAlpha)
}

// NewMetaPropertySymbolCoderWithParams builds a coder with explicit
// (cut, alpha).
func NewMetaPropertySymbolCoderWithParams(rac RAC, nbProperties int, cut int, alpha uint32) *MetaPropertySymbolCoder {
	return &MetaPropertySymbolCoder{
		rac:          rac,
		coder:        NewSimpleSymbolCoderWithParams(rac, cut, alpha),
		nbProperties: nbProperties,
	}
}

// ReadTree decodes a full tree given the initial ranges of every property.
func (m *MetaPropertySymbolCoder) ReadTree(ranges Ranges) (Tree, error) {
	if len(ranges) != m.nbProperties {
		return nil, ErrPropertyCountMismatch
	}
	t := Tree{newLeafNode()}
	if err := m.readSubtree(&t, 0, ranges.Clone()); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteTree is the symmetric encoder for ReadTree.
func (m *MetaPropertySymbolCoder) WriteTree(tree Tree, ranges Ranges) error {
	if len(ranges) != m.nbProperties {
		return ErrPropertyCountMismatch
	}
	if len(tree) == 0 {
		return ErrInvalidTree
	}
	return m.writeSubtree(tree, 0, ranges.Clone())
}

// readSubtree decodes node pos of t in place, appending its two children
// (also decoded in place, depth-first) when the node turns out to split.
// ranges is narrowed around each recursive call and restored afterward, so
// sibling subtrees never observe a range narrowed by the other side.
func (m *MetaPropertySymbolCoder) readSubtree(t *Tree, pos uint32, ranges Ranges) error {
	property, err := m.coder.ReadInt(0, PropertyVal(m.nbProperties))
	if err != nil {
		return err
	}
	if property == 0 {
		(*t)[pos] = newLeafNode()
		return nil
	}

	p := int(property) - 1
	oldLo, oldHi := ranges[p].Lo, ranges[p].Hi
	if oldLo >= oldHi {
		return ErrInvalidTree
	}

	count, err := m.coder.ReadInt(ContextTreeMinCount, ContextTreeMaxCount)
	if err != nil {
		return err
	}
	splitVal, err := m.coder.ReadInt(oldLo, oldHi-1)
	if err != nil {
		return err
	}

	childID := uint32(len(*t))
	*t = append(*t, newLeafNode(), newLeafNode())

	ranges[p].Lo = splitVal + 1
	if err := m.readSubtree(t, childID, ranges); err != nil {
		return err
	}

	ranges[p].Lo = oldLo
	ranges[p].Hi = splitVal
	if err := m.readSubtree(t, childID+1, ranges); err != nil {
		return err
	}
	ranges[p].Hi = oldHi

	(*t)[pos] = PropertyDecisionNode{
		Property: int8(p),
		Count:    int16(count),
		SplitVal: splitVal,
		ChildID:  childID,
	}
	return nil
}

// writeSubtree is the symmetric encoder for readSubtree, walking the
// already-built tree in the same order instead of constructing it.
func (m *MetaPropertySymbolCoder) writeSubtree(tree Tree, pos uint32, ranges Ranges) error {
	n := tree[pos]
	if n.Property == -1 {
		return m.coder.WriteInt(0, PropertyVal(m.nbProperties), 0)
	}

	p := int(n.Property)
	oldLo, oldHi := ranges[p].Lo, ranges[p].Hi
	if oldLo >= oldHi {
		return ErrInvalidTree
	}
	if err := m.coder.WriteInt(0, PropertyVal(m.nbProperties), PropertyVal(p+1)); err != nil {
		return err
	}

	if err := m.coder.WriteInt(ContextTreeMinCount, ContextTreeMaxCount, PropertyVal(n.Count)); err != nil {
		return err
	}
	if err := m.coder.WriteInt(oldLo, oldHi-1, n.SplitVal); err != nil {
		return err
	}

	ranges[p].Lo = n.SplitVal + 1
	if err := m.writeSubtree(tree, n.ChildID, ranges); err != nil {
		return err
	}

	ranges[p].Lo = oldLo
	ranges[p].Hi = n.SplitVal
	if err := m.writeSubtree(tree, n.ChildID+1, ranges); err != nil {
		return err
	}
	ranges[p].Hi = oldHi

	return nil
}
