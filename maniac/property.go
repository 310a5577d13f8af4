package maniac

// FinalPropertySymbolCoder routes a property vector through a decision
// Tree to a leaf, then delegates integer coding to a FinalCompoundSymbolCoder
// bound to that leaf's chances. It performs the tree's on-demand lazy
// splitting as a side effect of routing.
//
// The Tree is adopted by reference; the caller retains ownership and the
// coder's lifetime must not exceed the tree's. Leaves are owned
// exclusively by this coder's leaf store.
type FinalPropertySymbolCoder struct {
	coder        *FinalCompoundSymbolCoder
	nbProperties int
	leaves       []FinalCompoundSymbolChances
	tree         *Tree
}

// NewFinalPropertySymbolCoder builds a coder over tree and ranges with the
// default compound (cut, alpha).
func NewFinalPropertySymbolCoder(rac RAC, ranges Ranges, tree *Tree) *FinalPropertySymbolCoder {
	return NewFinalPropertySymbolCoderWithParams(rac, ranges, tree, CompoundCut, CompoundAlpha)
}

// NewFinalPropertySymbolCoderWithParams builds a coder with explicit
// (cut, alpha). The root leaf (index 0) is created eagerly, matching the
// tree's root node's LeafID == 0.
func NewFinalPropertySymbolCoderWithParams(rac RAC, ranges Ranges, tree *Tree, cut int, alpha uint32) *FinalPropertySymbolCoder {
	c := &FinalPropertySymbolCoder{
		coder:        NewFinalCompoundSymbolCoderWithParams(rac, cut, alpha),
		nbProperties: len(ranges),
		leaves:       []FinalCompoundSymbolChances{NewFinalCompoundSymbolChances()},
		tree:         tree,
	}
	(*c.tree)[0].LeafID = 0
	return c
}

// findLeaf walks the tree from the root for properties, performing a lazy
// split if routing lands on a node whose activation count has just reached
// zero, and returns the handle (leaf-store index) of the resulting leaf.
func (c *FinalPropertySymbolCoder) findLeaf(properties Properties) (uint32, error) {
	t := *c.tree
	pos := uint32(0)
	for {
		n := &t[pos]
		if n.Property == -1 {
			return n.LeafID, nil
		}

		p := int(n.Property)
		if p < 0 || p >= len(properties) {
			return 0, ErrPropertyCountMismatch
		}

		switch {
		case n.Count < 0:
			if properties[p] > n.SplitVal {
				pos = n.ChildID
			} else {
				pos = n.ChildID + 1
			}
			continue

		case n.Count > 0:
			n.Count--
			return n.LeafID, nil

		default: // n.Count == 0: lazy split
			n.Count--
			oldLeaf := n.LeafID
			duplicate := c.leaves[oldLeaf]
			newLeaf := uint32(len(c.leaves))
			c.leaves = append(c.leaves, duplicate)

			t[n.ChildID].LeafID = oldLeaf
			t[n.ChildID+1].LeafID = newLeaf

			if properties[p] > n.SplitVal {
				return oldLeaf, nil
			}
			return newLeaf, nil
		}
	}
}

func (c *FinalPropertySymbolCoder) leaf(id uint32) *FinalCompoundSymbolChances {
	return &c.leaves[id]
}

// ReadInt locates the leaf for properties and decodes an integer in
// [min, max]. Short-circuits without touching the bitstream if min == max.
func (c *FinalPropertySymbolCoder) ReadInt(properties Properties, min, max PropertyVal) (PropertyVal, error) {
	if min == max {
		return min, nil
	}
	if len(properties) != c.nbProperties {
		return 0, ErrPropertyCountMismatch
	}
	leafID, err := c.findLeaf(properties)
	if err != nil {
		return 0, err
	}
	return c.coder.ReadInt(c.leaf(leafID), min, max)
}

// ReadIntBits locates the leaf for properties and decodes a fixed-width
// nbits-bit unsigned integer.
func (c *FinalPropertySymbolCoder) ReadIntBits(properties Properties, nbits int) (PropertyVal, error) {
	if len(properties) != c.nbProperties {
		return 0, ErrPropertyCountMismatch
	}
	leafID, err := c.findLeaf(properties)
	if err != nil {
		return 0, err
	}
	return c.coder.ReadIntBits(c.leaf(leafID), nbits)
}

// WriteInt is the symmetric encoder for ReadInt.
func (c *FinalPropertySymbolCoder) WriteInt(properties Properties, min, max, val PropertyVal) error {
	if min == max {
		return nil
	}
	if len(properties) != c.nbProperties {
		return ErrPropertyCountMismatch
	}
	leafID, err := c.findLeaf(properties)
	if err != nil {
		return err
	}
	return c.coder.WriteInt(c.leaf(leafID), min, max, val)
}

// WriteIntBits is the symmetric encoder for ReadIntBits.
func (c *FinalPropertySymbolCoder) WriteIntBits(properties Properties, nbits int, val PropertyVal) error {
	if len(properties) != c.nbProperties {
		return ErrPropertyCountMismatch
	}
	leafID, err := c.findLeaf(properties)
	if err != nil {
		return err
	}
	return c.coder.WriteIntBits(c.leaf(leafID), nbits, val)
}

// Simplify is reserved for encoder-side tree simplification (merging
// low-traffic subtrees via ContextTreeCountDiv/ContextTreeMinSubtreeSize).
// That heuristic lives only on the encoder's tree-construction side, which
// is out of scope here; this is a deliberate no-op.
func (c *FinalPropertySymbolCoder) Simplify(divisor, minSubtreeSize int) {}
