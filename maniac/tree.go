package maniac

// PropertyDecisionNode is one node of a decision tree that routes a
// Properties vector to a leaf's chance table.
//
// Property == -1 marks a leaf; any other value is an index into the
// Properties vector this node decides on. Count encodes three states:
// negative means the node is an activated inner node and routing uses
// SplitVal; positive means the node is a leaf that has not yet accumulated
// enough visits to split, decremented on every visit; zero means this
// visit is the one that triggers the lazy split. ChildID indexes the left
// ("> SplitVal") child; ChildID+1 is the right child, created alongside it.
// LeafID indexes the leaf store and is valid whenever this node is acting
// as a leaf (Property == -1, or Property != -1 with Count >= 0).
type PropertyDecisionNode struct {
	Property int8
	Count    int16
	SplitVal PropertyVal
	ChildID  uint32
	LeafID   uint32
}

func newLeafNode() PropertyDecisionNode {
	return PropertyDecisionNode{Property: -1}
}

// Tree is an append-only sequence of PropertyDecisionNode; position 0 is
// always the root.
type Tree []PropertyDecisionNode

// NewTree returns a brand-new tree: a single leaf at position 0.
func NewTree() Tree {
	return Tree{newLeafNode()}
}
