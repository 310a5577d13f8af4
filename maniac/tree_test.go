package maniac

import "testing"

func TestNewTreeIsSingleLeaf(t *testing.T) {
	tree := NewTree()
	if len(tree) != 1 {
		t.Fatalf("len(tree) = %d, want 1", len(tree))
	}
	if tree[0].Property != -1 {
		t.Fatalf("root.Property = %d, want -1", tree[0].Property)
	}
}
