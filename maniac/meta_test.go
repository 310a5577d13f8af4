package maniac

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-flif-core/rac"
)

func TestMetaPropertySymbolCoderRoundTripEmptyTree(t *testing.T) {
	ranges := Ranges{{Lo: -10, Hi: 10}}

	buf := &bytes.Buffer{}
	encRAC := rac.NewEncoder(buf)
	enc := NewMetaPropertySymbolCoder(encRAC, len(ranges))
	tree := NewTree()
	if err := enc.WriteTree(tree, ranges); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	if err := encRAC.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	decRAC := rac.NewDecoder(bytes.NewReader(buf.Bytes()))
	if err := decRAC.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dec := NewMetaPropertySymbolCoder(decRAC, len(ranges))
	got, err := dec.ReadTree(ranges)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	if len(got) != 1 || got[0].Property != -1 {
		t.Fatalf("got = %+v, want single leaf", got)
	}
}

func TestMetaPropertySymbolCoderRoundTripSplitTree(t *testing.T) {
	ranges := Ranges{{Lo: 0, Hi: 100}, {Lo: -5, Hi: 5}}
	tree := Tree{
		{Property: 0, Count: 20, SplitVal: 40, ChildID: 1},
		{Property: 1, Count: 5, SplitVal: 0, ChildID: 3},
		newLeafNode(),
		newLeafNode(),
		newLeafNode(),
	}

	buf := &bytes.Buffer{}
	encRAC := rac.NewEncoder(buf)
	enc := NewMetaPropertySymbolCoder(encRAC, len(ranges))
	if err := enc.WriteTree(tree, ranges); err != nil {
		t.Fatalf("WriteTree: %v", err)
	}
	if err := encRAC.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	decRAC := rac.NewDecoder(bytes.NewReader(buf.Bytes()))
	if err := decRAC.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dec := NewMetaPropertySymbolCoder(decRAC, len(ranges))
	got, err := dec.ReadTree(ranges)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}

	if len(got) != len(tree) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(tree))
	}
	for i, want := range tree {
		g := got[i]
		if g.Property != want.Property || g.SplitVal != want.SplitVal || g.ChildID != want.ChildID {
			t.Fatalf("node %d = %+v, want %+v", i, g, want)
		}
		if want.Property != -1 && g.Count != want.Count {
			t.Fatalf("node %d Count = %d, want %d", i, g.Count, want.Count)
		}
	}
}

func TestMetaPropertySymbolCoderRejectsExhaustedRange(t *testing.T) {
	ranges := Ranges{{Lo: 5, Hi: 5}}
	tree := Tree{{Property: 0, Count: 1, SplitVal: 5, ChildID: 1}, newLeafNode(), newLeafNode()}

	buf := &bytes.Buffer{}
	encRAC := rac.NewEncoder(buf)
	enc := NewMetaPropertySymbolCoder(encRAC, len(ranges))
	if err := enc.WriteTree(tree, ranges); err != ErrInvalidTree {
		t.Fatalf("WriteTree error = %v, want %v", err, ErrInvalidTree)
	}
}
