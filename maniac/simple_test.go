package maniac

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-flif-core/rac"
)

func TestSimpleSymbolCoderRoundTripSequentialCalls(t *testing.T) {
	// Mirrors how MetaPropertySymbolCoder drives one SimpleSymbolCoder
	// across several differently-ranged fields in a row.
	type call struct{ min, max, val PropertyVal }
	calls := []call{
		{-1, 2, 0},
		{0, 512, 137},
		{0, 99, 40},
		{-1, 2, -1},
		{0, 512, 5},
	}

	buf := &bytes.Buffer{}
	enc := NewSimpleSymbolCoder(rac.NewEncoder(buf))
	encRAC := enc.rac.(*rac.Encoder)
	for _, c := range calls {
		if err := enc.WriteInt(c.min, c.max, c.val); err != nil {
			t.Fatalf("WriteInt(%d,%d,%d): %v", c.min, c.max, c.val, err)
		}
	}
	if err := encRAC.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	decRAC := rac.NewDecoder(bytes.NewReader(buf.Bytes()))
	if err := decRAC.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dec := NewSimpleSymbolCoder(decRAC)
	for i, c := range calls {
		got, err := dec.ReadInt(c.min, c.max)
		if err != nil {
			t.Fatalf("ReadInt[%d]: %v", i, err)
		}
		if got != c.val {
			t.Fatalf("call %d: got %d, want %d", i, got, c.val)
		}
	}
}

func TestSimpleSymbolCoderFixedWidthRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := NewSimpleSymbolCoder(rac.NewEncoder(buf))
	encRAC := enc.rac.(*rac.Encoder)
	vals := []PropertyVal{0, 1, 255, 128, 7}
	for _, v := range vals {
		if err := enc.WriteIntBits(8, v); err != nil {
			t.Fatalf("WriteIntBits(%d): %v", v, err)
		}
	}
	if err := encRAC.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	decRAC := rac.NewDecoder(bytes.NewReader(buf.Bytes()))
	if err := decRAC.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dec := NewSimpleSymbolCoder(decRAC)
	for i, want := range vals {
		got, err := dec.ReadIntBits(8)
		if err != nil {
			t.Fatalf("ReadIntBits[%d]: %v", i, err)
		}
		if got != want {
			t.Fatalf("val %d: got %d, want %d", i, got, want)
		}
	}
}
