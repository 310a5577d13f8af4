package maniac

import "testing"

func TestNewTableMonotone(t *testing.T) {
	table := NewTable(CompoundCut, CompoundAlpha)
	for p := uint16(0); p < ChanceMax; p++ {
		zUp := table.zero[p]
		oUp := table.one[p]
		if zUp >= ChanceMax {
			t.Fatalf("zero[%d] = %d, want < %d", p, zUp, ChanceMax)
		}
		if oUp >= ChanceMax {
			t.Fatalf("one[%d] = %d, want < %d", p, oUp, ChanceMax)
		}
		if zUp == 0 {
			t.Fatalf("zero[%d] = 0, want > 0", p)
		}
		if oUp == 0 {
			t.Fatalf("one[%d] = 0, want > 0", p)
		}
	}
}

func TestBitChanceObservingZeroLowersChance(t *testing.T) {
	table := NewTable(CompoundCut, CompoundAlpha)
	bc := NewBitChance()
	start := bc.Get12Bit()
	bc.Put(false, table)
	if bc.Get12Bit() >= start {
		t.Fatalf("after observing a zero bit, chance went from %d to %d, want decrease", start, bc.Get12Bit())
	}
}

func TestBitChanceObservingOneRaisesChance(t *testing.T) {
	table := NewTable(CompoundCut, CompoundAlpha)
	bc := NewBitChance()
	start := bc.Get12Bit()
	bc.Put(true, table)
	if bc.Get12Bit() <= start {
		t.Fatalf("after observing a one bit, chance went from %d to %d, want increase", start, bc.Get12Bit())
	}
}

func TestBitChanceConvergesTowardRepeatedObservation(t *testing.T) {
	table := NewTable(CompoundCut, CompoundAlpha)
	bc := NewBitChance()
	for i := 0; i < 10000; i++ {
		bc.Put(true, table)
	}
	if got := bc.Get12Bit(); got < ChanceMax-10 {
		t.Fatalf("after many observed ones, chance = %d, want close to %d", got, ChanceMax)
	}
}

func TestSymbolChanceBitIndependence(t *testing.T) {
	sc := NewSymbolChance()
	sc.Bit(BitExp, 0).prob = 100
	sc.Bit(BitExp, 1).prob = 200
	sc.Bit(BitMant, 0).prob = 300
	if got := sc.Bit(BitExp, 0).prob; got != 100 {
		t.Fatalf("Bit(BitExp,0) = %d, want 100", got)
	}
	if got := sc.Bit(BitExp, 1).prob; got != 200 {
		t.Fatalf("Bit(BitExp,1) = %d, want 200", got)
	}
	if got := sc.Bit(BitMant, 0).prob; got != 300 {
		t.Fatalf("Bit(BitMant,0) = %d, want 300", got)
	}
}
