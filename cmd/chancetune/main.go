// Command chancetune prints, for a handful of (cut, alpha) candidates one
// after another, a short summary of how each candidate's BitChance update
// table moves a chance, the same way the codec's authors
// would eyeball a tuning run before committing new constants. It is a
// read-only diagnostic: nothing here feeds back into the coder itself.
package main

import (
	"fmt"

	"github.com/cocosip/go-flif-core/maniac"
	"github.com/kr/pretty"
)

type candidate struct {
	name  string
	cut   int
	alpha uint32
}

func main() {
	candidates := []candidate{
		{"compound (default)", maniac.CompoundCut, maniac.CompoundAlpha},
		{"meta (default)", maniac.MetaCut, maniac.MetaAlpha},
		{"tight", 8, 0xFFFFFFFF / 40},
		{"loose", 1, 0xFFFFFFFF / 8},
	}

	for _, c := range candidates {
		t := maniac.NewTable(c.cut, c.alpha)
		fmt.Printf("=== %s (cut=%d alpha=%d) ===\n", c.name, c.cut, c.alpha)
		pretty.Println(sample(t))
	}
}

// sampleResult reports how a table moves a chance starting at the middle and at
// near the extremes, after a run of observations of the same bit.
type sampleResult struct {
	FromMiddleAfter5Ones  uint16
	FromMiddleAfter5Zeros uint16
	NearZeroAfterOne      uint16
	NearMaxAfterZero      uint16
}

// driveToExtreme feeds the same bit 64 times to a freshly seeded chance,
// pushing it toward that bit's extreme (how close it gets depends on the
// table's alpha and cut).
func driveToExtreme(t *maniac.Table, bit bool) maniac.BitChance {
	c := maniac.NewBitChance()
	for i := 0; i < 64; i++ {
		c.Put(bit, t)
	}
	return c
}

func sample(t *maniac.Table) sampleResult {
	mid := maniac.NewBitChance()
	for i := 0; i < 5; i++ {
		mid.Put(true, t)
	}
	afterOnes := mid.Get12Bit()

	mid2 := maniac.NewBitChance()
	for i := 0; i < 5; i++ {
		mid2.Put(false, t)
	}
	afterZeros := mid2.Get12Bit()

	// Near the low extreme, then hit with a single opposing (1) bit.
	nearZero := driveToExtreme(t, false)
	nearZero.Put(true, t)

	// Near the high extreme, then hit with a single opposing (0) bit.
	nearMax := driveToExtreme(t, true)
	nearMax.Put(false, t)

	return sampleResult{
		FromMiddleAfter5Ones:  afterOnes,
		FromMiddleAfter5Zeros: afterZeros,
		NearZeroAfterOne:      nearZero.Get12Bit(),
		NearMaxAfterZero:      nearMax.Get12Bit(),
	}
}
