package maniac

// Default (cut, alpha) pairs for the two chance tables this package builds.
// alpha is a Q32 fixed-point step fraction: each observed bit nudges a
// chance toward 0 or toward ChanceMax by roughly alpha/2^32 of the
// remaining distance. cut bounds how close a chance may get to the 0/4095
// extremes, so a context is never treated as fully certain.
const (
	CompoundCut   = 4
	CompoundAlpha = 0xFFFFFFFF / 20

	MetaCut   = 2
	MetaAlpha = 0xFFFFFFFF / 19
)

// ContextTreeMinCount and ContextTreeMaxCount bound the "count" field coded
// for a freshly materialized inner node: the number of visits a leaf takes
// before it lazily splits into two children. The source does not pin exact
// numeric defaults for these (unlike cut/alpha, which it states literally),
// so this module fixes them at values wide enough to cover both the
// immediate-split (count == 0) and delayed-split paths.
const (
	ContextTreeMinCount = 0
	ContextTreeMaxCount = 512
)

// ContextTreeCountDiv and ContextTreeMinSubtreeSize are reserved for
// encoder-side tree simplification (merging low-traffic subtrees), which is
// explicitly out of scope for this decoder-oriented package; kept as named
// constants so a future encoder-side Simplify implementation has them
// available under the same names the source uses.
const (
	ContextTreeCountDiv       = 30
	ContextTreeMinSubtreeSize = 8
)
