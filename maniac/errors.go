package maniac

import "errors"

var (
	// ErrInvalidTree is returned by ReadTree/readSubtree when a property's
	// split space has already been exhausted (subrange.Lo >= subrange.Hi)
	// but the meta-stream still claims an inner node on that property.
	ErrInvalidTree = errors.New("maniac: invalid tree")

	// ErrPropertyCountMismatch is returned when a caller supplies a
	// Properties vector whose length does not match the Ranges the coder
	// was constructed with.
	ErrPropertyCountMismatch = errors.New("maniac: property count mismatch")

	// ErrShortRead is available to RAC implementations for reporting a
	// bitstream exhausted before decoding completes. The rac package in
	// this module does not use it; it reports a wrapped io.EOF instead.
	ErrShortRead = errors.New("maniac: short read")
)
