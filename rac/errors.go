package rac

import "errors"

var (
	// ErrWriteOnly is returned by Encoder.ReadChance: an Encoder only ever
	// drives the write side of a coding pass. It exists so *Encoder fully
	// satisfies maniac.RAC, for callers that hold the interface rather than
	// the concrete type and should fail loudly on a direction mistake
	// instead of silently doing nothing.
	ErrWriteOnly = errors.New("rac: encoder cannot read")

	// ErrReadOnly is the symmetric case for Decoder.WriteChance.
	ErrReadOnly = errors.New("rac: decoder cannot write")
)
