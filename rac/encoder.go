package rac

import (
	"fmt"
	"io"
)

// Encoder writes bits against caller-supplied probabilities into an
// underlying byte stream. Carry propagation is handled by holding back one
// byte (held) plus a run of as-yet-unwritten 0xFF bytes (ffRun): once acc's
// top byte is known not to receive a carry from a later bit, the whole run
// is released in one pass with the carry folded in.
type Encoder struct {
	w     io.ByteWriter
	rng   uint32
	acc   uint64
	held  byte
	ffRun int64
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.ByteWriter) *Encoder {
	return &Encoder{w: w, rng: 0xffffffff, ffRun: 1}
}

// release writes held (and any queued 0xFF run behind it) once acc's top
// byte is settled, folding in the carry bit from acc's bit 32.
func (e *Encoder) release() error {
	if uint32(e.acc) < 0xff000000 || (e.acc>>32) != 0 {
		carry := byte(e.acc >> 32)
		b := e.held
		for {
			if err := e.w.WriteByte(b + carry); err != nil {
				return fmt.Errorf("rac: %w", err)
			}
			b = 0xff
			e.ffRun--
			if e.ffRun <= 0 {
				break
			}
		}
		e.held = byte(uint32(e.acc) >> 24)
	}
	e.ffRun++
	e.acc = uint64(uint32(e.acc) << 8)
	return nil
}

func (e *Encoder) normalize() error {
	for e.rng < top {
		e.rng <<= 8
		if err := e.release(); err != nil {
			return err
		}
	}
	return nil
}

// WriteChance encodes bit against probability p (P(bit==1) scaled to
// [0, ProbMax)) without mutating p; the caller is responsible for updating
// its own adaptive state afterward.
func (e *Encoder) WriteChance(p uint16, bit bool) error {
	b := bound(ProbMax-p, e.rng)
	if !bit {
		e.rng = b
	} else {
		e.acc += uint64(b)
		e.rng -= b
	}
	return e.normalize()
}

// ReadChance exists only so *Encoder satisfies maniac.RAC; an encoder
// never reads and always fails.
func (e *Encoder) ReadChance(p uint16) (bool, error) {
	return false, ErrWriteOnly
}

// WriteDirect encodes bit with a fixed 1/2 probability, bypassing any
// chance table. Used for header fields that are not worth adapting to.
func (e *Encoder) WriteDirect(bit bool) error {
	e.rng >>= 1
	if bit {
		e.acc += uint64(e.rng)
	}
	return e.normalize()
}

// Flush drains the carry-propagation state, writing the final bytes needed
// to make the encoded stream unambiguously decodable.
func (e *Encoder) Flush() error {
	for i := 0; i < 5; i++ {
		if err := e.release(); err != nil {
			return err
		}
	}
	return nil
}
