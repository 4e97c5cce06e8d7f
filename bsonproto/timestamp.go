package bsonproto

import (
	"encoding/binary"
	"fmt"
)

// Timestamp represents the BSON internal timestamp type: a 32-bit seconds
// counter and a 32-bit per-second increment, packed into 64 bits.
type Timestamp uint64

// SizeTimestamp is the size of the encoding of [Timestamp] in bytes.
const SizeTimestamp = 8

// NewTimestamp packs a seconds value t and an increment i into a Timestamp.
func NewTimestamp(t, i uint32) Timestamp {
	return Timestamp(uint64(t)<<32 | uint64(i))
}

// T returns the seconds part of the timestamp.
func (ts Timestamp) T() uint32 {
	return uint32(ts >> 32)
}

// I returns the increment part of the timestamp.
func (ts Timestamp) I() uint32 {
	return uint32(ts)
}

// EncodeTimestamp encodes Timestamp value v into b.
//
// b must be at least 8 ([SizeTimestamp]) bytes long; otherwise, EncodeTimestamp will panic.
func EncodeTimestamp(b []byte, v Timestamp) {
	binary.LittleEndian.PutUint64(b, uint64(v))
}

// DecodeTimestamp decodes a Timestamp value from b.
//
// If there is not enough bytes, DecodeTimestamp returns a wrapped [ErrDecodeShortInput].
func DecodeTimestamp(b []byte) (Timestamp, error) {
	if len(b) < SizeTimestamp {
		return 0, fmt.Errorf("DecodeTimestamp: expected at least %d bytes, got %d: %w", SizeTimestamp, len(b), ErrDecodeShortInput)
	}

	return Timestamp(binary.LittleEndian.Uint64(b)), nil
}
