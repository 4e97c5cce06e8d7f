package bsonproto

import (
	"encoding/binary"
	"fmt"
)

// SizeInt64 is the size of the encoding of int64 in bytes.
const SizeInt64 = 8

// EncodeInt64 encodes int64 value v into b.
//
// b must be at least 8 ([SizeInt64]) bytes long; otherwise, EncodeInt64 will panic.
func EncodeInt64(b []byte, v int64) {
	binary.LittleEndian.PutUint64(b, uint64(v))
}

// DecodeInt64 decodes an int64 value from b.
//
// If there is not enough bytes, DecodeInt64 returns a wrapped [ErrDecodeShortInput].
func DecodeInt64(b []byte) (int64, error) {
	if len(b) < SizeInt64 {
		return 0, fmt.Errorf("DecodeInt64: expected at least %d bytes, got %d: %w", SizeInt64, len(b), ErrDecodeShortInput)
	}

	return int64(binary.LittleEndian.Uint64(b)), nil
}
