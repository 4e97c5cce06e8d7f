package bsonproto

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Decimal128 represents the BSON scalar type Decimal128.
//
// It is an alias of the driver's own type; see [ObjectID] for the rationale.
type Decimal128 = bson.Decimal128

// SizeDecimal128 is the size of the encoding of [Decimal128] in bytes.
const SizeDecimal128 = 16

// EncodeDecimal128 encodes Decimal128 value v into b.
//
// b must be at least 16 ([SizeDecimal128]) bytes long; otherwise, EncodeDecimal128 will panic.
func EncodeDecimal128(b []byte, v Decimal128) {
	h, l := v.GetBytes()
	EncodeInt64(b, int64(l))
	EncodeInt64(b[8:], int64(h))
}

// DecodeDecimal128 decodes a Decimal128 value from b.
//
// If there is not enough bytes, DecodeDecimal128 returns a wrapped [ErrDecodeShortInput].
func DecodeDecimal128(b []byte) (Decimal128, error) {
	if len(b) < SizeDecimal128 {
		return Decimal128{}, fmt.Errorf(
			"DecodeDecimal128: expected at least %d bytes, got %d: %w",
			SizeDecimal128, len(b), ErrDecodeShortInput,
		)
	}

	l, err := DecodeInt64(b[:8])
	if err != nil {
		return Decimal128{}, err
	}

	h, err := DecodeInt64(b[8:])
	if err != nil {
		return Decimal128{}, err
	}

	return bson.NewDecimal128(uint64(h), uint64(l)), nil
}
