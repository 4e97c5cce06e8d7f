package bsonproto

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ObjectID represents the BSON scalar type ObjectID.
//
// It is an alias of the driver's own type so that [bsonval.Value] can be
// passed directly to code built against go.mongodb.org/mongo-driver/v2/bson
// without conversion.
type ObjectID = bson.ObjectID

// SizeObjectID is the size of the encoding of [ObjectID] in bytes.
const SizeObjectID = 12

// EncodeObjectID encodes ObjectID value v into b.
//
// b must be at least 12 ([SizeObjectID]) bytes long; otherwise, EncodeObjectID will panic.
func EncodeObjectID(b []byte, v ObjectID) {
	_ = b[11]
	copy(b, v[:])
}

// DecodeObjectID decodes an ObjectID value from b.
//
// If there is not enough bytes, DecodeObjectID returns a wrapped [ErrDecodeShortInput].
func DecodeObjectID(b []byte) (ObjectID, error) {
	var res ObjectID

	if len(b) < SizeObjectID {
		return res, fmt.Errorf("DecodeObjectID: expected at least %d bytes, got %d: %w", SizeObjectID, len(b), ErrDecodeShortInput)
	}

	copy(res[:], b)

	return res, nil
}
