// Package bsonproto implements the low-level, byte-level encoding and
// decoding rules for BSON scalar values: little-endian integers and floats,
// length-prefixed strings and binary, NUL-terminated cstrings, the
// fixed-size ObjectID/Decimal128/Timestamp wire shapes, and the
// two-cstring Regex shape.
//
// It knows nothing about documents, arrays, or field tags; [bsonval] builds
// the tagged Value Model and the Document/Array codec on top of it.
package bsonproto

import "errors"

var (
	// ErrDecodeShortInput is wrapped by Decode functions when b is too short to hold the value.
	ErrDecodeShortInput = errors.New("bsonproto: short input")

	// ErrDecodeInvalidInput is wrapped by Decode functions when b's content is structurally invalid.
	ErrDecodeInvalidInput = errors.New("bsonproto: invalid input")
)
