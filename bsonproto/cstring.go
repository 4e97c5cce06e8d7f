package bsonproto

import (
	"bytes"
	"fmt"
)

// SizeCString returns the size of the encoding of v as a cstring in bytes.
func SizeCString(v string) int {
	return len(v) + 1
}

// EncodeCString encodes cstring value v into b.
//
// b must be at least len(v)+1 ([SizeCString]) bytes long; otherwise, EncodeCString will panic.
// Only b[0:len(v)+1] bytes are modified.
func EncodeCString(b []byte, v string) {
	b[len(v)] = 0
	copy(b, v)
}

// DecodeCString decodes a cstring value from b, returning the decoded string
// without its terminating NUL.
//
// If there is not enough bytes, DecodeCString returns a wrapped [ErrDecodeShortInput].
// If no NUL byte is found, it returns a wrapped [ErrDecodeInvalidInput].
func DecodeCString(b []byte) (string, error) {
	if len(b) < 1 {
		return "", fmt.Errorf("DecodeCString: expected at least 1 byte, got %d: %w", len(b), ErrDecodeShortInput)
	}

	i := bytes.IndexByte(b, 0)
	if i == -1 {
		return "", fmt.Errorf("DecodeCString: no NUL terminator found: %w", ErrDecodeInvalidInput)
	}

	return string(b[:i]), nil
}
