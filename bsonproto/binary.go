package bsonproto

import (
	"encoding/binary"
	"fmt"
)

// BinarySubtype represents a BSON Binary subtype.
type BinarySubtype byte

const (
	// BinaryGeneric is the generic Binary subtype.
	BinaryGeneric = BinarySubtype(0)

	// BinaryFunction is the function Binary subtype.
	BinaryFunction = BinarySubtype(1)

	// BinaryGenericOld is the deprecated generic-old Binary subtype.
	BinaryGenericOld = BinarySubtype(2)

	// BinaryUUIDOld is the deprecated UUID-old Binary subtype.
	BinaryUUIDOld = BinarySubtype(3)

	// BinaryUUID is the UUID Binary subtype.
	BinaryUUID = BinarySubtype(4)

	// BinaryMD5 is the MD5 Binary subtype.
	BinaryMD5 = BinarySubtype(5)

	// BinaryEncrypted is the encrypted Binary subtype.
	BinaryEncrypted = BinarySubtype(6)

	// BinaryUser is the start of the user-defined Binary subtype range.
	BinaryUser = BinarySubtype(128)
)

// Binary represents the BSON scalar type binary: an opaque byte string tagged with a subtype.
type Binary struct {
	B       []byte
	Subtype BinarySubtype
}

// SizeBinary returns the size of the encoding of v as BSON Binary in bytes.
func SizeBinary(v Binary) int {
	return len(v.B) + 5
}

// EncodeBinary encodes Binary value v into b.
//
// b must be at least len(v.B)+5 ([SizeBinary]) bytes long; otherwise, EncodeBinary will panic.
func EncodeBinary(b []byte, v Binary) {
	n := len(v.B)

	binary.LittleEndian.PutUint32(b, uint32(n))
	b[4] = byte(v.Subtype)
	copy(b[5:5+n], v.B)
}

// DecodeBinary decodes a Binary value from b.
//
// If there is not enough bytes, DecodeBinary returns a wrapped [ErrDecodeShortInput].
func DecodeBinary(b []byte) (Binary, error) {
	var res Binary

	if len(b) < 5 {
		return res, fmt.Errorf("DecodeBinary: expected at least 5 bytes, got %d: %w", len(b), ErrDecodeShortInput)
	}

	n := int(binary.LittleEndian.Uint32(b))
	if e := 5 + n; len(b) < e {
		return res, fmt.Errorf("DecodeBinary: expected at least %d bytes, got %d: %w", e, len(b), ErrDecodeShortInput)
	}

	res.Subtype = BinarySubtype(b[4])
	res.B = make([]byte, n)
	copy(res.B, b[5:5+n])

	return res, nil
}
