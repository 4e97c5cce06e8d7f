package bsonval

import "fmt"

// Tag identifies the BSON type of a [Value]. Numeric codes are fixed by the
// on-wire format (spec.md §3) and must not be renumbered.
type Tag int8

const (
	// TagMinKey sorts before every other BSON value.
	TagMinKey Tag = -1

	// TagEOO (End-Of-Object) terminates a document on the wire, and is also
	// used by this package as the "missing field" sentinel during path
	// traversal: it is never a value a caller constructs directly.
	TagEOO Tag = 0

	// TagNumber is a 64-bit IEEE-754 double.
	TagNumber Tag = 1

	// TagString is a UTF-8 string.
	TagString Tag = 2

	// TagDocument is an ordered Element sequence addressed by field name.
	TagDocument Tag = 3

	// TagArray is an ordered Element sequence addressed by decimal index.
	TagArray Tag = 4

	// TagBinary is an opaque, subtyped byte string.
	TagBinary Tag = 5

	// TagUndefined is the deprecated BSON undefined type.
	TagUndefined Tag = 6

	// TagObjectID is a 12-byte ObjectID.
	TagObjectID Tag = 7

	// TagBoolean is a boolean.
	TagBoolean Tag = 8

	// TagDatetime is a UTC milliseconds-since-epoch timestamp.
	TagDatetime Tag = 9

	// TagNull is an explicit null value, distinct from [TagEOO].
	TagNull Tag = 10

	// TagRegex is a regular expression (pattern + options); recognized but never evaluated.
	TagRegex Tag = 11

	// TagDBRef is the deprecated DBPointer wire type. Its code is recognized,
	// but its payload is not decoded: decoding it fails as an unsupported tag.
	// The $ref/$id DBRef document shape the match parser special-cases is an
	// ordinary Document and does not use this tag.
	TagDBRef Tag = 12

	// TagCode is JavaScript code.
	TagCode Tag = 13

	// TagSymbol is the deprecated symbol type.
	TagSymbol Tag = 14

	// TagCodeWS is JavaScript code with scope.
	TagCodeWS Tag = 15

	// TagInt32 is a 32-bit signed integer.
	TagInt32 Tag = 16

	// TagTimestamp is the internal MongoDB replication timestamp type.
	TagTimestamp Tag = 17

	// TagInt64 is a 64-bit signed integer.
	TagInt64 Tag = 18

	// TagDecimal128 is an IEEE-754 128-bit decimal.
	TagDecimal128 Tag = 19

	// TagMaxKey sorts after every other BSON value.
	TagMaxKey Tag = 127
)

// String returns a human-readable name for the tag, used in error messages and logs.
func (t Tag) String() string {
	switch t {
	case TagMinKey:
		return "minKey"
	case TagEOO:
		return "eoo"
	case TagNumber:
		return "number"
	case TagString:
		return "string"
	case TagDocument:
		return "document"
	case TagArray:
		return "array"
	case TagBinary:
		return "binData"
	case TagUndefined:
		return "undefined"
	case TagObjectID:
		return "objectId"
	case TagBoolean:
		return "bool"
	case TagDatetime:
		return "date"
	case TagNull:
		return "null"
	case TagRegex:
		return "regex"
	case TagDBRef:
		return "dbPointer"
	case TagCode:
		return "javascript"
	case TagSymbol:
		return "symbol"
	case TagCodeWS:
		return "javascriptWithScope"
	case TagInt32:
		return "int"
	case TagTimestamp:
		return "timestamp"
	case TagInt64:
		return "long"
	case TagDecimal128:
		return "decimal"
	case TagMaxKey:
		return "maxKey"
	default:
		return fmt.Sprintf("tag(%d)", int8(t))
	}
}

// numeric reports whether t is one of the numeric tags EQ/LT/.../GTE compare by value.
func (t Tag) numeric() bool {
	return t == TagNumber || t == TagInt32 || t == TagInt64
}
