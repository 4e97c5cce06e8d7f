package bsonproto

import "fmt"

// Regex represents the BSON scalar type regular expression.
//
// Its matching semantics are out of scope for this module (spec.md §1,
// §4.6): it is recognized and round-trips, but is never evaluated against
// a document.
type Regex struct {
	Pattern string
	Options string
}

// SizeRegex returns the size of the encoding of v as BSON Regex in bytes.
func SizeRegex(v Regex) int {
	return len(v.Pattern) + len(v.Options) + 2
}

// EncodeRegex encodes Regex value v into b.
//
// b must be at least len(v.Pattern)+len(v.Options)+2 ([SizeRegex]) bytes long;
// otherwise, EncodeRegex will panic.
func EncodeRegex(b []byte, v Regex) {
	b[len(v.Pattern)+len(v.Options)+1] = 0

	copy(b, v.Pattern)
	b[len(v.Pattern)] = 0
	copy(b[len(v.Pattern)+1:], v.Options)
}

// DecodeRegex decodes a Regex value from b.
//
// If there is not enough bytes, DecodeRegex returns a wrapped [ErrDecodeShortInput].
func DecodeRegex(b []byte) (Regex, error) {
	var res Regex

	if len(b) < 2 {
		return res, fmt.Errorf("DecodeRegex: expected at least 2 bytes, got %d: %w", len(b), ErrDecodeShortInput)
	}

	p, o := -1, -1
	for i, c := range b {
		if c != 0 {
			continue
		}

		if p == -1 {
			p = i
			continue
		}

		o = i
		break
	}

	if o == -1 {
		return res, fmt.Errorf("DecodeRegex: expected two NUL-terminated strings: %w", ErrDecodeShortInput)
	}

	res.Pattern = string(b[:p])
	res.Options = string(b[p+1 : o])

	return res, nil
}
