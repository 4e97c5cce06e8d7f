package bsonval

import (
	"encoding/binary"
	"time"

	"example.com/lagoondb/mql/bsonproto"
	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// DecodeDocument decodes a single BSON document from the front of b and
// returns it along with the remaining, unconsumed bytes (spec.md §4.2), so
// callers can stream multiple documents back to back.
func DecodeDocument(b []byte) (*Document, []byte, error) {
	size, err := declaredSize(b)
	if err != nil {
		return nil, nil, err
	}

	doc := NewDocument(0)

	pos := bsonproto.SizeInt32
	for {
		if pos >= size {
			return nil, nil, lazyerrors.Errorf("document missing trailing EOO: %w", bsonproto.ErrDecodeInvalidInput)
		}

		t := Tag(int8(b[pos]))
		if t == TagEOO {
			pos++
			break
		}

		name, n, v, err := decodeElement(b[pos+1:], t)
		if err != nil {
			return nil, nil, lazyerrors.Errorf("field %d: %w", doc.Len(), err)
		}

		doc.append(name, v)
		pos += 1 + n
	}

	if pos != size {
		return nil, nil, lazyerrors.Errorf(
			"declared size %d does not match consumed %d bytes: %w", size, pos, bsonproto.ErrDecodeInvalidInput,
		)
	}

	return doc, b[size:], nil
}

// DecodeArray decodes a single BSON array from the front of b; arrays are
// framed identically to documents.
func DecodeArray(b []byte) (*Array, []byte, error) {
	doc, rest, err := DecodeDocument(b)
	if err != nil {
		return nil, nil, err
	}

	arr := NewArray(doc.Len())
	for e := range doc.All() {
		arr.Add(e.Value)
	}

	return arr, rest, nil
}

func declaredSize(b []byte) (int, error) {
	if len(b) < bsonproto.SizeInt32+1 {
		return 0, lazyerrors.Errorf("len(b) = %d: %w", len(b), bsonproto.ErrDecodeShortInput)
	}

	size := int(binary.LittleEndian.Uint32(b))
	if size < bsonproto.SizeInt32+1 {
		return 0, lazyerrors.Errorf("declared size %d too small: %w", size, bsonproto.ErrDecodeInvalidInput)
	}

	if len(b) < size {
		return 0, lazyerrors.Errorf("declared size %d, got %d bytes: %w", size, len(b), bsonproto.ErrDecodeShortInput)
	}

	if b[size-1] != 0 {
		return 0, lazyerrors.Errorf("invalid last byte: %w", bsonproto.ErrDecodeInvalidInput)
	}

	return size, nil
}

// decodeElement decodes a cstring field name followed by a tag-dispatched
// payload from b, returning the name, the number of bytes consumed
// (name + payload), and the decoded value.
func decodeElement(b []byte, t Tag) (string, int, Value, error) {
	name, err := bsonproto.DecodeCString(b)
	if err != nil {
		return "", 0, Value{}, lazyerrors.Error(err)
	}

	nameSize := bsonproto.SizeCString(name)

	v, payloadSize, err := decodeValue(b[nameSize:], t)
	if err != nil {
		return "", 0, Value{}, lazyerrors.Error(err)
	}

	return name, nameSize + payloadSize, v, nil
}

// decodeValue is the tag dispatch table for scalar and composite payloads.
func decodeValue(b []byte, t Tag) (Value, int, error) {
	switch t {
	case TagMinKey:
		return MinKey(), 0, nil
	case TagMaxKey:
		return MaxKey(), 0, nil
	case TagNull:
		return Null(), 0, nil
	case TagUndefined:
		return Undefined(), 0, nil

	case TagNumber:
		f, err := bsonproto.DecodeFloat64(b)
		return NumberValue(f), bsonproto.SizeFloat64, err

	case TagString:
		s, err := bsonproto.DecodeString(b)
		if err != nil {
			return Value{}, 0, err
		}

		return StringValue(s), bsonproto.SizeString(s), nil

	case TagDocument:
		doc, rest, err := DecodeDocument(b)
		if err != nil {
			return Value{}, 0, err
		}

		return DocumentValue(doc), len(b) - len(rest), nil

	case TagArray:
		arr, rest, err := DecodeArray(b)
		if err != nil {
			return Value{}, 0, err
		}

		return ArrayValue(arr), len(b) - len(rest), nil

	case TagBinary:
		bin, err := bsonproto.DecodeBinary(b)
		if err != nil {
			return Value{}, 0, err
		}

		return BinaryValue(bin), bsonproto.SizeBinary(bin), nil

	case TagObjectID:
		oid, err := bsonproto.DecodeObjectID(b)
		return ObjectIDValue(oid), bsonproto.SizeObjectID, err

	case TagBoolean:
		bl, err := bsonproto.DecodeBool(b)
		return BooleanValue(bl), bsonproto.SizeBool, err

	case TagDatetime:
		ms, err := bsonproto.DecodeInt64(b)
		if err != nil {
			return Value{}, 0, err
		}

		return DatetimeValue(time.UnixMilli(ms).UTC()), bsonproto.SizeInt64, nil

	case TagRegex:
		re, err := bsonproto.DecodeRegex(b)
		if err != nil {
			return Value{}, 0, err
		}

		return RegexValue(re), bsonproto.SizeRegex(re), nil

	case TagInt32:
		i, err := bsonproto.DecodeInt32(b)
		return Int32Value(i), bsonproto.SizeInt32, err

	case TagTimestamp:
		ts, err := bsonproto.DecodeTimestamp(b)
		return TimestampValue(ts), bsonproto.SizeTimestamp, err

	case TagInt64:
		i, err := bsonproto.DecodeInt64(b)
		return Int64Value(i), bsonproto.SizeInt64, err

	case TagDecimal128:
		d, err := bsonproto.DecodeDecimal128(b)
		return Decimal128Value(d), bsonproto.SizeDecimal128, err

	case TagDBRef, TagCode, TagSymbol, TagCodeWS:
		return Value{}, 0, lazyerrors.Errorf("unsupported tag %s: %w", t, bsonproto.ErrDecodeInvalidInput)

	default:
		return Value{}, 0, lazyerrors.Errorf("unexpected tag %s: %w", t, bsonproto.ErrDecodeInvalidInput)
	}
}
