package bsonval

import (
	"encoding/binary"
	"strconv"
	"time"

	"example.com/lagoondb/mql/bsonproto"
	"example.com/lagoondb/mql/internal/util/lazyerrors"
	"example.com/lagoondb/mql/internal/util/must"
)

// Encode serialises doc to its BSON binary form (spec.md §4.2).
func (doc *Document) Encode() ([]byte, error) {
	must.NotBeZero(doc)

	size := sizeDocument(doc)
	b := make([]byte, size)

	binary.LittleEndian.PutUint32(b, uint32(size))

	pos := bsonproto.SizeInt32
	for _, e := range doc.elements {
		n, err := encodeElement(b[pos:], e.Name, e.Value)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		pos += n
	}

	b[pos] = 0

	return b, nil
}

// Encode serialises arr to its BSON binary form; arrays are encoded
// identically to documents, with decimal string indices as field names.
func (arr *Array) Encode() ([]byte, error) {
	must.NotBeZero(arr)

	size := sizeArray(arr)
	b := make([]byte, size)

	binary.LittleEndian.PutUint32(b, uint32(size))

	pos := bsonproto.SizeInt32
	for i, v := range arr.values {
		n, err := encodeElement(b[pos:], strconv.Itoa(i), v)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		pos += n
	}

	b[pos] = 0

	return b, nil
}

// encodeElement writes one (tag, fieldName, payload) triple into b and
// returns the number of bytes written.
func encodeElement(b []byte, name string, v Value) (int, error) {
	b[0] = byte(v.tag)

	nameSize := bsonproto.SizeCString(name)
	bsonproto.EncodeCString(b[1:], name)

	n, err := encodeValue(b[1+nameSize:], v)
	if err != nil {
		return 0, err
	}

	return 1 + nameSize + n, nil
}

func encodeValue(b []byte, v Value) (int, error) {
	switch v.tag {
	case TagMinKey, TagMaxKey, TagEOO, TagNull, TagUndefined:
		return 0, nil

	case TagNumber:
		bsonproto.EncodeFloat64(b, v.payload.(float64))
		return bsonproto.SizeFloat64, nil

	case TagString:
		s := v.payload.(string)
		bsonproto.EncodeString(b, s)

		return bsonproto.SizeString(s), nil

	case TagDocument:
		enc, err := v.payload.(*Document).Encode()
		if err != nil {
			return 0, lazyerrors.Error(err)
		}

		copy(b, enc)

		return len(enc), nil

	case TagArray:
		enc, err := v.payload.(*Array).Encode()
		if err != nil {
			return 0, lazyerrors.Error(err)
		}

		copy(b, enc)

		return len(enc), nil

	case TagBinary:
		bin := v.payload.(bsonproto.Binary)
		bsonproto.EncodeBinary(b, bin)

		return bsonproto.SizeBinary(bin), nil

	case TagObjectID:
		bsonproto.EncodeObjectID(b, v.payload.(bsonproto.ObjectID))
		return bsonproto.SizeObjectID, nil

	case TagBoolean:
		bsonproto.EncodeBool(b, v.payload.(bool))
		return bsonproto.SizeBool, nil

	case TagDatetime:
		bsonproto.EncodeInt64(b, v.payload.(time.Time).UnixMilli())
		return bsonproto.SizeInt64, nil

	case TagRegex:
		re := v.payload.(bsonproto.Regex)
		bsonproto.EncodeRegex(b, re)

		return bsonproto.SizeRegex(re), nil

	case TagInt32:
		bsonproto.EncodeInt32(b, v.payload.(int32))
		return bsonproto.SizeInt32, nil

	case TagTimestamp:
		bsonproto.EncodeTimestamp(b, v.payload.(bsonproto.Timestamp))
		return bsonproto.SizeTimestamp, nil

	case TagInt64:
		bsonproto.EncodeInt64(b, v.payload.(int64))
		return bsonproto.SizeInt64, nil

	case TagDecimal128:
		bsonproto.EncodeDecimal128(b, v.payload.(bsonproto.Decimal128))
		return bsonproto.SizeDecimal128, nil

	default:
		return 0, lazyerrors.Errorf("cannot encode tag %s", v.tag)
	}
}
