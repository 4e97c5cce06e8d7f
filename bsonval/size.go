package bsonval

import (
	"strconv"

	"example.com/lagoondb/mql/bsonproto"
)

// sizeDocument returns the on-wire size of doc, including the 4-byte length
// prefix and the trailing EOO byte (spec.md §4.2).
func sizeDocument(doc *Document) int {
	size := bsonproto.SizeInt32 + 1

	for _, e := range doc.elements {
		size += sizeElement(e.Name, e.Value)
	}

	return size
}

// sizeArray returns the on-wire size of arr; arrays are encoded identically
// to documents, with decimal string indices as field names.
func sizeArray(arr *Array) int {
	size := bsonproto.SizeInt32 + 1

	for i, v := range arr.values {
		size += sizeElement(strconv.Itoa(i), v)
	}

	return size
}

// sizeElement returns the size of one (tag, fieldName, payload) triple.
func sizeElement(name string, v Value) int {
	return 1 + bsonproto.SizeCString(name) + sizeValue(v)
}

func sizeValue(v Value) int {
	switch v.tag {
	case TagMinKey, TagMaxKey, TagEOO, TagNull, TagUndefined:
		return 0
	case TagNumber:
		return bsonproto.SizeFloat64
	case TagString:
		return bsonproto.SizeString(v.payload.(string))
	case TagDocument:
		return sizeDocument(v.payload.(*Document))
	case TagArray:
		return sizeArray(v.payload.(*Array))
	case TagBinary:
		return bsonproto.SizeBinary(v.payload.(bsonproto.Binary))
	case TagObjectID:
		return bsonproto.SizeObjectID
	case TagBoolean:
		return bsonproto.SizeBool
	case TagDatetime:
		return bsonproto.SizeInt64
	case TagRegex:
		return bsonproto.SizeRegex(v.payload.(bsonproto.Regex))
	case TagInt32:
		return bsonproto.SizeInt32
	case TagTimestamp:
		return bsonproto.SizeTimestamp
	case TagInt64:
		return bsonproto.SizeInt64
	case TagDecimal128:
		return bsonproto.SizeDecimal128
	default:
		return 0
	}
}
