package bsonval

import (
	"math"
	"time"

	"example.com/lagoondb/mql/bsonproto"
)

// Equal reports whether v and other are equal BSON values: same tag and
// same payload. Unlike the comparison operators used by match expressions,
// this is strict type equality, used for round-trip/test assertions
// (spec.md §8) and for AST structural equality (match.Equal) — it is not
// the match-expression equality operator, which allows cross-type numeric
// equality (see Compare).
func (v Value) Equal(other Value) bool {
	return valueEqual(v, other)
}

func valueEqual(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}

	switch a.tag {
	case TagEOO, TagNull, TagUndefined, TagMinKey, TagMaxKey:
		return true

	case TagNumber:
		x, y := a.payload.(float64), b.payload.(float64)
		if math.IsNaN(x) || math.IsNaN(y) {
			return math.IsNaN(x) && math.IsNaN(y)
		}

		return x == y

	case TagString:
		return a.payload.(string) == b.payload.(string)

	case TagDocument:
		return a.payload.(*Document).Equal(b.payload.(*Document))

	case TagArray:
		return a.payload.(*Array).Equal(b.payload.(*Array))

	case TagBinary:
		x, y := a.payload.(bsonproto.Binary), b.payload.(bsonproto.Binary)
		return x.Subtype == y.Subtype && string(x.B) == string(y.B)

	case TagObjectID:
		return a.payload.(bsonproto.ObjectID) == b.payload.(bsonproto.ObjectID)

	case TagBoolean:
		return a.payload.(bool) == b.payload.(bool)

	case TagDatetime:
		return a.payload.(time.Time).Equal(b.payload.(time.Time))

	case TagRegex:
		x, y := a.payload.(bsonproto.Regex), b.payload.(bsonproto.Regex)
		return x == y

	case TagInt32:
		return a.payload.(int32) == b.payload.(int32)

	case TagTimestamp:
		return a.payload.(bsonproto.Timestamp) == b.payload.(bsonproto.Timestamp)

	case TagInt64:
		return a.payload.(int64) == b.payload.(int64)

	case TagDecimal128:
		x, y := a.payload.(bsonproto.Decimal128), b.payload.(bsonproto.Decimal128)
		xh, xl := x.GetBytes()
		yh, yl := y.GetBytes()

		return xh == yh && xl == yl

	default:
		return false
	}
}
