package bsonval

import (
	"fmt"
	"time"

	"example.com/lagoondb/mql/bsonproto"
)

// Value is a tagged BSON value: a [Tag] and a payload whose Go representation
// is determined by that tag (spec.md §3). The zero Value is the EOO sentinel,
// meaning "missing" — it is never a value a document actually stores, only
// the result of a failed lookup.
type Value struct {
	tag     Tag
	payload any
}

// Tag returns the value's BSON type tag.
func (v Value) Tag() Tag {
	return v.tag
}

// IsMissing reports whether v is the EOO "missing field" sentinel.
func (v Value) IsMissing() bool {
	return v.tag == TagEOO
}

// Raw returns the underlying Go payload for v. Its concrete type depends on
// v.Tag(): float64 (Number), string (String), *Document (Document),
// *Array (Array), bsonproto.Binary (Binary), bsonproto.ObjectID (ObjectID),
// bool (Boolean), time.Time (Datetime), bsonproto.Regex (Regex),
// int32 (Int32), bsonproto.Timestamp (Timestamp), int64 (Int64),
// bsonproto.Decimal128 (Decimal128), or nil for EOO/Null/Undefined/MinKey/MaxKey.
func (v Value) Raw() any {
	return v.payload
}

// AsDocument returns v as an element sequence if v is a Document or an Array,
// mirroring the reference implementation's BSONValue.doc() coercion, so
// generic element-sequence code can walk both uniformly. The path-iteration
// code in package match does not use it; it reads Arrays directly.
func (v Value) AsDocument() (*Document, bool) {
	switch v.tag {
	case TagDocument:
		return v.payload.(*Document), true
	case TagArray:
		return v.payload.(*Array).AsDocument(), true
	default:
		return nil, false
	}
}

// Missing returns the EOO sentinel value.
func Missing() Value {
	return Value{tag: TagEOO}
}

// Null returns the BSON null value.
func Null() Value {
	return Value{tag: TagNull}
}

// Undefined returns the BSON undefined value.
func Undefined() Value {
	return Value{tag: TagUndefined}
}

// MinKey returns the BSON MinKey value.
func MinKey() Value {
	return Value{tag: TagMinKey}
}

// MaxKey returns the BSON MaxKey value.
func MaxKey() Value {
	return Value{tag: TagMaxKey}
}

// NumberValue constructs a Number (float64) value.
func NumberValue(v float64) Value { return Value{tag: TagNumber, payload: v} }

// StringValue constructs a String value.
func StringValue(v string) Value { return Value{tag: TagString, payload: v} }

// DocumentValue constructs a Document value.
func DocumentValue(v *Document) Value { return Value{tag: TagDocument, payload: v} }

// ArrayValue constructs an Array value.
func ArrayValue(v *Array) Value { return Value{tag: TagArray, payload: v} }

// BinaryValue constructs a Binary value.
func BinaryValue(v bsonproto.Binary) Value { return Value{tag: TagBinary, payload: v} }

// ObjectIDValue constructs an ObjectID value.
func ObjectIDValue(v bsonproto.ObjectID) Value { return Value{tag: TagObjectID, payload: v} }

// BooleanValue constructs a Boolean value.
func BooleanValue(v bool) Value { return Value{tag: TagBoolean, payload: v} }

// DatetimeValue constructs a Datetime value.
func DatetimeValue(v time.Time) Value { return Value{tag: TagDatetime, payload: v} }

// RegexValue constructs a Regex value.
func RegexValue(v bsonproto.Regex) Value { return Value{tag: TagRegex, payload: v} }

// Int32Value constructs an Int32 value.
func Int32Value(v int32) Value { return Value{tag: TagInt32, payload: v} }

// TimestampValue constructs a Timestamp value.
func TimestampValue(v bsonproto.Timestamp) Value { return Value{tag: TagTimestamp, payload: v} }

// Int64Value constructs an Int64 value.
func Int64Value(v int64) Value { return Value{tag: TagInt64, payload: v} }

// Decimal128Value constructs a Decimal128 value.
func Decimal128Value(v bsonproto.Decimal128) Value { return Value{tag: TagDecimal128, payload: v} }

// ValueOf constructs a Value from a native Go literal, per spec.md §4.1:
//
//   - if tagHint is given, the literal is wrapped as-is under that tag
//   - a Value or *Value is returned as-is
//   - a map[string]any or *Document becomes a Document
//   - a []any or *Array becomes an Array, indexed 0..n-1
//   - an int or int32 becomes Int32, an int64 becomes Int64
//   - a float64 or float32 becomes Number
//   - a bool becomes Boolean, a string becomes String
//   - a time.Time becomes Datetime
//   - a bsonproto Binary, ObjectID, Regex, Timestamp or Decimal128 becomes
//     the value of that type
//   - nil becomes Null
//   - anything else becomes the EOO ("missing") sentinel
func ValueOf(literal any, tagHint ...Tag) (Value, error) {
	if len(tagHint) > 0 {
		return Value{tag: tagHint[0], payload: literal}, nil
	}

	switch lit := literal.(type) {
	case Value:
		return lit, nil
	case *Value:
		return *lit, nil
	case *Document:
		return DocumentValue(lit), nil
	case *Array:
		return ArrayValue(lit), nil
	case map[string]any:
		doc, err := DocumentFromMap(lit)
		if err != nil {
			return Value{}, err
		}

		return DocumentValue(doc), nil
	case []any:
		arr, err := ArrayFromSlice(lit)
		if err != nil {
			return Value{}, err
		}

		return ArrayValue(arr), nil
	case int:
		return Int32Value(int32(lit)), nil
	case int32:
		return Int32Value(lit), nil
	case int64:
		return Int64Value(lit), nil
	case float64:
		return NumberValue(lit), nil
	case float32:
		return NumberValue(float64(lit)), nil
	case bool:
		return BooleanValue(lit), nil
	case string:
		return StringValue(lit), nil
	case time.Time:
		return DatetimeValue(lit), nil
	case bsonproto.Binary:
		return BinaryValue(lit), nil
	case bsonproto.ObjectID:
		return ObjectIDValue(lit), nil
	case bsonproto.Regex:
		return RegexValue(lit), nil
	case bsonproto.Timestamp:
		return TimestampValue(lit), nil
	case bsonproto.Decimal128:
		return Decimal128Value(lit), nil
	case nil:
		return Null(), nil
	default:
		return Missing(), nil
	}
}

// MustValueOf is a variant of [ValueOf] that panics on error.
func MustValueOf(literal any, tagHint ...Tag) Value {
	v, err := ValueOf(literal, tagHint...)
	if err != nil {
		panic(err)
	}

	return v
}

// String returns a debug representation of v; it is not a BSON encoding.
func (v Value) String() string {
	if v.tag == TagEOO {
		return "<missing>"
	}

	return fmt.Sprintf("%s(%v)", v.tag, v.payload)
}
