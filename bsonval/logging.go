package bsonval

import (
	"encoding/hex"
	"log/slog"
	"math"
	"strconv"
	"time"

	"example.com/lagoondb/mql/bsonproto"
)

// logMaxDepth bounds the depth of a recursive slog representation, so a
// cyclic or pathologically deep value can't hang a logging call.
const logMaxDepth = 20

// LogValue implements [slog.LogValuer] for Document, producing a compact
// representation suitable for function parameters in log lines. Some
// information is lost: Int32 and Int64 values both render as plain numbers.
func (doc *Document) LogValue() slog.Value {
	return logValue(DocumentValue(doc), 1)
}

// LogValue implements [slog.LogValuer] for Array.
func (arr *Array) LogValue() slog.Value {
	return logValue(ArrayValue(arr), 1)
}

func logValue(v Value, depth int) slog.Value {
	switch v.tag {
	case TagDocument:
		doc := v.payload.(*Document)
		if depth > logMaxDepth {
			return slog.StringValue("Document<...>")
		}

		attrs := make([]slog.Attr, doc.Len())
		for i, e := range doc.elements {
			attrs[i] = slog.Attr{Key: e.Name, Value: logValue(e.Value, depth+1)}
		}

		return slog.GroupValue(attrs...)

	case TagArray:
		arr := v.payload.(*Array)
		if depth > logMaxDepth {
			return slog.StringValue("Array<...>")
		}

		attrs := make([]slog.Attr, arr.Len())
		for i, ev := range arr.values {
			attrs[i] = slog.Attr{Key: strconv.Itoa(i), Value: logValue(ev, depth+1)}
		}

		return slog.GroupValue(attrs...)

	case TagNumber:
		f := v.payload.(float64)

		switch {
		case math.IsNaN(f):
			return slog.StringValue("NaN")
		case math.IsInf(f, 1):
			return slog.StringValue("+Inf")
		case math.IsInf(f, -1):
			return slog.StringValue("-Inf")
		}

		return slog.Float64Value(f)

	case TagString:
		return slog.StringValue(v.payload.(string))

	case TagObjectID:
		oid := v.payload.(bsonproto.ObjectID)
		return slog.StringValue("ObjectID(" + hex.EncodeToString(oid[:]) + ")")

	case TagBoolean:
		return slog.BoolValue(v.payload.(bool))

	case TagDatetime:
		return slog.TimeValue(v.payload.(time.Time).Truncate(time.Millisecond).UTC())

	case TagInt32:
		return slog.Int64Value(int64(v.payload.(int32)))

	case TagInt64:
		return slog.Int64Value(v.payload.(int64))

	case TagNull:
		return slog.StringValue("null")

	case TagUndefined:
		return slog.StringValue("undefined")

	case TagMinKey:
		return slog.StringValue("MinKey")

	case TagMaxKey:
		return slog.StringValue("MaxKey")

	case TagEOO:
		return slog.StringValue("<missing>")

	default:
		return slog.StringValue(v.tag.String())
	}
}
