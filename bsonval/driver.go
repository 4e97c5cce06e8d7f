package bsonval

import (
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"example.com/lagoondb/mql/bsonproto"
	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// toDriver converts a Value into a go.mongodb.org/mongo-driver v2 value
// (bson.D, bson.A, or a scalar), so it can be marshaled with
// [bson.MarshalExtJSON] instead of a hand-rolled JSON encoder.
func toDriver(v Value) (any, error) {
	switch v.tag {
	case TagMinKey, TagMaxKey, TagEOO:
		return nil, lazyerrors.Errorf("cannot represent %s as Extended JSON", v.tag)

	case TagNull:
		return bson.Null{}, nil

	case TagUndefined:
		return bson.Undefined{}, nil

	case TagNumber, TagString, TagBoolean, TagInt32, TagInt64:
		return v.payload, nil

	case TagDocument:
		return documentToDriver(v.payload.(*Document))

	case TagArray:
		return arrayToDriver(v.payload.(*Array))

	case TagBinary:
		bin := v.payload.(bsonproto.Binary)
		return bson.Binary{Subtype: byte(bin.Subtype), Data: slices.Clip(slices.Clone(bin.B))}, nil

	case TagObjectID:
		return v.payload.(bsonproto.ObjectID), nil

	case TagDatetime:
		return bson.NewDateTimeFromTime(v.payload.(time.Time)), nil

	case TagRegex:
		re := v.payload.(bsonproto.Regex)
		return bson.Regex{Pattern: re.Pattern, Options: re.Options}, nil

	case TagTimestamp:
		ts := v.payload.(bsonproto.Timestamp)
		return bson.Timestamp{T: ts.T(), I: ts.I()}, nil

	case TagDecimal128:
		return v.payload.(bsonproto.Decimal128), nil

	default:
		return nil, lazyerrors.Errorf("invalid BSON tag %s", v.tag)
	}
}

func documentToDriver(doc *Document) (bson.D, error) {
	d := make(bson.D, 0, doc.Len())

	for _, e := range doc.elements {
		val, err := toDriver(e.Value)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		d = append(d, bson.E{Key: e.Name, Value: val})
	}

	return d, nil
}

func arrayToDriver(arr *Array) (bson.A, error) {
	a := make(bson.A, arr.Len())

	for i, v := range arr.values {
		val, err := toDriver(v)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		a[i] = val
	}

	return a, nil
}
