package bsonval

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// MarshalJSON implements [json.Marshaler] by encoding doc's Canonical
// Extended JSON v2 representation, preserving field order.
func (doc *Document) MarshalJSON() ([]byte, error) {
	d, err := documentToDriver(doc)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	b, err := bson.MarshalExtJSON(d, true, false)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return b, nil
}

// MarshalJSON implements [json.Marshaler] by encoding arr's Canonical
// Extended JSON v2 representation.
func (arr *Array) MarshalJSON() ([]byte, error) {
	a, err := arrayToDriver(arr)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	b, err := bson.MarshalExtJSON(a, true, false)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return b, nil
}
