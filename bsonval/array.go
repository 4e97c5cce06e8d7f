package bsonval

import (
	"iter"
	"strconv"

	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// Array is an ordered Element sequence whose field names are the decimal
// string indices "0", "1", … (spec.md §3). On the wire it is represented
// identically to a Document; only the tag differs.
type Array struct {
	values []Value
}

// NewArray creates a new, empty Array with the given capacity hint.
func NewArray(cap int) *Array {
	return &Array{values: make([]Value, 0, cap)}
}

// ArrayFromSlice builds an Array from a slice of literals, converting each
// with [ValueOf].
func ArrayFromSlice(values []any) (*Array, error) {
	arr := NewArray(len(values))

	for i, lit := range values {
		v, err := ValueOf(lit)
		if err != nil {
			return nil, lazyerrors.Errorf("index %d: %w", i, err)
		}

		arr.values = append(arr.values, v)
	}

	return arr, nil
}

// MustArrayFromSlice is a variant of [ArrayFromSlice] that panics on error.
func MustArrayFromSlice(values ...any) *Array {
	arr, err := ArrayFromSlice(values)
	if err != nil {
		panic(err)
	}

	return arr
}

// Len returns the number of values in the Array.
func (arr *Array) Len() int {
	return len(arr.values)
}

// Add appends a value to the end of the Array.
func (arr *Array) Add(v Value) {
	arr.values = append(arr.values, v)
}

// Get returns the value at the given zero-based index, or the EOO sentinel
// if index is out of bounds.
func (arr *Array) Get(index int) Value {
	if index < 0 || index >= len(arr.values) {
		return Missing()
	}

	return arr.values[index]
}

// All returns an iterator over the Array's values in order.
func (arr *Array) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range arr.values {
			if !yield(v) {
				return
			}
		}
	}
}

// AsDocument returns a view of the Array as a Document whose field names are
// the decimal string indices "0", "1", … This is how an Array is presented
// to generic element-sequence code, and mirrors the reference's
// BSONValue.doc() coercion. The path-iteration algorithm in package match
// does not go through it.
func (arr *Array) AsDocument() *Document {
	doc := NewDocument(len(arr.values))

	for i, v := range arr.values {
		doc.append(strconv.Itoa(i), v)
	}

	return doc
}

// Equal reports whether arr and other hold equal values in the same order.
func (arr *Array) Equal(other *Array) bool {
	if arr == nil || other == nil {
		return arr == other
	}

	if len(arr.values) != len(other.values) {
		return false
	}

	for i, v := range arr.values {
		if !valueEqual(v, other.values[i]) {
			return false
		}
	}

	return true
}
