package bsonval

import (
	"iter"

	"example.com/lagoondb/mql/internal/util/lazyerrors"
)

// Document is an ordered sequence of [Element]s (spec.md §3).
//
// Field names need not be unique; duplicates are preserved on decode and by
// [Document.Add] because the reference server does the same (spec.md §9:
// "the codec accepts and preserves duplicate field names"). [Document.Get]
// returns the first match, matching server lookup semantics.
//
// A Document is immutable once constructed by the codec or by
// [DocumentFromPairs]/[DocumentFromMap]; nothing in this package mutates a
// published Document.
type Document struct {
	elements []Element
}

// NewDocument creates a new, empty Document with the given capacity hint.
func NewDocument(cap int) *Document {
	return &Document{elements: make([]Element, 0, cap)}
}

// DocumentFromPairs builds a Document from alternating field name / literal
// pairs, in order, converting each literal with [ValueOf].
func DocumentFromPairs(pairs ...any) (*Document, error) {
	if len(pairs)%2 != 0 {
		return nil, lazyerrors.Errorf("odd number of arguments: %d", len(pairs))
	}

	doc := NewDocument(len(pairs) / 2)

	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			return nil, lazyerrors.Errorf("argument %d: expected field name string, got %T", i, pairs[i])
		}

		v, err := ValueOf(pairs[i+1])
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		doc.append(name, v)
	}

	return doc, nil
}

// MustDocumentFromPairs is a variant of [DocumentFromPairs] that panics on error.
func MustDocumentFromPairs(pairs ...any) *Document {
	doc, err := DocumentFromPairs(pairs...)
	if err != nil {
		panic(err)
	}

	return doc
}

// DocumentFromMap builds a Document from a map, in Go's (randomized)
// range order — callers that need a stable field order should use
// [DocumentFromPairs] instead.
func DocumentFromMap(m map[string]any) (*Document, error) {
	doc := NewDocument(len(m))

	for k, v := range m {
		val, err := ValueOf(v)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		doc.append(k, val)
	}

	return doc, nil
}

func (doc *Document) append(name string, v Value) {
	doc.elements = append(doc.elements, NewElement(name, v))
}

// Add appends a new field to the end of the Document.
func (doc *Document) Add(name string, v Value) {
	doc.append(name, v)
}

// Len returns the number of elements in the Document.
func (doc *Document) Len() int {
	return len(doc.elements)
}

// Get returns the value of the first field named name, or the EOO sentinel
// if no such field exists.
func (doc *Document) Get(name string) Value {
	for _, e := range doc.elements {
		if e.Name == name {
			return e.Value
		}
	}

	return Missing()
}

// GetElement returns the first Element named name, or the "missing" sentinel
// Element if no such field exists.
func (doc *Document) GetElement(name string) Element {
	for _, e := range doc.elements {
		if e.Name == name {
			return e
		}
	}

	return MissingElement()
}

// Has reports whether the Document has a field named name.
func (doc *Document) Has(name string) bool {
	return !doc.GetElement(name).IsMissing()
}

// ElementAt returns the element at position i (0 <= i < doc.Len()).
func (doc *Document) ElementAt(i int) Element {
	return doc.elements[i]
}

// All returns an iterator over the Document's elements in order.
func (doc *Document) All() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for _, e := range doc.elements {
			if !yield(e) {
				return
			}
		}
	}
}

// FieldNames returns the Document's field names in order; duplicates appear
// more than once.
func (doc *Document) FieldNames() []string {
	names := make([]string, len(doc.elements))
	for i, e := range doc.elements {
		names[i] = e.Name
	}

	return names
}

// Equal reports whether doc and other have the same elements in the same
// order: equal (fieldName, tag, payload) triples at every position,
// duplicates included (spec.md §8 round-trip property).
func (doc *Document) Equal(other *Document) bool {
	if doc == nil || other == nil {
		return doc == other
	}

	if len(doc.elements) != len(other.elements) {
		return false
	}

	for i, e := range doc.elements {
		o := other.elements[i]
		if e.Name != o.Name || !valueEqual(e.Value, o.Value) {
			return false
		}
	}

	return true
}
