package bsonval

// Element is a (fieldName, Value) pair, the unit stored inside a Document or
// Array (spec.md §3). Elements are immutable once constructed.
type Element struct {
	Name  string
	Value Value
}

// NewElement constructs an Element.
func NewElement(name string, v Value) Element {
	return Element{Name: name, Value: v}
}

// MissingElement returns the sentinel Element used when a lookup fails: an
// empty field name and the EOO value.
func MissingElement() Element {
	return Element{Value: Missing()}
}

// IsMissing reports whether e is the "not found" sentinel.
func (e Element) IsMissing() bool {
	return e.Value.IsMissing()
}
