// Package match implements MongoDB-style match-expression parsing and
// evaluation against the bsonval Value Model: a query document such as
// {"a.b": {"$gt": 1}} is parsed into an AST and then evaluated against a
// Document by walking its field paths.
package match

import "strings"

// Path is a dotted field path, split into segments on "." (spec.md §4.3).
// A segment is never normalised: it may be any non-empty string, including
// one that looks like a decimal integer — §4.6 (iterArray) gives digit
// segments special array-offset meaning only when walking an Array.
type Path struct {
	segments []string
}

// NewPath splits a dotted path string into a Path.
func NewPath(s string) Path {
	return Path{segments: strings.Split(s, ".")}
}

// Empty reports whether the path has no remaining segments.
func (p Path) Empty() bool {
	return len(p.segments) == 0
}

// Head returns the first segment. It panics if the path is empty.
func (p Path) Head() string {
	return p.segments[0]
}

// Tail returns the path with its first segment removed.
func (p Path) Tail() Path {
	if len(p.segments) == 0 {
		return p
	}

	return Path{segments: p.segments[1:]}
}

// String returns the path joined back on ".".
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// Equal reports whether p and other have the same segments.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}

	for i, s := range p.segments {
		if s != other.segments[i] {
			return false
		}
	}

	return true
}
