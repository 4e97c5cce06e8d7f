package match

import (
	"strconv"

	"example.com/lagoondb/mql/bsonval"
)

// Matches reports whether expr matches doc (spec.md §4.6 matches(ast, document)).
// The evaluator never fails: an operator given incomparable, unsupported, or
// structurally invalid arguments simply returns false (spec.md §7). Parse-time
// validation is the only gate.
func Matches(expr Expression, doc *bsonval.Document) bool {
	switch e := expr.(type) {
	case PathMatch:
		root := bsonval.NewElement("", bsonval.DocumentValue(doc))

		for _, leaf := range iterPath(e.Path, root) {
			if evalPredicate(e.Predicate, leaf) {
				return true
			}
		}

		return false

	case Tree:
		return evalTree(e, doc)

	case Not:
		return !Matches(e.Inner, doc)

	default:
		return false
	}
}

func evalTree(t Tree, doc *bsonval.Document) bool {
	switch t.Operator {
	case TreeAnd:
		for _, c := range t.Children {
			if !Matches(c, doc) {
				return false
			}
		}

		return true

	case TreeOr:
		for _, c := range t.Children {
			if Matches(c, doc) {
				return true
			}
		}

		return false

	case TreeNor:
		for _, c := range t.Children {
			if Matches(c, doc) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// iterPath yields the leaf elements a Predicate applies to when walking path
// from root (spec.md §4.6, the central evaluation algorithm).
func iterPath(path Path, elem bsonval.Element) []bsonval.Element {
	if elem.Value.IsMissing() {
		return nil
	}

	if path.Empty() {
		return terminalElements(elem)
	}

	if elem.Value.Tag() != bsonval.TagDocument && elem.Value.Tag() != bsonval.TagArray {
		return nil
	}

	for !path.Empty() && elem.Value.Tag() == bsonval.TagDocument {
		doc := elem.Value.Raw().(*bsonval.Document)
		elem = doc.GetElement(path.Head())
		path = path.Tail()

		if elem.Value.IsMissing() {
			return nil
		}
	}

	if path.Empty() {
		return terminalElements(elem)
	}

	// We should have arrived at an array here; a scalar found mid-path with
	// segments remaining is returned as-is rather than descended into.
	if elem.Value.Tag() != bsonval.TagArray {
		return []bsonval.Element{elem}
	}

	return iterArray(path, elem)
}

// terminalElements implements the terminal-position rule shared by iterPath
// steps 2/3/6: an Array unwinds into its elements, anything else is the sole
// leaf.
func terminalElements(elem bsonval.Element) []bsonval.Element {
	if elem.Value.Tag() != bsonval.TagArray {
		return []bsonval.Element{elem}
	}

	arr := elem.Value.Raw().(*bsonval.Array)
	result := make([]bsonval.Element, 0, arr.Len())

	for i := 0; i < arr.Len(); i++ {
		result = append(result, bsonval.NewElement(strconv.Itoa(i), arr.Get(i)))
	}

	return result
}

// iterArray handles path traversal once the current element is known to be
// an Array (spec.md §4.6 iterArray).
func iterArray(path Path, arrElem bsonval.Element) []bsonval.Element {
	if arrElem.Value.Tag() != bsonval.TagArray {
		return nil
	}

	arr := arrElem.Value.Raw().(*bsonval.Array)
	head := path.Head()
	rest := path.Tail()

	if idx, ok := decimalIndex(head); ok {
		child := arr.Get(idx)
		if child.IsMissing() {
			return nil
		}

		childElem := bsonval.NewElement(head, child)

		if rest.Empty() {
			return []bsonval.Element{childElem}
		}

		switch child.Tag() {
		case bsonval.TagDocument:
			return iterPath(rest, childElem)

		case bsonval.TagArray:
			inner := child.Raw().(*bsonval.Array)
			var result []bsonval.Element

			for i := 0; i < inner.Len(); i++ {
				e := bsonval.NewElement(strconv.Itoa(i), inner.Get(i))
				result = append(result, iterArray(rest, e)...)
			}

			return result

		default:
			return nil
		}
	}

	var result []bsonval.Element

	for i := 0; i < arr.Len(); i++ {
		v := arr.Get(i)
		if v.Tag() != bsonval.TagDocument {
			continue
		}

		e := bsonval.NewElement(strconv.Itoa(i), v)
		result = append(result, iterPath(path, e)...)
	}

	return result
}

// decimalIndex reports whether s is a non-negative decimal integer, and
// its value, per spec.md §4.6's digit-head array-offset rule.
func decimalIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	n := 0

	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}

		n = n*10 + int(c-'0')
	}

	return n, true
}

// evalPredicate applies a Predicate's operator callback to a leaf element
// (spec.md §4.6).
func evalPredicate(p Predicate, elem bsonval.Element) bool {
	argElem := bsonval.NewElement("", p.Argument)

	switch p.Operator {
	case OpEQ:
		cmp, ok := bsonval.Compare(elem, argElem)
		return ok && cmp == 0

	case OpLT:
		cmp, ok := bsonval.Compare(elem, argElem)
		return ok && cmp < 0

	case OpLTE:
		cmp, ok := bsonval.Compare(elem, argElem)
		return ok && cmp <= 0

	case OpGT:
		cmp, ok := bsonval.Compare(elem, argElem)
		return ok && cmp > 0

	case OpGTE:
		cmp, ok := bsonval.Compare(elem, argElem)
		return ok && cmp >= 0

	case OpIN:
		return evalIn(elem, p.Argument)

	case OpNIN:
		return !evalIn(elem, p.Argument)

	case OpRegex, OpNear, OpNearSphere, OpGeoNear:
		return false

	default:
		return false
	}
}

// evalIn implements $in: true iff any array element compares equal to elem,
// with EOO (missing) treated as matching a Null array element. Regex
// elements inside the array are recognized but never match (spec.md §4.6).
func evalIn(elem bsonval.Element, arg bsonval.Value) bool {
	if arg.Tag() != bsonval.TagArray {
		return false
	}

	arr := arg.Raw().(*bsonval.Array)

	if elem.Value.IsMissing() {
		for i := 0; i < arr.Len(); i++ {
			if arr.Get(i).Tag() == bsonval.TagNull {
				return true
			}
		}
	}

	for i := 0; i < arr.Len(); i++ {
		v := arr.Get(i)
		if v.Tag() == bsonval.TagRegex {
			continue
		}

		cmp, ok := bsonval.Compare(elem, bsonval.NewElement("", v))
		if ok && cmp == 0 {
			return true
		}
	}

	return false
}
