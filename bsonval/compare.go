package bsonval

import "math"

// Compare orders two elements by their values, returning ok=false when the
// pair has no defined order (spec.md §4.1). Only the numeric tags — Number,
// Int32, Int64 — cross-compare by mathematical value; every other tag pair
// is incomparable, including a tag compared with itself (e.g. two Strings),
// because the engine only needs a total order where one is actually used by
// a match-expression operator.
//
// Compare is symmetric (Compare(a,b) = -Compare(b,a) when both are ok) and
// transitive over the numeric subset.
func Compare(a, b Element) (cmp int, ok bool) {
	return compareValues(a.Value, b.Value)
}

func compareValues(a, b Value) (int, bool) {
	if !a.tag.numeric() || !b.tag.numeric() {
		return 0, false
	}

	x, xok := asFloat64(a)
	y, yok := asFloat64(b)

	if !xok || !yok {
		return 0, false
	}

	// NaN equals NaN and sorts before every other number, so that the
	// order stays transitive when NaN is present.
	switch xnan, ynan := math.IsNaN(x), math.IsNaN(y); {
	case xnan && ynan:
		return 0, true
	case xnan:
		return -1, true
	case ynan:
		return 1, true
	}

	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	default:
		return 0, true
	}
}

func asFloat64(v Value) (float64, bool) {
	switch v.tag {
	case TagNumber:
		return v.payload.(float64), true
	case TagInt32:
		return float64(v.payload.(int32)), true
	case TagInt64:
		return float64(v.payload.(int64)), true
	default:
		return 0, false
	}
}
