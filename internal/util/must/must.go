// Package must provides helpers that panic on violated invariants.
//
// It must be used only for conditions that can't happen given correct code
// upstream (an already-validated value failing to re-encode, a nil receiver
// on a method that documents it must not be nil) — never for data coming
// from the wire or from a query document. Those go through normal error
// returns instead.
package must

import "reflect"

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

// NotBeZero panics if v is a nil pointer/interface/map/slice/chan or a zero value of v's type.
func NotBeZero[T any](v T) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			panic("must: unexpected nil value")
		}
	default:
		if rv.IsZero() {
			panic("must: unexpected zero value")
		}
	}
}
