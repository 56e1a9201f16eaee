// Package nullprobe implements the type-directed null-comparability fold
// behind IgnoreNull.
package nullprobe

import "reflect"

// Tri is the three-valued result of probing one argument: whether it is
// null, whether it is definitely not null, or whether its type can never
// be compared to null at all.
type Tri int

const (
	// Incomparable means the argument's type can never be nil (e.g. int,
	// string, a non-pointer struct).
	Incomparable Tri = iota
	// False means the argument's type is nilable and this value is not nil.
	False
	// True means the argument's type is nilable and this value is nil.
	True
)

// Or disjoins two probe results: true dominates, then false dominates
// over incomparable, and incomparable only survives when both sides are
// incomparable.
func (t Tri) Or(other Tri) Tri {
	if t == True || other == True {
		return True
	}
	if t == Incomparable && other == Incomparable {
		return Incomparable
	}
	return False
}

// IsNilable reports whether values of type T can ever be compared to nil
// (pointer, map, slice, channel, func, interface, or unsafe.Pointer
// kinds). It is evaluated against T itself, not any particular value, so
// callers can use it at pipeline-construction time.
func IsNilable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// Probe classifies a single argument value. Note that when T is an
// interface type, reflect reports the kind of the boxed dynamic value,
// not Interface, which correctly handles the classic Go "typed nil
// wrapped in a non-nil interface" case as non-null only when the
// concrete pointer itself is non-nil.
func Probe[T any](v T) Tri {
	if !IsNilable[T]() {
		return Incomparable
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return True
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return True
		}
		return False
	default:
		// T is a nilable interface type holding a non-nil value of a
		// non-nilable kind (e.g. an int boxed in any).
		return False
	}
}
