package sorting

import (
	"cmp"

	"facette.io/natsort"
	"github.com/amp-labs/amp-arrays/sortable"
)

// Less reports whether a must sort before b.
type Less[T any] func(a, b T) bool

// Natural orders any cmp.Ordered type ascending. For floats a NaN sorts
// before every other value.
func Natural[T cmp.Ordered]() Less[T] {
	return cmp.Less[T]
}

// Reverse flips less into a descending order.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// FromSortable orders a type by its own LessThan.
func FromSortable[T sortable.Sortable[T]]() Less[T] {
	return func(a, b T) bool {
		return a.LessThan(b)
	}
}

// NaturalStrings orders strings the way people expect numbered names to
// sort: "item2" before "item10".
func NaturalStrings() Less[string] {
	return natsort.Compare
}
