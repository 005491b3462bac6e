package array

import (
	"github.com/amp-labs/amp-arrays/compare"
)

// ForEach calls fn for every populated element in index order.
func (a *Array[T]) ForEach(fn func(value T, index int, arr *Array[T])) {
	for i := range a.used {
		fn(a.items[i], i, a)
	}
}

// Map returns a new array holding fn applied to each populated element of a,
// in index order. The result has capacity a.Len() and a's configuration.
func Map[T, U any](a *Array[T], fn func(value T, index int, arr *Array[T]) U) *Array[U] {
	out := &Array[U]{
		items: make([]U, a.used),
		used:  a.used,
		cfg:   a.cfg,
	}

	for i := range a.used {
		out.items[i] = fn(a.items[i], i, a)
	}

	return out
}

// Filter returns a new array holding the elements for which fn returns true,
// in their original order. The result's capacity equals its length.
func (a *Array[T]) Filter(fn func(value T, index int, arr *Array[T]) bool) *Array[T] {
	kept := make([]T, 0, a.used)

	for i := range a.used {
		if fn(a.items[i], i, a) {
			kept = append(kept, a.items[i])
		}
	}

	out := a.derive(len(kept))
	copy(out.items, kept)
	out.used = len(kept)

	return out
}

// CountFunc returns how many populated elements satisfy pred.
func (a *Array[T]) CountFunc(pred func(T) bool) int {
	n := 0

	for i := range a.used {
		if pred(a.items[i]) {
			n++
		}
	}

	return n
}

// ExistsFunc reports whether any populated element satisfies pred.
func (a *Array[T]) ExistsFunc(pred func(T) bool) bool {
	for i := range a.used {
		if pred(a.items[i]) {
			return true
		}
	}

	return false
}

// Count returns how many populated elements are == v.
//
// For floating point elements this is exact IEEE equality: NaN matches
// nothing and values differing in the last bit don't match.
func Count[T comparable](a *Array[T], v T) int {
	return a.CountFunc(func(x T) bool { return x == v })
}

// Exists reports whether any populated element is == v. See Count for the
// floating point caveat.
func Exists[T comparable](a *Array[T], v T) bool {
	return a.ExistsFunc(func(x T) bool { return x == v })
}

// CountEqual counts using the element type's own Equals.
func CountEqual[T compare.Comparable[T]](a *Array[T], v T) int {
	return a.CountFunc(func(x T) bool { return compare.Equals(x, v) })
}

// Equal reports whether a and b hold the same populated elements. Capacity
// is ignored.
func Equal[T comparable](a, b *Array[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if a.items[i] != b.items[i] {
			return false
		}
	}

	return true
}
