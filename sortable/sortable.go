package sortable

import (
	"github.com/amp-labs/amp-arrays/compare"
)

// Sortable is a value that can be checked for equality and ordered.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
