package sorting

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

const (
	BubbleName    = "bubble"
	SelectionName = "selection"
	InsertionName = "insertion"
)

// Bubble is a stable bubble sort. It stops after the first pass that makes
// no swap, so already sorted input costs one pass.
func Bubble[T any](less Less[T]) Algorithm[T] {
	return func(seq Sequence, get Getter[T], _ Setter[T], swap Swapper) {
		for end := seq.Len() - 1; end > 0; end-- {
			swapped := false

			for i := range end {
				if less(get(i+1), get(i)) {
					swap(i, i+1)

					swapped = true
				}
			}

			if !swapped {
				return
			}
		}
	}
}

// Selection is a selection sort. It makes at most n-1 swaps and is not
// stable.
func Selection[T any](less Less[T]) Algorithm[T] {
	return func(seq Sequence, get Getter[T], _ Setter[T], swap Swapper) {
		n := seq.Len()

		for i := 0; i < n-1; i++ {
			minIdx, minVal := i, get(i)

			for j := i + 1; j < n; j++ {
				if v := get(j); less(v, minVal) {
					minIdx, minVal = j, v
				}
			}

			if minIdx != i {
				swap(i, minIdx)
			}
		}
	}
}

// Insertion is a stable insertion sort built on get and set only.
func Insertion[T any](less Less[T]) Algorithm[T] {
	return func(seq Sequence, get Getter[T], set Setter[T], _ Swapper) {
		for i := 1; i < seq.Len(); i++ {
			key := get(i)
			j := i - 1

			for j >= 0 {
				prev := get(j)
				if !less(key, prev) {
					break
				}

				set(prev, j+1)
				j--
			}

			set(key, j+1)
		}
	}
}

// Names lists the algorithms Lookup knows, sorted.
func Names() []string {
	return []string{BubbleName, InsertionName, SelectionName}
}

// Lookup returns the named algorithm bound to less. Names are
// case-insensitive.
func Lookup[T any](name string, less Less[T]) (Algorithm[T], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BubbleName:
		return Bubble(less), nil
	case SelectionName:
		return Selection(less), nil
	case InsertionName:
		return Insertion(less), nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownAlgorithm, name,
			strings.Join(Names(), ", "))
	}
}
