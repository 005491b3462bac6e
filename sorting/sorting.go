// Package sorting sorts arrays with pluggable algorithms.
//
// An Algorithm never sees the array itself. It is handed a Sequence (for the
// length) and three verbs bound to a private copy of the input: get, set and
// swap. Sort makes the copy, runs the algorithm against it and returns it;
// the input array is never modified.
//
// get and set go through the array's checked Get and Set. They can't return
// an error to the algorithm, so the first failure is remembered and Sort
// returns it once the algorithm finishes. swap is not checked; an index
// outside the populated range panics, and Sort turns the panic into an error
// wrapping errors.ErrPanicRecovery.
package sorting

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-arrays/array"
	"github.com/amp-labs/amp-arrays/utils"
)

var (
	ErrNilArray     = errors.New("nil array")
	ErrNilAlgorithm = errors.New("nil sort algorithm")
)

// Sequence is the algorithm's view of the container being sorted.
type Sequence interface {
	Len() int
}

type (
	// Getter reads the element at index.
	Getter[T any] func(index int) T

	// Setter writes value at index.
	Setter[T any] func(value T, index int)

	// Swapper exchanges the elements at i and j.
	Swapper func(i, j int)
)

// Algorithm reorders the elements behind get, set and swap into ascending
// order. Indexes run from 0 to seq.Len()-1.
type Algorithm[T any] func(seq Sequence, get Getter[T], set Setter[T], swap Swapper)

// Sort returns a sorted copy of a. The copy keeps a's capacity and
// configuration.
func Sort[T any](a *array.Array[T], algorithm Algorithm[T]) (*array.Array[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}

	if algorithm == nil {
		return nil, ErrNilAlgorithm
	}

	out := a.Copy()

	var firstErr error

	get := func(index int) T {
		v, err := out.Get(index)
		if err != nil && firstErr == nil {
			firstErr = err
		}

		return v
	}

	set := func(value T, index int) {
		if err := out.Set(value, index); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := utils.CatchPanic(func() {
		algorithm(out, get, set, out.Swap)
	}); err != nil {
		return nil, fmt.Errorf("sort: %w", err)
	}

	if firstErr != nil {
		return nil, fmt.Errorf("sort: %w", firstErr)
	}

	return out, nil
}
