// Package array provides Array, a growable array of any element type.
//
// An *Array[T] is a stable handle over a buffer it owns exclusively. Mutators
// (Push, Insert, Resize, ...) work in place and hide any reallocation from
// the caller. Derivations (Slice, Map, Filter, Copy) return a new array with
// its own buffer, so no two arrays ever share storage.
//
// The buffer has a capacity (allocated slots) and a used length (populated
// slots). Slots past the used length always hold the zero value of T. Reads
// and writes are bounds-checked against both: a negative index is
// ErrOutOfBounds, an index past the used length is ErrUnusedAccess.
//
// Failing operations leave the array unchanged.
//
// Arrays are not safe for concurrent use; see Locked.
package array

import (
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/amp-labs/amp-arrays/utils"
)

type Array[T any] struct {
	items []T // len(items) is the capacity
	used  int
	cfg   config
}

// New creates an empty array with room for capacity elements.
func New[T any](capacity int, opts ...Option) (*Array[T], error) {
	arr := &Array[T]{cfg: newConfig(opts)}

	items, err := arr.allocate(capacity)
	if err != nil {
		return nil, arr.sizeError(ErrAllocationFailure, "create", capacity, err)
	}

	arr.items = items

	return arr, nil
}

// FromSlice creates an array holding a copy of values, with capacity equal
// to len(values).
func FromSlice[T any](values []T, opts ...Option) (*Array[T], error) {
	arr, err := New[T](len(values), opts...)
	if err != nil {
		return nil, err
	}

	copy(arr.items, values)
	arr.used = len(values)

	return arr, nil
}

// Len returns the number of populated elements.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}

	return a.used
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	if a == nil {
		return 0
	}

	return len(a.items)
}

func (a *Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// GrowthPolicy returns the policy the array grows with.
func (a *Array[T]) GrowthPolicy() GrowthPolicy {
	return a.cfg.growth
}

// Resize changes the capacity by delta slots, which may be negative.
// Populated elements are preserved. Shrinking below the used length fails
// with ErrInvalidShrink.
func (a *Array[T]) Resize(delta int) error {
	target := len(a.items) + delta

	if delta > 0 && target < len(a.items) {
		return a.sizeError(ErrReallocationFailure, "resize", math.MaxInt, errCapacityOverflow)
	}

	if target < a.used {
		return a.sizeError(ErrInvalidShrink, "resize", target, nil)
	}

	if delta == 0 {
		return nil
	}

	return a.reallocate("resize", target)
}

// Release drops the buffer. The array is left empty with zero capacity and
// may be reused; calling Release again is a no-op.
func (a *Array[T]) Release() {
	a.items = nil
	a.used = 0
}

// Values returns a copy of the populated elements, or nil for a nil array.
func (a *Array[T]) Values() []T {
	if a == nil {
		return nil
	}

	out := make([]T, a.used)
	copy(out, a.items[:a.used])

	return out
}

// All iterates the populated elements in index order. A nil array yields
// nothing.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if a == nil {
			return
		}

		for i := range a.used {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) String() string {
	if a == nil {
		return "<nil>"
	}

	var sb strings.Builder

	sb.WriteByte('[')

	for i := range a.used {
		if i > 0 {
			sb.WriteByte(' ')
		}

		fmt.Fprint(&sb, a.items[i])
	}

	sb.WriteByte(']')

	return sb.String()
}

// ensure makes room for at least required slots, growing per the policy.
func (a *Array[T]) ensure(op string, required int) error {
	// required wrapped past math.MaxInt
	if required < 0 {
		return a.sizeError(ErrReallocationFailure, op, math.MaxInt, errCapacityOverflow)
	}

	if required <= len(a.items) {
		return nil
	}

	target := a.cfg.growth.next(len(a.items), required)

	// An exact fit under the limit is still allowed when doubling overshoots.
	if limit := a.cfg.maxCapacity; limit > 0 && target > limit && required <= limit {
		target = limit
	}

	return a.reallocate(op, target)
}

// reallocate swaps in a buffer of the target capacity. On failure the
// array is left untouched.
func (a *Array[T]) reallocate(op string, target int) error {
	items, err := a.allocate(target)
	if err != nil {
		return a.sizeError(ErrReallocationFailure, op, target, err)
	}

	copy(items, a.items[:a.used])
	a.items = items

	return nil
}

// allocate returns a zeroed buffer of n slots, honoring the configured limit.
// Allocation panics from the runtime are returned as errors.
func (a *Array[T]) allocate(n int) (items []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("negative capacity %d", n)
	}

	if limit := a.cfg.maxCapacity; limit > 0 && n > limit {
		return nil, fmt.Errorf("capacity %d exceeds limit %d", n, limit)
	}

	err = utils.CatchPanic(func() {
		items = make([]T, n)
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
