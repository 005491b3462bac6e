package array

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-arrays/logger"
)

var (
	// ErrOutOfBounds is returned for a negative index, or one past the
	// allocated capacity.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrUnusedAccess is returned when an operation needs a populated slot
	// but the index is allocated and not yet used.
	ErrUnusedAccess = errors.New("access to unused element")

	// ErrAllocationFailure is returned when a new backing buffer can't be
	// obtained.
	ErrAllocationFailure = errors.New("memory allocation failed")

	// ErrReallocationFailure is returned when the backing buffer can't be
	// grown or shrunk. The array is left unchanged.
	ErrReallocationFailure = errors.New("memory reallocation failed")

	// ErrInvalidShrink is returned when a resize would drop populated elements.
	ErrInvalidShrink = errors.New("cannot shrink below used length")

	// ErrEmptyPop is returned by Pop on an empty array.
	ErrEmptyPop = errors.New("pop from empty array")

	errCapacityOverflow = errors.New("capacity overflows int")
)

// indexError builds an error for op failing at index, annotated with the
// array's shape so the log line shows it.
func (a *Array[T]) indexError(kind error, op string, index int) error {
	return logger.AnnotateError(
		fmt.Errorf("%s: %w: index %d (used %d, capacity %d)", op, kind, index, a.used, len(a.items)),
		"op", op, "index", index, "used", a.used, "capacity", len(a.items))
}

// sizeError builds an error for op failing to reach the requested capacity.
func (a *Array[T]) sizeError(kind error, op string, requested int, cause error) error {
	var err error
	if cause != nil {
		err = fmt.Errorf("%s: %w: requested capacity %d (used %d, capacity %d): %w",
			op, kind, requested, a.used, len(a.items), cause)
	} else {
		err = fmt.Errorf("%s: %w: requested capacity %d (used %d, capacity %d)",
			op, kind, requested, a.used, len(a.items))
	}

	return logger.AnnotateError(err,
		"op", op, "requested", requested, "used", a.used, "capacity", len(a.items))
}
