// Package errors holds the error values and helpers shared by every package
// in this module.
package errors

import "errors"

var (
	// ErrPanicRecovery wraps a panic that was recovered and converted to an
	// error (allocation panics, out-of-range swaps inside a sort algorithm).
	ErrPanicRecovery = errors.New("recovered from panic")

	// ErrInvalidInput is returned when user supplied values cannot be parsed
	// into the requested element type.
	ErrInvalidInput = errors.New("invalid input")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// The CLI uses it to report every unparseable value at once instead of
// stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// Errors returns a copy of the collected errors, in the order they were added.
func (c *Collection) Errors() []error {
	out := make([]error, len(c.errors))
	copy(out, c.errors)

	return out
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
