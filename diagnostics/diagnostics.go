// Package diagnostics turns array and sort errors into messages meant for
// people: a headline naming the kind of failure, a line of advice, and the
// underlying error text.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-arrays/array"
	ierrors "github.com/amp-labs/amp-arrays/errors"
	"github.com/manifoldco/promptui"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindOutOfBounds
	KindUnusedAccess
	KindAllocationFailure
	KindReallocationFailure
	KindInvalidShrink
	KindEmptyPop
	KindInvalidInput
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "OUT_OF_BOUNDS"
	case KindUnusedAccess:
		return "UNUSED_ACCESS"
	case KindAllocationFailure:
		return "MEM_ALLOC_FAIL"
	case KindReallocationFailure:
		return "MEM_REALLOC_FAIL"
	case KindInvalidShrink:
		return "INVALID_SHRINK"
	case KindEmptyPop:
		return "EMPTY_POP"
	case KindInvalidInput:
		return "INVALID_INPUT"
	case KindPanic:
		return "PANIC"
	case KindUnknown:
		fallthrough
	default:
		return "UNKNOWN"
	}
}

// Runtime reports whether the kind is an environmental failure rather than
// a mistake in the calling code.
func (k Kind) Runtime() bool {
	switch k { //nolint:exhaustive
	case KindAllocationFailure, KindReallocationFailure, KindPanic, KindUnknown:
		return true
	default:
		return false
	}
}

// kinds is checked in order; the first match wins.
var kinds = []struct { //nolint:gochecknoglobals
	target error
	kind   Kind
}{
	{array.ErrOutOfBounds, KindOutOfBounds},
	{array.ErrUnusedAccess, KindUnusedAccess},
	{array.ErrInvalidShrink, KindInvalidShrink},
	{array.ErrEmptyPop, KindEmptyPop},
	{array.ErrAllocationFailure, KindAllocationFailure},
	{array.ErrReallocationFailure, KindReallocationFailure},
	{ierrors.ErrInvalidInput, KindInvalidInput},
	{ierrors.ErrPanicRecovery, KindPanic},
}

// KindOf classifies err. A nil error is KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}

	return KindUnknown
}

// Headline returns e.g. "Logical Error: [OUT_OF_BOUNDS]".
func Headline(kind Kind) string {
	category := "Logical"
	if kind.Runtime() {
		category = "Runtime"
	}

	return fmt.Sprintf("%s Error: [%s]", category, kind)
}

// Advice returns a sentence or two on how to avoid the failure.
func Advice(kind Kind) string {
	switch kind {
	case KindOutOfBounds:
		return "Invalid index! You tried to access a negative index, or an index past the array's capacity. " +
			"Use Resize to add room, or make sure the index is within the bounds of the array."
	case KindUnusedAccess:
		return "You tried to access an element you haven't used yet. Set can only modify used elements. " +
			"Use Insert or Push to assign a value to this element."
	case KindAllocationFailure:
		return "Memory allocation failed. The requested capacity is negative, too large, " +
			"or above the configured maximum capacity."
	case KindReallocationFailure:
		return "Memory reallocation failed. The array could not grow past its current capacity; " +
			"raise the maximum capacity or store fewer elements. The array was left unchanged."
	case KindInvalidShrink:
		return "The resize would drop elements that are in use. Delete or Pop elements before shrinking."
	case KindEmptyPop:
		return "The array is empty, so there is nothing to pop. Check IsEmpty first."
	case KindInvalidInput:
		return "A value could not be parsed. Check that every value matches the chosen element type."
	case KindPanic:
		return "The sort algorithm swapped an index outside the used elements, or panicked on its own."
	case KindUnknown:
		fallthrough
	default:
		return "An unexpected error occurred."
	}
}

// Describe renders err as plain text: headline, advice, then the error
// itself. Joined errors are described one after another.
func Describe(err error) string {
	var sb strings.Builder

	_ = Report(&sb, err, false)

	return sb.String()
}

var (
	headlineStyle = promptui.Styler(promptui.FGRed, promptui.FGBold) //nolint:gochecknoglobals
	adviceStyle   = promptui.Styler(promptui.FGYellow)               //nolint:gochecknoglobals
)

// Report writes the description of err to w, colored with ANSI escapes when
// color is true. It writes nothing for a nil error.
func Report(w io.Writer, err error, color bool) error {
	if err == nil {
		return nil
	}

	for i, single := range flatten(err) {
		if i > 0 {
			if _, werr := io.WriteString(w, "\n"); werr != nil {
				return werr
			}
		}

		kind := KindOf(single)
		headline, advice := Headline(kind), Advice(kind)

		if color {
			headline, advice = headlineStyle(headline), adviceStyle(advice)
		}

		if _, werr := fmt.Fprintf(w, "%s\n%s\n  %s\n", headline, advice, single.Error()); werr != nil {
			return werr
		}
	}

	return nil
}

// flatten splits a top-level errors.Join into its parts. Nested multi-wraps
// stay whole, since fmt.Errorf with several %w verbs looks the same.
func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error }) //nolint:errorlint
	if !ok {
		return []error{err}
	}

	var out []error

	for _, e := range joined.Unwrap() {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}
