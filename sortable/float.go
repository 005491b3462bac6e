package sortable

// Float is a sortable float32, the element type of a FloatArray.
//
// Equals is exact IEEE equality: values that differ in the last bit are
// different, NaN equals nothing (itself included) and -0 equals +0. No
// tolerance is applied; callers needing approximate matching must compare
// with their own epsilon.
//
// LessThan places NaN before every other value so that a NaN in the input
// still produces a deterministic ascending order.
type Float float32

var _ Sortable[Float] = Float(0)

func (f Float) Equals(other Float) bool {
	return f == other
}

func (f Float) LessThan(other Float) bool {
	if f != f { //nolint:gocritic // NaN check
		return other == other //nolint:gocritic
	}

	return f < other
}
