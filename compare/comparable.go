// Package compare defines equality for element types that don't use Go's
// == operator, such as records compared by key or floats compared by bits.
package compare

import "math"

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Float64Bits is a float64 whose equality is bitwise: NaN equals a NaN with
// the same payload, and -0 differs from +0. Plain == on float64 is the
// IEEE comparison (NaN never equal, -0 == +0).
type Float64Bits float64

var _ Comparable[Float64Bits] = Float64Bits(0)

// Equals reports whether both values have identical bit patterns.
func (f Float64Bits) Equals(other Float64Bits) bool {
	return math.Float64bits(float64(f)) == math.Float64bits(float64(other))
}
