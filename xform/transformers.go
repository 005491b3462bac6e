// Package xform holds small parse/validate steps of the shape
// func(A) (B, error). They are chained by envutil readers and reused by the
// CLI to turn text into array elements.
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// Fields splits a string around runs of whitespace.
func Fields(s string) ([]string, error) {
	return strings.Fields(s), nil
}

// OneOf returns a transformer that validates a value is one of the allowed choices.
// Returns ErrInvalidChoice if the value doesn't match any of the choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (want one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int parses a string as a base-10 int.
func Int(value string) (int, error) {
	return strconv.Atoi(value)
}

// Int64 parses a string as a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// Float64 parses a string as a float64.
func Float64(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// Float32 parses a string as a float32. Values are rounded to the nearest
// float32, the same way a C float literal would be.
func Float32(value string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, err
	}

	return float32(f), nil
}

// Duration parses a string like "5s" or "250ms".
func Duration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}

// Char parses a string holding exactly one byte.
func Char(value string) (byte, error) {
	if len(value) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrNotSingleChar, value)
	}

	return value[0], nil
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[A Numeric](value A) (A, error) { //nolint:ireturn
	if value < 0 {
		return value, ErrNegative
	}

	return value, nil
}

// CastNumeric converts a numeric value from one type to another.
// This may truncate or lose precision depending on the types involved.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
