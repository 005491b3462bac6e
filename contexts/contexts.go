// Package contexts provides type-safe helpers for storing and reading
// context values. The logger, envutil and spans packages keep their
// per-context state through it.
package contexts

import "context"

// EnsureContext returns the first non-nil context, or context.Background()
// when every argument is nil.
func EnsureContext(ctx ...context.Context) context.Context {
	for _, c := range ctx {
		if c != nil {
			return c
		}
	}

	return context.Background()
}

// WithValue stores value under key. A nil ctx is replaced by
// context.Background().
func WithValue[K any, V any](ctx context.Context, key K, value V) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, key, value)
}

// GetValue reads the value stored under key. It returns false when ctx is
// nil, the key is absent, or the stored value is not a V.
func GetValue[K any, V any](ctx context.Context, key K) (V, bool) {
	var zero V

	if ctx == nil {
		return zero, false
	}

	v, ok := ctx.Value(key).(V)
	if !ok {
		return zero, false
	}

	return v, true
}
