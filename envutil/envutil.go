// Package envutil reads typed configuration from environment variables.
// Context overrides (WithEnvOverride) take precedence over the process
// environment, which keeps tests hermetic.
package envutil

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/amp-labs/amp-arrays/xform"
)

// get returns a Reader for key, consulting ctx overrides first.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{
			key:     key,
			present: true,
			value:   val,
		}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Enum returns a Reader whose value must be one of choices. Surrounding
// whitespace is trimmed and the value is lowercased before matching.
func Enum(ctx context.Context, key string, choices []string, opts ...Option[string]) Reader[string] {
	rdr := Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.OneOf(choices...))

	return apply(rdr, opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), xform.Bool), opts)
}

func Int[I xform.Intish](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	rdr := Map(Map(Map(get(ctx, key), xform.TrimString), xform.Int64), xform.CastNumeric[int64, I])

	return apply(rdr, opts)
}

// SlogLevel returns a Reader for a log level ("debug", "info", "warn", "error").
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(Map(Map(get(ctx, key), xform.TrimString), xform.ToLower), xform.SlogLevel)

	return apply(rdr, opts)
}

// Duration returns a Reader for a Go duration string such as "5s".
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(Map(get(ctx, key), xform.TrimString), xform.Duration), opts)
}
