package envutil

import (
	"context"

	"github.com/amp-labs/amp-arrays/contexts"
)

type envContextKey string

// WithEnvOverride makes every reader using ctx see value for key, regardless
// of the process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return contexts.WithValue[envContextKey, string](ctx, envContextKey(key), value)
}

// WithEnvOverrides applies WithEnvOverride for every entry of env.
func WithEnvOverrides(ctx context.Context, env map[string]string) context.Context {
	for k, v := range env {
		ctx = WithEnvOverride(ctx, k, v)
	}

	return ctx
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	return contexts.GetValue[envContextKey, string](ctx, envContextKey(key))
}
