package spans

import (
	"context"

	"github.com/amp-labs/amp-arrays/contexts"
	"go.opentelemetry.io/otel/trace"
)

type contextKey string

// TracerKey is the context key used to store the OpenTelemetry tracer.
const TracerKey contextKey = "tracer"

// WithTracer stores an OpenTelemetry tracer in the context. Orchestrators
// started from this context create spans with it; without one they run the
// wrapped function directly.
//
//	ctx = spans.WithTracer(ctx, otel.Tracer("arraysort"))
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return contexts.WithValue[contextKey, trace.Tracer](ctx, TracerKey, tracer)
}

// TracerFromContext retrieves the tracer stored by WithTracer.
func TracerFromContext(ctx context.Context) (trace.Tracer, bool) {
	return contexts.GetValue[contextKey, trace.Tracer](ctx, TracerKey)
}
