// Package spans runs functions inside OpenTelemetry spans when the context
// carries a tracer (see WithTracer) and runs them plainly when it doesn't.
package spans

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// StartValueErrorOrchestrator runs a function returning (T, error) inside a span.
type StartValueErrorOrchestrator[T any] struct {
	ctx  context.Context //nolint:containedctx
	name string
	opts []Option
}

// StartValErr creates an orchestrator for a function that returns a value
// and an error.
//
//	sorted, err := spans.StartValErr[*array.Array[int]](ctx, "sort").
//	    Enter(func(ctx context.Context, span trace.Span) (*array.Array[int], error) {
//	        return sorting.Sort(a, algorithm)
//	    })
func StartValErr[T any](ctx context.Context, name string, opts ...Option) *StartValueErrorOrchestrator[T] {
	return &StartValueErrorOrchestrator[T]{
		ctx:  ctx,
		name: name,
		opts: opts,
	}
}

// Enter executes f. Errors are recorded on the span with an Error status;
// panics are recorded and re-raised. A nil f returns the zero value.
func (o *StartValueErrorOrchestrator[T]) Enter(f func(ctx context.Context, span trace.Span) (T, error)) (T, error) {
	if f == nil {
		var zero T

		return zero, nil
	}

	return invoke[T](o.ctx, o.name, f, o.opts...)
}
