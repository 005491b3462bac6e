package spans

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/amp-arrays/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func newRunner(tracer trace.Tracer, spanName string, opts ...Option) *runner {
	r := &runner{
		spanName: spanName,
		spanKind: trace.SpanKindInternal,
		tracer:   tracer,
	}

	for _, option := range opts {
		if option != nil {
			option(r)
		}
	}

	return r
}

// runner executes one function inside one span.
type runner struct {
	spanName string
	success  string
	failure  string
	spanKind trace.SpanKind
	tracer   trace.Tracer
	sso      []trace.SpanStartOption
}

func (r *runner) setErrorStatus(span trace.Span, err error) {
	if len(r.failure) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%s: %s", r.failure, err.Error()))
	} else {
		span.SetStatus(codes.Error, err.Error())
	}
}

func (r *runner) setSuccessStatus(span trace.Span) {
	if len(r.success) > 0 {
		span.SetStatus(codes.Ok, r.success)
	} else {
		span.SetStatus(codes.Ok, "ok")
	}
}

// invoke runs call inside a span when ctx carries a tracer, and directly
// otherwise (counting the miss). Errors are recorded on the span; panics are
// recorded and re-raised.
func invoke[T any](
	ctx context.Context, name string,
	call func(ctx context.Context, span trace.Span) (T, error), opts ...Option,
) (valOut T, errOut error) {
	tracer, found := TracerFromContext(ctx)
	if !found || tracer == nil {
		spanWithoutTracerCounter.WithLabelValues(name).Inc()

		return call(ctx, trace.SpanFromContext(ctx))
	}

	r := newRunner(tracer, name, opts...)

	startOpts := make([]trace.SpanStartOption, len(r.sso)+1)
	copy(startOpts, r.sso)
	startOpts[len(r.sso)] = trace.WithSpanKind(r.spanKind)

	ctx, span := r.tracer.Start(ctx, r.spanName, startOpts...) //nolint:spancheck

	defer func() {
		defer span.End()

		if panicErr := recover(); panicErr != nil {
			span.SetAttributes(attribute.Int64("panic", 1))

			err := utils.GetPanicRecoveryError(panicErr, debug.Stack())
			if errOut != nil {
				err = errors.Join(errOut, err)
			}

			span.RecordError(err)
			r.setErrorStatus(span, err)

			panic(panicErr)
		}
	}()

	val, err := call(ctx, span)
	if err != nil {
		span.RecordError(err)
		r.setErrorStatus(span, err)

		return val, err
	}

	r.setSuccessStatus(span)

	return val, nil
}
