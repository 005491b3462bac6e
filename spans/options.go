package spans

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a runner.
type Option func(*runner)

// WithAttribute adds an attribute to the span when it is created.
//
//	spans.StartValErr[*array.Array[int]](ctx, "sort",
//	    spans.WithAttribute("algorithm", attribute.StringValue("bubble")),
//	)
func WithAttribute(key attribute.Key, value attribute.Value) Option {
	return func(r *runner) {
		r.sso = append(r.sso, trace.WithAttributes(attribute.KeyValue{
			Key:   key,
			Value: value,
		}))
	}
}

// WithSpanKind sets the span kind. The default is SpanKindInternal.
func WithSpanKind(kind trace.SpanKind) Option {
	return func(r *runner) {
		r.spanKind = kind
	}
}

// WithSuccessMessage sets the description of the Ok status.
func WithSuccessMessage(description string) Option {
	return func(r *runner) {
		r.success = description
	}
}

// WithErrorMessage sets a prefix for the Error status description.
func WithErrorMessage(description string) Option {
	return func(r *runner) {
		r.failure = description
	}
}
