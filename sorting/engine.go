package sorting

import (
	"context"
	"time"

	"github.com/amp-labs/amp-arrays/array"
	"github.com/amp-labs/amp-arrays/contexts"
	"github.com/amp-labs/amp-arrays/logger"
	"github.com/amp-labs/amp-arrays/spans"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

// Engine is a named algorithm whose runs are traced, logged and counted.
// It is safe for concurrent use as long as each call sorts a different
// array (or arrays nobody is mutating).
//
//	engine := sorting.NewEngine("insertion", sorting.Insertion(sorting.Natural[int]()))
//	sorted, err := engine.Sort(ctx, arr)
type Engine[T any] struct {
	name      string
	algorithm Algorithm[T]

	runs     atomic.Int64
	failures atomic.Int64
	elements atomic.Int64
	busy     atomic.Duration
}

// Stats is a point-in-time view of an Engine's counters.
type Stats struct {
	Runs     int64
	Failures int64
	Elements int64
	Busy     time.Duration
}

func NewEngine[T any](name string, algorithm Algorithm[T]) *Engine[T] {
	return &Engine[T]{
		name:      name,
		algorithm: algorithm,
	}
}

func (e *Engine[T]) Name() string {
	return e.name
}

// Sort returns a sorted copy of a. See the package level Sort.
func (e *Engine[T]) Sort(ctx context.Context, a *array.Array[T]) (*array.Array[T], error) {
	ctx = contexts.EnsureContext(ctx)
	subsystem := logger.GetSubsystem(ctx)
	size := a.Len()

	start := time.Now()

	sorted, err := spans.StartValErr[*array.Array[T]](ctx, "sorting.Sort",
		spans.WithAttribute("sort.algorithm", attribute.StringValue(e.name)),
		spans.WithAttribute("sort.elements", attribute.IntValue(size)),
		spans.WithErrorMessage("sort failed"),
	).Enter(func(_ context.Context, _ trace.Span) (*array.Array[T], error) {
		return Sort(a, e.algorithm)
	})

	elapsed := time.Since(start)

	e.runs.Inc()
	e.elements.Add(int64(size))
	e.busy.Add(elapsed)

	sortRuns.WithLabelValues(subsystem, e.name).Inc()
	sortDuration.WithLabelValues(subsystem, e.name).Observe(elapsed.Seconds())
	sortElements.WithLabelValues(subsystem, e.name).Observe(float64(size))

	if err != nil {
		e.failures.Inc()
		sortFailures.WithLabelValues(subsystem, e.name).Inc()

		logger.Get(ctx).Debug("sort failed",
			"algorithm", e.name, "elements", size, "error", err)

		return nil, err
	}

	logger.Get(ctx).Debug("sorted array",
		"algorithm", e.name, "elements", size, "duration", elapsed)

	return sorted, nil
}

func (e *Engine[T]) Stats() Stats {
	return Stats{
		Runs:     e.runs.Load(),
		Failures: e.failures.Load(),
		Elements: e.elements.Load(),
		Busy:     e.busy.Load(),
	}
}
