package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/amp-labs/amp-arrays/envutil"
	"github.com/amp-labs/amp-arrays/logger"
	"github.com/amp-labs/amp-arrays/spans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// recordingExporter keeps exported log records in memory.
type recordingExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (r *recordingExporter) Export(_ context.Context, records []sdklog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		r.records = append(r.records, rec.Clone())
	}

	return nil
}

func (r *recordingExporter) Shutdown(context.Context) error   { return nil }
func (r *recordingExporter) ForceFlush(context.Context) error { return nil }

func (r *recordingExporter) bodies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Body().AsString()
	}

	return out
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		ctx := logger.WithSubsystem(t.Context(), "arraysort-test")

		config, err := LoadConfigFromEnv(ctx)
		require.NoError(t, err)

		assert.False(t, config.Enabled)
		assert.Equal(t, "arraysort-test", config.ServiceName)
		assert.Equal(t, defaultServiceVersion, config.ServiceVersion)
		assert.Equal(t, defaultTimeout, config.Timeout)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverrides(t.Context(), map[string]string{
			"OTEL_ENABLED":                "true",
			"OTEL_SERVICE_NAME":           "sorter",
			"OTEL_SERVICE_VERSION":        "2.1.0",
			"OTEL_EXPORTER_OTLP_ENDPOINT": "http://collector:4318",
			"OTEL_EXPORTER_OTLP_TIMEOUT":  "750ms",
		})

		config, err := LoadConfigFromEnv(ctx)
		require.NoError(t, err)

		assert.Equal(t, &Config{
			ServiceName:    "sorter",
			ServiceVersion: "2.1.0",
			Endpoint:       "http://collector:4318",
			Enabled:        true,
			Timeout:        750 * time.Millisecond,
		}, config)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFromEnv(envutil.WithEnvOverride(t.Context(), "OTEL_ENABLED", "maybe"))
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)

		_, err = LoadConfigFromEnv(envutil.WithEnvOverride(t.Context(), "OTEL_EXPORTER_OTLP_TIMEOUT", "soon"))
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	})
}

func TestSetupDisabled(t *testing.T) {
	t.Parallel()

	for _, config := range []*Config{nil, {Enabled: false}, {Enabled: true}} {
		providers, err := Setup(logger.WithMuted(t.Context(), true), config)
		require.NoError(t, err)

		assert.False(t, providers.Enabled())
		assert.Nil(t, providers.LogHandler())

		ctx := t.Context()
		assert.Equal(t, ctx, providers.Context(ctx))
		require.NoError(t, providers.Shutdown(ctx))
	}
}

func TestSetupEnabled(t *testing.T) {
	t.Parallel()

	providers, err := Setup(logger.WithMuted(t.Context(), true), &Config{
		ServiceName: "arraysort",
		Endpoint:    "http://127.0.0.1:4318",
		Enabled:     true,
		Timeout:     time.Second,
	})
	require.NoError(t, err)

	assert.True(t, providers.Enabled())
	assert.NotNil(t, providers.LogHandler())

	_, found := spans.TracerFromContext(providers.Context(t.Context()))
	assert.True(t, found)

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	require.NoError(t, providers.Shutdown(ctx))
}

func TestProvidersExport(t *testing.T) {
	t.Parallel()

	spanExporter := tracetest.NewInMemoryExporter()
	logExporter := &recordingExporter{}

	res, err := newResource(t.Context(), &Config{ServiceName: "arraysort", ServiceVersion: "test"})
	require.NoError(t, err)

	providers := newProviders("arraysort", res,
		sdktrace.WithSyncer(spanExporter),
		sdklog.NewSimpleProcessor(logExporter))

	ctx := providers.Context(t.Context())

	n, err := spans.StartValErr[int](ctx, "count").Enter(func(context.Context, trace.Span) (int, error) {
		return 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	slog.New(providers.LogHandler()).Info("sorted array")

	// the in-memory span exporter forgets everything on shutdown
	recorded := spanExporter.GetSpans()
	require.Len(t, recorded, 1)
	assert.Equal(t, "count", recorded[0].Name)

	require.NoError(t, providers.Shutdown(t.Context()))

	assert.Equal(t, []string{"sorted array"}, logExporter.bodies())
}
