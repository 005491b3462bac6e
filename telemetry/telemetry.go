// Package telemetry exports traces and logs over OTLP/HTTP when enabled.
//
// Setup returns Providers whose tracer feeds the spans package (via
// Providers.Context) and whose log handler can be added to the logger
// (logger.WithHandler). When telemetry is disabled every method is a no-op,
// so callers don't need to branch.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amp-labs/amp-arrays/envutil"
	"github.com/amp-labs/amp-arrays/logger"
	"github.com/amp-labs/amp-arrays/spans"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// LoadConfigFromEnv reads OTEL_ENABLED, OTEL_SERVICE_NAME (default: the
// logging subsystem), OTEL_SERVICE_VERSION, OTEL_EXPORTER_OTLP_ENDPOINT and
// OTEL_EXPORTER_OTLP_TIMEOUT.
func LoadConfigFromEnv(ctx context.Context) (*Config, error) {
	enabled, err := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME",
		envutil.Default(logger.GetSubsystem(ctx))).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TIMEOUT",
		envutil.Default(defaultTimeout)).Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Providers owns the trace and log pipelines. The zero value is disabled.
type Providers struct {
	name   string
	traces *sdktrace.TracerProvider
	logs   *sdklog.LoggerProvider
}

// Enabled reports whether anything is being exported.
func (p *Providers) Enabled() bool {
	return p != nil && p.traces != nil
}

// Context returns ctx carrying the tracer, so spans started from it are
// exported.
func (p *Providers) Context(ctx context.Context) context.Context {
	if !p.Enabled() {
		return ctx
	}

	return spans.WithTracer(ctx, p.traces.Tracer(p.name))
}

// LogHandler returns a slog handler that exports records, or nil when
// disabled.
func (p *Providers) LogHandler() slog.Handler {
	if p == nil || p.logs == nil {
		return nil
	}

	return otelslog.NewHandler(p.name, otelslog.WithLoggerProvider(p.logs))
}

// Shutdown flushes and stops both pipelines.
func (p *Providers) Shutdown(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}

	var errs []error

	if err := p.traces.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutting down tracer provider: %w", err))
	}

	if p.logs != nil {
		if err := p.logs.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutting down logger provider: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Setup builds the exporters described by config. A disabled config, or one
// without an endpoint, returns disabled Providers.
func Setup(ctx context.Context, config *Config) (*Providers, error) {
	if config == nil || !config.Enabled {
		logger.Get(ctx).Debug("OpenTelemetry export is disabled")

		return &Providers{}, nil
	}

	if config.Endpoint == "" {
		logger.Get(ctx).Warn("OpenTelemetry endpoint not configured, export will be disabled")

		return &Providers{}, nil
	}

	res, err := newResource(ctx, config)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	logExporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(config.Endpoint),
		otlploghttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	providers := newProviders(config.ServiceName, res,
		sdktrace.WithBatcher(traceExporter),
		sdklog.NewBatchProcessor(logExporter))

	logger.Get(ctx).Debug("OpenTelemetry export initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"endpoint", config.Endpoint,
	)

	return providers, nil
}

func newResource(ctx context.Context, config *Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return res, nil
}

func newProviders(
	name string,
	res *resource.Resource,
	spanExport sdktrace.TracerProviderOption,
	logExport sdklog.Processor,
) *Providers {
	return &Providers{
		name: name,
		traces: sdktrace.NewTracerProvider(
			spanExport,
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		),
		logs: sdklog.NewLoggerProvider(
			sdklog.WithProcessor(logExport),
			sdklog.WithResource(res),
		),
	}
}
