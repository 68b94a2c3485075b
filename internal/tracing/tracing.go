// Package tracing installs the OpenTelemetry tracer provider of the service.
// Spans started through the global provider, by the generated API server and
// by the shipping engine, end up in the exporter selected by configuration.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"shipments/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "shipments"

// Options configure Setup.
type Options struct {
	ServiceName string
	Environment string
	// Exporter is one of the config.TraceExporter* values.
	Exporter    string
	Endpoint    string
	Insecure    bool
	SampleRatio float64

	// Writer receives spans of the stdout exporter. os.Stdout when nil.
	Writer io.Writer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ServiceName: ServiceName,
		Environment: cfg.Environment,
		Exporter:    cfg.Tracing.Exporter,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.SampleRatio,
	}
}

func newExporter(ctx context.Context, opts Options) (sdktrace.SpanExporter, error) {
	switch opts.Exporter {
	case config.TraceExporterNone, "":
		return nil, nil //nolint: nilnil
	case config.TraceExporterStdout:
		w := opts.Writer
		if w == nil {
			w = os.Stdout
		}

		return stdouttrace.New(stdouttrace.WithWriter(w)) //nolint: wrapcheck
	case config.TraceExporterOTLP:
		httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
		if opts.Insecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, httpOpts...) //nolint: wrapcheck
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", opts.Exporter)
	}
}

// Setup installs an SDK tracer provider and the W3C trace context and baggage
// propagators as the OpenTelemetry globals. The returned function flushes
// pending spans and stops the provider.
func Setup(ctx context.Context, opts Options) (func(context.Context) error, error) {
	exporter, err := newExporter(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(opts.ServiceName),
			attribute.String("deployment.environment", opts.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create trace resource: %w", err)
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
	}
	if exporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}
