package tracing_test

import (
	"bytes"
	"context"
	"shipments/internal/config"
	"shipments/internal/tracing"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	tp, propagator := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagator)
	})
}

func TestSetup_StdoutExporter(t *testing.T) {
	restoreGlobals(t)

	ctx := context.Background()
	var out bytes.Buffer

	shutdown, err := tracing.Setup(ctx, tracing.Options{
		ServiceName: tracing.ServiceName,
		Environment: "test",
		Exporter:    config.TraceExporterStdout,
		SampleRatio: 1,
		Writer:      &out,
	})
	require.NoError(t, err)

	require.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
	require.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())

	_, span := otel.Tracer("tracing_test").Start(ctx, "shipping.CreateShipmentDelivery")
	require.True(t, span.SpanContext().IsValid())
	require.True(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, shutdown(ctx))
	require.Contains(t, out.String(), `"Name":"shipping.CreateShipmentDelivery"`)
	require.Contains(t, out.String(), `"Value":"shipments"`)
}

func TestSetup_NoExporterStillCreatesSpans(t *testing.T) {
	restoreGlobals(t)

	ctx := context.Background()
	shutdown, err := tracing.Setup(ctx, tracing.Options{Exporter: config.TraceExporterNone, SampleRatio: 0})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(ctx) })

	_, span := otel.Tracer("tracing_test").Start(ctx, "unsampled")
	defer span.End()
	require.True(t, span.SpanContext().IsValid())
	require.False(t, span.SpanContext().IsSampled())
}

func TestSetup_UnknownExporter(t *testing.T) {
	restoreGlobals(t)

	_, err := tracing.Setup(context.Background(), tracing.Options{Exporter: "jaeger"})
	require.ErrorContains(t, err, `unknown trace exporter "jaeger"`)
}

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.Environment = "production"
	cfg.Tracing.Exporter = config.TraceExporterOTLP
	cfg.Tracing.Endpoint = "collector:4318"
	cfg.Tracing.Insecure = true
	cfg.Tracing.SampleRatio = 0.25

	require.Equal(t, tracing.Options{
		ServiceName: tracing.ServiceName,
		Environment: "production",
		Exporter:    config.TraceExporterOTLP,
		Endpoint:    "collector:4318",
		Insecure:    true,
		SampleRatio: 0.25,
	}, tracing.NewOptions(&cfg))
}
