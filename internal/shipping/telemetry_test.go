package shipping_test

import (
	"context"
	"shipments/internal/shipping"
	"shipments/pkg/metrics"
	"shipments/pkg/storage/memory"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// installProviders swaps the global OpenTelemetry providers for the duration
// of the test.
func installProviders(t *testing.T) (*sdkmetric.ManualReader, *tracetest.SpanRecorder) {
	t.Helper()

	prevMeter, prevTracer := otel.GetMeterProvider(), otel.GetTracerProvider()

	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	spans := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)))

	t.Cleanup(func() {
		otel.SetMeterProvider(prevMeter)
		otel.SetTracerProvider(prevTracer)
	})

	return reader, spans
}

func TestService_Telemetry(t *testing.T) {
	reader, spans := installProviders(t)

	svc := shipping.New(memory.New(), shipping.Options{DefaultPageSize: 2, MaxPageSize: 10})
	ctx := context.Background()

	create(t, svc, "SHIP-1", containerDelivery("DEL-1", [2]string{"M1", "S1"}))
	err := svc.CreateShipmentDelivery(ctx, shipping.CreateRequest{
		ShipmentNumber: "SHIP-1",
		Delivery:       containerDelivery("DEL-1", [2]string{"M2", "S2"}),
	})
	require.Error(t, err)
	_, err = svc.ByShipmentNumber(ctx, "SHIP-404")
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != metrics.Mutations {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(attribute.Key("operation"))
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				outcomes[op.AsString()+"/"+outcome.AsString()] = dp.Value
			}
		}
	}
	require.Equal(t, map[string]int64{
		"CreateShipmentDelivery/ok":       1,
		"CreateShipmentDelivery/CONFLICT": 1,
	}, outcomes)

	ended := spans.Ended()
	require.Len(t, ended, 3)

	conflict := ended[1]
	require.Equal(t, "shipping.CreateShipmentDelivery", conflict.Name())
	require.Len(t, conflict.Events(), 1)
	require.Equal(t, "business_error", conflict.Events()[0].Name)

	notFound := ended[2]
	require.Equal(t, "shipping.ByShipmentNumber", notFound.Name())
	require.Len(t, notFound.Events(), 1)
}
