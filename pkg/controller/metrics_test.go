package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"shipments/pkg/controller"
	"shipments/pkg/metrics"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/shipment-deliveries/shipment/{shipmentNumber}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	handler, err := controller.WithMetrics(mp, mux)
	require.NoError(t, err)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/shipment-deliveries/shipment/SHIP-1", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	counter, ok := byName[metrics.HTTPRequests].Data.(metricdata.Sum[int64])
	require.True(t, ok)

	counts := map[string]int64{}
	for _, dp := range counter.DataPoints {
		route, _ := dp.Attributes.Value(attribute.Key("http.route"))
		status, _ := dp.Attributes.Value(attribute.Key("http.response.status_code"))
		counts[route.AsString()+" "+status.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{
		"GET /v1/shipment-deliveries/shipment/{shipmentNumber} 404": 3,
		"unmatched 404": 1,
	}, counts)

	histogram, ok := byName[metrics.HTTPRequestDuration].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, histogram.DataPoints, 2)
	require.Equal(t, metrics.DefaultBuckets, histogram.DataPoints[0].Bounds)
}
