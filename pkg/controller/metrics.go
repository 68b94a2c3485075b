package controller

import (
	"fmt"
	"net/http"
	"shipments/pkg/metrics"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that counts requests and records their
// latency, labelled by method, matched route pattern and status code. It must
// wrap the ServeMux directly so the matched pattern is visible after routing.
func WithMetrics(mp metric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter(metrics.MeterName)

	requests, err := meter.Int64Counter(metrics.HTTPRequests,
		metric.WithDescription("Number of handled HTTP requests."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	latency, err := meter.Float64Histogram(metrics.HTTPRequestDuration,
		metric.WithDescription("Latency of handled HTTP requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		attrs := metric.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("http.route", route),
			attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
		)

		requests.Add(r.Context(), 1, attrs)
		latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
