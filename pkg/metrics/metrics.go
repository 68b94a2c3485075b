// Package metrics holds the instrument names and histogram buckets shared by
// the HTTP middlewares and the consistency engine.
package metrics

// MeterName is the instrumentation scope of every instrument in this service.
const MeterName = "shipments"

const (
	// HTTPRequests counts handled HTTP requests.
	HTTPRequests = "http.server.requests"
	// HTTPRequestDuration records HTTP request latency in seconds.
	HTTPRequestDuration = "http.server.request.duration"
	// Mutations counts committed and rejected engine mutations per operation and outcome.
	Mutations = "shipments.mutations"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
