package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	// StoreMutations counts create/update/delete calls against the data store.
	StoreMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_store_mutations_total",
			Help: "Total number of data store mutations",
		},
		[]string{"entity", "operation", "status"},
	)
	// FeedClients is the number of connected live feed clients.
	FeedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_feed_clients",
			Help: "Number of connected live feed websocket clients",
		},
	)
)

// ObserveMutation records the outcome of a store mutation.
func ObserveMutation(entity, operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	StoreMutations.WithLabelValues(entity, operation, status).Inc()
}

// Handler returns the Prometheus HTTP handler for /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
