package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Store metrics
	StoreOperations *prometheus.CounterVec

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Persistence metrics
	SnapshotSaves    *prometheus.CounterVec
	SnapshotDuration prometheus.Histogram
}

// NewRegistry creates a new metrics registry with all collectors
// registered, including the standard Go runtime and process collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		registry: reg,
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomstore_store_operations_total",
			Help: "Store operations by name and outcome.",
		}, []string{"op", "status"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomstore_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roomstore_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SnapshotSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomstore_snapshot_saves_total",
			Help: "Snapshot save attempts by outcome.",
		}, []string{"status"}),
		SnapshotDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "roomstore_snapshot_save_duration_seconds",
			Help:    "Snapshot save latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		r.StoreOperations,
		r.RequestsTotal,
		r.RequestDuration,
		r.SnapshotSaves,
		r.SnapshotDuration,
	)

	return r
}

// ObserveStoreOp records one store operation and its outcome. Matches
// the service's observer hook signature.
func (r *Registry) ObserveStoreOp(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.StoreOperations.WithLabelValues(op, status).Inc()
}

// RegisterStats exposes the store's collection sizes as gauges. The stats
// function is called on every scrape.
func (r *Registry) RegisterStats(stats func() (users, rooms, sessions int)) {
	r.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "roomstore_users",
			Help: "Number of registered users.",
		}, func() float64 {
			u, _, _ := stats()
			return float64(u)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "roomstore_rooms",
			Help: "Number of rooms.",
		}, func() float64 {
			_, rm, _ := stats()
			return float64(rm)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "roomstore_active_sessions",
			Help: "Number of unexpired login sessions.",
		}, func() float64 {
			_, _, s := stats()
			return float64(s)
		}),
	)
}

// Handler returns an HTTP handler serving this registry in Prometheus
// exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
