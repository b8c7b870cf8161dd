// Package metric provides Prometheus metrics for RoomStore.
//
// It exposes metrics in Prometheus format for monitoring store operation
// rates, collection sizes, snapshot persistence, and HTTP request
// latencies.
package metric
