package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dairy_http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dairy_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BillsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dairy_bills_generated_total",
			Help: "Monthly bills generated since process start",
		},
	)

	SnapshotBackupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dairy_snapshot_backups_total",
			Help: "Snapshot backup attempts by result",
		},
		[]string{"result"},
	)
)
