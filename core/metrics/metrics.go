// Package metrics holds the Prometheus collectors of the ingest pipeline.
//
// Collectors are registered on the default registry and served by the
// /metrics route of the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog_ingest"

var (
	// RowsTotal counts decoded rows by outcome (accepted, rejected).
	RowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_total",
			Help:      "Total number of extract rows by outcome",
		},
		[]string{"outcome"},
	)

	// RunsTotal counts finished extraction runs by status.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of extraction runs by final status",
		},
		[]string{"status"},
	)

	// FlushesTotal counts queue flushes by trigger and outcome.
	FlushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flushes_total",
			Help:      "Total number of batch queue flushes",
		},
		[]string{"trigger", "outcome"},
	)

	// FlushDuration observes flush latency.
	FlushDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flush_duration_seconds",
			Help:      "Batch queue flush duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// FamilyCacheEntries tracks the known-family cache size summed over all
	// live queues. The cache is never evicted during a run.
	FamilyCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "family_cache_entries",
			Help:      "Number of known family records held by running extractions",
		},
	)

	// ItemAPIRequestsTotal counts outbound item API requests.
	ItemAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "itemapi_requests_total",
			Help:      "Total number of item API requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// ItemAPIInFlight is the number of admitted outbound requests.
	ItemAPIInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "itemapi_requests_in_flight",
			Help:      "Number of item API requests currently in flight",
		},
	)
)
