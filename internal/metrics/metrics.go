// Package metrics holds the Prometheus collectors and the alert -> time-series
// extraction used by the ingestion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "alertdesk"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

var (
	AlertFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "fetch_failures_total",
			Help:      "Alert log fetches that failed or returned a non-array payload",
		},
	)

	AlertRecordsAggregated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "records_aggregated_total",
			Help:      "Alert records fed through the dashboard aggregations",
		},
	)

	AlertsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "alerts",
			Name:      "ingested_total",
			Help:      "Alert records published by the ingestion tailer",
		},
	)
)

var (
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Form submit attempts by form and outcome",
		},
		[]string{"form", "outcome"},
	)

	FollowUpFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "followup_fetches_total",
			Help:      "Follow-up question fetches by outcome",
		},
		[]string{"outcome"},
	)
)
