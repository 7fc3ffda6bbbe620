package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Scan metrics
	ScanRunsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_runs_started_total",
			Help: "Total number of link scan runs started",
		},
		[]string{"mode"},
	)

	ScanRunsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_runs_finished_total",
			Help: "Total number of link scan runs finished",
		},
		[]string{"mode", "status"},
	)

	ScanItemsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scan_items_processed_total",
			Help: "Total number of content items processed by scans",
		},
		[]string{"content_type"},
	)

	LinksApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "links_applied_total",
			Help: "Total number of link edges written by auto-apply or bulk apply",
		},
		[]string{"source"},
	)

	// Cluster metrics
	ClusterGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cluster_generations_total",
			Help: "Total number of cluster generations by outcome",
		},
		[]string{"outcome"},
	)

	ClusterItemsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cluster_items_published_total",
			Help: "Total number of cluster items published as content",
		},
		[]string{"content_type"},
	)

	// Generation metrics
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "generation_duration_seconds",
			Help:    "LLM generation call duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"purpose", "outcome"},
	)

	GenerationTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_tokens_total",
			Help: "Total number of LLM tokens consumed",
		},
		[]string{"direction"},
	)

	// Link health gauges, refreshed on every analysis
	LinkHealthScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "link_health_score",
			Help: "Latest computed link health score (0-100)",
		},
	)

	OrphanedContent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "link_health_orphaned_content",
			Help: "Latest number of published content nodes without incoming links",
		},
	)
)

// Event bus metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_messages_published_total",
			Help: "Total number of event bus messages published",
		},
		[]string{"topic", "status"},
	)

	EventsHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_messages_handled_total",
			Help: "Total number of event bus messages handled by outcome (ok, retry, dlq, dropped)",
		},
		[]string{"topic", "outcome"},
	)
)
