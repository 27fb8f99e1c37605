// Package metrics provides Prometheus metrics for the productivity
// scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scoring metrics
	scoreComputations     prometheus.Counter
	scoringFailures       prometheus.Counter
	scoringLatency        prometheus.Histogram
	categoryFetchFailures *prometheus.CounterVec

	// Batch metrics
	batchRuns        prometheus.Counter
	batchLatency     prometheus.Histogram
	populationSize   prometheus.Gauge
	batchConcurrency prometheus.Gauge

	// Snapshot cache metrics
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "facultyrank",
		subsystem:        "scoring",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.scoreComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "score_computations_total",
		Help:      "Total number of per-user score breakdowns computed",
	})

	m.scoringFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_failures_total",
		Help:      "Total number of whole-user computations degraded to a zero breakdown",
	})

	m.scoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_latency_milliseconds",
		Help:      "Histogram of per-user scoring latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.categoryFetchFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_fetch_failures_total",
		Help:      "Total number of category fetches degraded to an empty list",
	}, []string{"category"})

	m.batchRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_runs_total",
		Help:      "Total number of population scoring batches executed",
	})

	m.batchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_latency_milliseconds",
		Help:      "Histogram of population batch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.populationSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "population_size",
		Help:      "Number of eligible users in the last scored population",
	})

	m.batchConcurrency = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_concurrency",
		Help:      "Configured concurrency ceiling for population batches",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_cache_hits_total",
		Help:      "Total number of rank requests served from the population snapshot cache",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_cache_misses_total",
		Help:      "Total number of rank requests that triggered a fresh batch",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// Package-level helpers over the global manager.

// RecordScoreComputed increments the per-user scoring counter.
func RecordScoreComputed() {
	globalManager.scoreComputations.Inc()
}

// RecordScoringFailure counts a whole-user computation degraded to zero.
func RecordScoringFailure() {
	globalManager.scoringFailures.Inc()
}

// RecordScoringLatency records one per-user scoring latency sample.
func RecordScoringLatency(latencyMs float64) {
	globalManager.scoringLatency.Observe(latencyMs)
}

// RecordCategoryFetchFailure counts a category fetch degraded to empty.
func RecordCategoryFetchFailure(cat string) {
	globalManager.categoryFetchFailures.WithLabelValues(cat).Inc()
}

// RecordBatchRun records one population batch with its latency.
func RecordBatchRun(latencyMs float64) {
	globalManager.batchRuns.Inc()
	globalManager.batchLatency.Observe(latencyMs)
}

// UpdatePopulationSize sets the size of the last scored population.
func UpdatePopulationSize(size int) {
	globalManager.populationSize.Set(float64(size))
}

// UpdateBatchConcurrency sets the configured batch concurrency ceiling.
func UpdateBatchConcurrency(n int) {
	globalManager.batchConcurrency.Set(float64(n))
}

// RecordCacheHit counts a request served from the snapshot cache.
func RecordCacheHit() {
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss counts a request that forced a fresh batch.
func RecordCacheMiss() {
	globalManager.cacheMisses.Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration sample.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// GetRegistry returns the custom registry serving /healthz expositions.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
