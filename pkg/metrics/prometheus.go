// Package metrics provides Prometheus metrics for the simulation toolkit.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default bucket layout for trial-value histograms. Trial statistics range
// from unit-scale maxima to height-scale means, so the spread is wide.
var defaultValueBuckets = []float64{0.5, 1, 2.5, 5, 7.5, 10, 25, 50, 100, 150, 200, 250} //nolint:gochecknoglobals // shared default bucket layout

// Manager manages all Prometheus metrics for the simulation toolkit.
type Manager struct {
	namespace       string
	subsystem       string
	durationBuckets []float64
	valueBuckets    []float64
	enabled         bool
	registry        prometheus.Registerer

	// Trial metrics
	trialsCompleted prometheus.Counter
	trialFailures   prometheus.Counter
	trialValues     *prometheus.HistogramVec

	// Study metrics
	studiesCompleted    prometheus.Counter
	studyFailures       prometheus.Counter
	studyDuration       *prometheus.HistogramVec
	trialCollectionSize *prometheus.GaugeVec
	findingValues       *prometheus.GaugeVec

	// Run metrics
	lastRunSeed prometheus.Gauge
	lastRunUnix prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:       "st21",
		subsystem:       "sim",
		durationBuckets: prometheus.DefBuckets,
		valueBuckets:    defaultValueBuckets,
		enabled:         true,
		registry:        prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Trial metrics
	m.trialsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trials_completed_total",
		Help:      "Total number of trials completed across all studies",
	})

	m.trialFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trial_failures_total",
		Help:      "Total number of trial functions that returned an error",
	})

	m.trialValues = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "trial_values",
			Help:      "Distribution of trial statistics by study",
			Buckets:   m.valueBuckets,
		},
		[]string{"study"},
	)

	// Study metrics
	m.studiesCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "studies_completed_total",
		Help:      "Total number of studies run to completion",
	})

	m.studyFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "study_failures_total",
		Help:      "Total number of studies aborted by an error",
	})

	m.studyDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "study_duration_seconds",
			Help:      "Wall-clock duration of a full study run in seconds",
			Buckets:   m.durationBuckets,
		},
		[]string{"study"},
	)

	m.trialCollectionSize = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "trial_collection_size",
			Help:      "Number of trial results collected in the last run of a study",
		},
		[]string{"study"},
	)

	m.findingValues = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "finding_value",
			Help:      "Headline findings of the last run of a study (quantiles, standard errors)",
		},
		[]string{"study", "finding"},
	)

	// Run metrics
	m.lastRunSeed = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_seed",
		Help:      "Random seed of the most recent run (for replaying a run)",
	})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_unix",
		Help:      "Unix timestamp of the most recent completed study",
	})
}

// RecordTrials adds n completed trials for a study and observes each value.
func RecordTrials(study string, values []float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.trialsCompleted.Add(float64(len(values)))
	h := globalManager.trialValues.WithLabelValues(study)
	for _, v := range values {
		h.Observe(v)
	}
	globalManager.trialCollectionSize.WithLabelValues(study).Set(float64(len(values)))
}

// RecordTrialFailure increments the trial failure counter.
func RecordTrialFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.trialFailures.Inc()
}

// RecordStudyCompleted marks a study as finished and records its duration.
func RecordStudyCompleted(study string, duration time.Duration) {
	if !globalManager.enabled {
		return
	}
	globalManager.studiesCompleted.Inc()
	globalManager.studyDuration.WithLabelValues(study).Observe(duration.Seconds())
	globalManager.lastRunUnix.Set(float64(time.Now().Unix()))
}

// RecordStudyFailure increments the study failure counter.
func RecordStudyFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.studyFailures.Inc()
}

// RecordFinding publishes a headline finding of a study run.
func RecordFinding(study, finding string, value float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.findingValues.WithLabelValues(study, finding).Set(value)
}

// UpdateRunSeed sets the seed gauge for the current run.
func UpdateRunSeed(seed int64) {
	if !globalManager.enabled {
		return
	}
	globalManager.lastRunSeed.Set(float64(seed))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
