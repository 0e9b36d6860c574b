package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	preferencesFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "preferences",
		Name:      "flush_total",
		Help:      "Count of preference batches written.",
	}, []string{"status"})

	preferencesFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "preferences",
		Name:      "flush_duration_seconds",
		Help:      "Duration of writing a preference batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	preferencesFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "preferences",
		Name:      "flush_size",
		Help:      "Number of fields written per preference batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})
)

// Preferences tracks writes of bookmark and notification flags.
type Preferences struct{}

// NewPreferences constructs a Preferences metrics collector.
func NewPreferences() *Preferences {
	return &Preferences{}
}

// ObserveFlush records a batch write outcome, size and duration.
func (m Preferences) ObserveFlush(err error, size int, started time.Time) {
	status := statusOf(err)
	preferencesFlushTotal.WithLabelValues(status).Inc()
	preferencesFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	preferencesFlushSize.Observe(float64(size))
}
