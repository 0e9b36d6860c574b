// Package metrics exposes Prometheus collectors for the sync client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/devnet-explorer/internal/model"
)

const namespace = "devnet_explorer"

var (
	transportRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "requests_total",
		Help:      "Count of requests sent to the devnet backend.",
	}, []string{"variant", "status"})

	transportRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "request_duration_seconds",
		Help:      "Duration of encoding and writing a request.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"variant", "status"})

	transportUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "updates_total",
		Help:      "Count of updates received from the devnet backend.",
	}, []string{"variant", "status"})

	transportDialsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "dials_total",
		Help:      "Count of connection attempts to the devnet backend.",
	}, []string{"status"})

	transportDialDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "transport",
		Name:      "dial_duration_seconds",
		Help:      "Duration of connection attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Transport tracks metrics for the socket adapter.
type Transport struct{}

// NewTransport constructs a Transport metrics collector.
func NewTransport() *Transport {
	return &Transport{}
}

// ObserveSend records one outbound request.
func (m Transport) ObserveSend(kind model.RequestKind, err error, started time.Time) {
	status := statusOf(err)
	variant := labelOrUnknown(string(kind))
	transportRequestsTotal.WithLabelValues(variant, status).Inc()
	transportRequestDuration.WithLabelValues(variant, status).Observe(time.Since(started).Seconds())
}

// ObserveUpdate records one inbound frame; kind is empty when it could not be decoded.
func (m Transport) ObserveUpdate(kind model.UpdateKind, err error) {
	transportUpdatesTotal.WithLabelValues(labelOrUnknown(string(kind)), statusOf(err)).Inc()
}

// ObserveDial records one connection attempt.
func (m Transport) ObserveDial(err error, started time.Time) {
	status := statusOf(err)
	transportDialsTotal.WithLabelValues(status).Inc()
	transportDialDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
