package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	websocketOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "websocket",
		Name:      "operations_total",
		Help:      "Count of websocket connection operations.",
	}, []string{"operation", "status"})
	websocketOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "websocket",
		Name:      "operation_duration_seconds",
		Help:      "Duration of websocket connection operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// Websocket tracks metrics for raw websocket operations.
type Websocket struct{}

// NewWebsocket constructs a Websocket metrics collector.
func NewWebsocket() *Websocket {
	return &Websocket{}
}

// Observe records a single websocket operation outcome and duration.
func (m Websocket) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	websocketOperationsTotal.WithLabelValues(operation, status).Inc()
	websocketOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// Count records an operation outcome without a duration, for operations that
// block on the peer.
func (m Websocket) Count(operation string, err error) {
	websocketOperationsTotal.WithLabelValues(operation, statusOf(err)).Inc()
}
