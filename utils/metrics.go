package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the Prometheus collectors of the booking agent.
type Metrics struct {
	ChatTurns            *prometheus.CounterVec
	LLMDuration          prometheus.Histogram
	BookingsCreated      prometheus.Counter
	BookingConflicts     prometheus.Counter
	NotificationFailures *prometheus.CounterVec
}

var (
	appMetrics  *Metrics
	metricsOnce sync.Once
)

// NewMetrics registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChatTurns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agent_chat_turns_total",
			Help: "Processed chat turns by reply status",
		}, []string{"status"}),

		LLMDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agent_llm_request_duration_seconds",
			Help:    "Latency of intent extractor calls",
			Buckets: prometheus.DefBuckets,
		}),

		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "agent_bookings_created_total",
			Help: "Bookings committed",
		}),

		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "agent_booking_conflicts_total",
			Help: "Commit attempts rejected because the slot was already taken",
		}),

		NotificationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agent_notification_failures_total",
			Help: "Notification deliveries that failed, by channel",
		}, []string{"channel"}),
	}
}

// GetMetrics returns the process-wide metrics registered on the default registry.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		appMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return appMetrics
}
