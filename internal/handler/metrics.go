package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	paymentEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of successfully processed payment provider events",
		},
	)

	paymentEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	paymentEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	checkoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "http",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts",
		},
		[]string{"status"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "marketplace_orders",
			Subsystem: "http",
			Name:      "checkout_duration_seconds",
			Help:      "Histogram of successful checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	statusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace_orders",
			Subsystem: "http",
			Name:      "status_transitions_total",
			Help:      "Total number of order status transitions by target status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		paymentEventsProcessed,
		paymentEventsFailed,
		paymentEventsDLQ,
		commitErrors,

		checkoutsTotal,
		checkoutDuration,
		statusTransitionsTotal,
	)
}
