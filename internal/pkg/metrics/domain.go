package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DeliveryStatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_status_transitions_total",
			Help: "Committed delivery status transitions by target status",
		},
		[]string{"status"},
	)

	PaymentOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_outcomes_total",
			Help: "Processed payment results by resulting payment status",
		},
		[]string{"status"},
	)

	NotifierSinkFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifier_sink_failures_total",
			Help: "Status events that a notifier sink failed to deliver",
		},
		[]string{"sink"},
	)
)
