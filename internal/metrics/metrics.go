// Package metrics exposes prometheus instrumentation for the notification
// relay. Counters are registered on the default registry via promauto.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Buckets for delivery duration, 5ms up to the 30s provider timeout.
var durationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

var (
	// NotificationsSent counts notifications accepted by the mail provider.
	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_notifications_sent_total",
		Help: "Total number of payment notifications delivered to the mail provider.",
	})

	// NotificationsFailed counts delivery attempts rejected by the provider
	// or lost to transport failures.
	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_notifications_failed_total",
		Help: "Total number of payment notification deliveries that failed.",
	})

	// DeliveryDuration measures the duration of outbound delivery attempts.
	DeliveryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_notification_delivery_duration_seconds",
			Help:    "Histogram of outbound delivery duration in seconds, by success status.",
			Buckets: durationBuckets,
		},
		[]string{"success"},
	)
)

// Handler returns the HTTP handler for the prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveDelivery records the outcome and duration of one delivery attempt.
func ObserveDelivery(success bool, start time.Time) {
	successStr := "false"
	if success {
		successStr = "true"
	}
	DeliveryDuration.WithLabelValues(successStr).Observe(time.Since(start).Seconds())
}
