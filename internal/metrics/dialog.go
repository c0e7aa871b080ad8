// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instrumentation for the dialog service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dialogRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexhook_dialog_requests_total",
		Help: "Dialog events processed, by intent and resulting dialog action",
	}, []string{"intent", "action"})

	dialogFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexhook_dialog_failures_total",
		Help: "Dialog events rejected before a dialog action was produced",
	}, []string{"reason"})

	dialogDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lexhook_dialog_duration_seconds",
		Help:    "Duration of dialog event handling in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2.0, 12), // 0.5ms .. ~1s
	})

	validationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexhook_validation_failures_total",
		Help: "Slot validation failures, by violated slot",
	}, []string{"slot"})

	adviceServedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lexhook_advice_served_total",
		Help: "Portfolio recommendations served, by risk level",
	}, []string{"risk_level"})
)

func RecordDialogRequest(intent, action string, duration time.Duration) {
	dialogRequestsTotal.WithLabelValues(intent, action).Inc()
	dialogDuration.Observe(duration.Seconds())
}

func RecordDialogFailure(reason string) {
	dialogFailuresTotal.WithLabelValues(reason).Inc()
}

func RecordValidationFailure(slot string) {
	validationFailuresTotal.WithLabelValues(slot).Inc()
}

func RecordAdviceServed(riskLevel string) {
	adviceServedTotal.WithLabelValues(riskLevel).Inc()
}
