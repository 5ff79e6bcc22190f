// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Total number of intake submissions by outcome",
		},
		[]string{"outcome"},
	)

	StepFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_step_failures_total",
			Help: "Total number of pipeline step failures",
		},
		[]string{"step", "error_code"},
	)

	StepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intake_step_duration_seconds",
			Help:    "Duration of pipeline steps in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"step"},
	)

	TranslationDegraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_translation_degraded_total",
			Help: "Translations whose model output could not be parsed and was degraded",
		},
	)
)
