package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"vitae-hq/vitae/pkg/report"
)

// Validation tracks counters and timings for validation runs.
type Validation struct {
	registry *prometheus.Registry

	// validationsTotal counts runs by outcome ("valid" or "invalid").
	validationsTotal *prometheus.CounterVec

	// errorsTotal counts individual schema violations across all runs.
	errorsTotal prometheus.Counter

	// warningsTotal counts individual warnings across all runs.
	warningsTotal prometheus.Counter

	// unknownTotal counts unknown fields reported across all runs.
	unknownTotal prometheus.Counter

	// duration observes how long each validation run took.
	duration prometheus.Histogram
}

// NewValidation creates validation metrics on a dedicated registry.
func NewValidation() *Validation {
	return NewValidationWithRegistry(prometheus.NewRegistry())
}

// NewValidationWithRegistry creates validation metrics registered on the
// given registry.
func NewValidationWithRegistry(registry *prometheus.Registry) *Validation {
	v := &Validation{
		registry: registry,

		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vitae_validations_total",
				Help: "Total number of validation runs by outcome.",
			},
			[]string{"outcome"},
		),

		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitae_validation_errors_total",
			Help: "Total number of schema violations across all runs.",
		}),

		warningsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitae_validation_warnings_total",
			Help: "Total number of warnings across all runs.",
		}),

		unknownTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitae_unknown_fields_total",
			Help: "Total number of unknown fields reported across all runs.",
		}),

		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vitae_validation_duration_seconds",
			Help:    "Duration of validation runs in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
	}

	registry.MustRegister(
		v.validationsTotal,
		v.errorsTotal,
		v.warningsTotal,
		v.unknownTotal,
		v.duration,
	)

	return v
}

// Observe records the outcome of one validation run.
func (v *Validation) Observe(result *report.Result, elapsed time.Duration) {
	if result == nil {
		return
	}

	outcome := "valid"
	if !result.Valid {
		outcome = "invalid"
	}
	v.validationsTotal.WithLabelValues(outcome).Inc()

	v.errorsTotal.Add(float64(len(result.Errors())))
	v.warningsTotal.Add(float64(len(result.Warnings())))
	v.unknownTotal.Add(float64(len(result.UnknownFields)))

	v.duration.Observe(elapsed.Seconds())
}

// Registry returns the underlying registry, for callers that want to
// register additional collectors alongside the validation metrics.
func (v *Validation) Registry() *prometheus.Registry {
	return v.registry
}
