// Package metrics records validation outcomes as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pkordes/itinerary-form/internal/domain"
)

// itineraryScope is the findings label used for the sequence-wide error.
const itineraryScope = "itinerary"

// Recorder implements service.Observer on top of Prometheus collectors.
type Recorder struct {
	validationsTotal *prometheus.CounterVec
	findingsTotal    *prometheus.CounterVec
	legsPerRequest   prometheus.Histogram
}

// NewRecorder registers the collectors with reg.
// Pass a fresh prometheus.NewRegistry() in tests to avoid duplicate
// registration against the global default.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		validationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "itinerary_validations_total",
				Help: "Total number of itinerary validations by outcome",
			},
			[]string{"outcome"},
		),
		findingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "itinerary_findings_total",
				Help: "Total number of validation findings by field",
			},
			[]string{"field"},
		),
		legsPerRequest: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "itinerary_legs",
				Help:    "Number of legs per validated itinerary",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
		),
	}
}

// ObserveValidation records one validation result.
func (r *Recorder) ObserveValidation(res domain.ValidationResult) {
	outcome := "invalid"
	if res.Valid {
		outcome = "valid"
	}
	r.validationsTotal.WithLabelValues(outcome).Inc()
	r.legsPerRequest.Observe(float64(len(res.Legs)))

	for _, le := range res.Legs {
		for field := range le {
			r.findingsTotal.WithLabelValues(string(field)).Inc()
		}
	}
	if res.Itinerary != "" {
		r.findingsTotal.WithLabelValues(itineraryScope).Inc()
	}
}
