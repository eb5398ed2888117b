package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	ServiceName string
	Environment string
}

// GenerationMetrics tracks proposal generation outcomes.
type GenerationMetrics struct {
	generations        *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	validations        *prometheus.CounterVec
	validationFindings *prometheus.CounterVec
}

// NewGenerationMetrics registers the collectors on registerer
// (prometheus.DefaultRegisterer when nil).
func NewGenerationMetrics(registerer prometheus.Registerer, cfg Config) *GenerationMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "remodeling-proposals"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	generations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "proposal_generations_total",
			Help:        "Proposal generation attempts by model and result.",
			ConstLabels: constLabels,
		},
		[]string{"model", "result"}, // success | failure
	)

	generationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "proposal_generation_duration_seconds",
			Help:        "Latency of the text-generation call.",
			Buckets:     []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 90, 120},
			ConstLabels: constLabels,
		},
		[]string{"model"},
	)

	validations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "proposal_structure_validations_total",
			Help:        "Structural validation results of generated proposals.",
			ConstLabels: constLabels,
		},
		[]string{"model", "valid"},
	)

	validationFindings := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "proposal_structure_findings_total",
			Help:        "Number of structural findings reported for generated proposals.",
			ConstLabels: constLabels,
		},
		[]string{"model"},
	)

	registerer.MustRegister(generations, generationDuration, validations, validationFindings)

	return &GenerationMetrics{
		generations:        generations,
		generationDuration: generationDuration,
		validations:        validations,
		validationFindings: validationFindings,
	}
}

func (m *GenerationMetrics) ObserveGeneration(model string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.generations.WithLabelValues(model, result).Inc()
	m.generationDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}

func (m *GenerationMetrics) ObserveValidation(model string, valid bool, findings int) {
	if m == nil {
		return
	}
	label := "false"
	if valid {
		label = "true"
	}
	m.validations.WithLabelValues(model, label).Inc()
	if findings > 0 {
		m.validationFindings.WithLabelValues(model).Add(float64(findings))
	}
}
