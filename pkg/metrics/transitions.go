// Package metrics expone métricas Prometheus de las transiciones del dominio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome clasifica el error de una transición en una etiqueta de baja cardinalidad.
type Outcome func(err error) string

// TransitionMetrics cuenta transiciones por operación y resultado y mide su duración.
// Un valor nil (o sin registrar) es válido y no hace nada.
type TransitionMetrics struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
	classify Outcome
}

// NewTransitionMetrics registra las métricas en reg. Con reg nil devuelve un recolector inerte.
func NewTransitionMetrics(reg prometheus.Registerer, classify Outcome) *TransitionMetrics {
	if classify == nil {
		classify = defaultOutcome
	}
	if reg == nil {
		return &TransitionMetrics{classify: classify}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_transition_duration_seconds",
		Help:    "Duration of store transitions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_transitions_total",
		Help: "Store transitions by operation and outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(duration, total)
	return &TransitionMetrics{
		duration: duration,
		total:    total,
		classify: classify,
	}
}

// Observe registra una transición terminada.
func (m *TransitionMetrics) Observe(operation string, err error, seconds float64) {
	if m == nil || m.total == nil {
		return
	}
	op := normalizeLabel(operation)
	m.duration.WithLabelValues(op).Observe(seconds)
	m.total.WithLabelValues(op, m.classify(err)).Inc()
}

func defaultOutcome(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
