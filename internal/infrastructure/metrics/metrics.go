package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/ports"
)

// Metrics collects service-level counters and document gauges. A nil
// *Metrics is valid and records nothing, so callers that disable metrics
// pass nil instead of branching.
type Metrics struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	tasks      *prometheus.GaugeVec
	categories prometheus.Gauge
}

// New creates a metrics collector backed by its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taskpanel",
			Name:      "service_operations_total",
			Help:      "Data access service operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		tasks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "taskpanel",
			Name:      "tasks",
			Help:      "Tasks currently stored, by status.",
		}, []string{"status"}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "taskpanel",
			Name:      "categories",
			Help:      "Categories currently stored.",
		}),
	}

	m.registry.MustRegister(m.operations, m.tasks, m.categories)
	return m
}

// Registry exposes the underlying registry for an outer exposition layer.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordOperation counts one service operation and its outcome.
func (m *Metrics) RecordOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveDocument refreshes the document gauges after a mutation.
func (m *Metrics) ObserveDocument(doc ports.Document) {
	if m == nil {
		return
	}

	counts := map[entities.TaskStatus]int{
		entities.StatusInProgress: 0,
		entities.StatusCompleted:  0,
		entities.StatusAbandoned:  0,
	}
	for _, task := range doc.Tasks {
		counts[task.Status]++
	}
	for status, count := range counts {
		m.tasks.WithLabelValues(string(status)).Set(float64(count))
	}

	m.categories.Set(float64(len(doc.Categories)))
}
