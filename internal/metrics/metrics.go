// Package metrics exposes engine activity as Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Rashmi-kavindya/RubiksCube"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	moves    *prometheus.CounterVec
	outcomes *prometheus.CounterVec
	shuffles *prometheus.CounterVec
	resets   prometheus.Counter
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rubikscube_moves_total",
				Help: "Layer turns applied, by move token",
			},
			[]string{"move"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rubikscube_outcomes_total",
				Help: "Move requests, by outcome",
			},
			[]string{"outcome"},
		),
		shuffles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rubikscube_shuffles_total",
				Help: "Shuffles performed, by mode",
			},
			[]string{"mode"},
		),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rubikscube_resets_total",
			Help: "Resets to the solved state",
		}),
	}
	m.registry.MustRegister(m.moves, m.outcomes, m.shuffles, m.resets)
	return m
}

// Observe records one engine event. Register it with Engine.OnEvent.
func (m *Metrics) Observe(ev rubikscube.Event) {
	switch ev.Kind {
	case rubikscube.EventMove:
		m.outcomes.WithLabelValues(ev.Outcome.String()).Inc()
		if ev.Outcome == rubikscube.Applied {
			m.moves.WithLabelValues(ev.Move.String()).Inc()
		}
	case rubikscube.EventShuffle:
		m.shuffles.WithLabelValues(string(ev.Mode)).Inc()
	case rubikscube.EventReset:
		m.resets.Inc()
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
