// Package metrics exposes quiz counters for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "conjugar"

// Metrics implements the quiz service's counters.
type Metrics struct {
	started   prometheus.Counter
	completed prometheus.Counter
	abandoned prometheus.Counter
	answers   *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the quiz counters on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_started_total",
			Help:      "Number of quiz sessions started.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_completed_total",
			Help:      "Number of quiz sessions answered to the end.",
		}),
		abandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quizzes_abandoned_total",
			Help:      "Number of quiz sessions stopped, replaced or expired.",
		}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Number of checked answers by result.",
		}, []string{"result"}),
		gatherer: reg,
	}

	reg.MustRegister(m.started, m.completed, m.abandoned, m.answers)

	return m
}

func (m *Metrics) QuizStarted()   { m.started.Inc() }
func (m *Metrics) QuizCompleted() { m.completed.Inc() }
func (m *Metrics) QuizAbandoned() { m.abandoned.Inc() }

func (m *Metrics) AnswerChecked(correct bool) {
	result := "wrong"
	if correct {
		result = "correct"
	}
	m.answers.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
