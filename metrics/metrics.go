package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics of a run, on a registry of its own
type Metrics struct {
	Registry *prometheus.Registry

	rounds           prometheus.Counter
	directives       *prometheus.CounterVec
	parseFailures    prometheus.Counter
	generateDuration *prometheus.HistogramVec
	generateErrors   *prometheus.CounterVec
}

func (Module) Metrics() *Metrics {
	return New()
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		Registry: registry,
		rounds: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fash_rounds_total",
				Help: "Rounds of the conversation loop",
			},
		),
		directives: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fash_directives_total",
				Help: "Executed directives by kind",
			},
			[]string{"kind"},
		),
		parseFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "fash_parse_failures_total",
				Help: "Model responses that failed to parse",
			},
		),
		generateDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fash_generate_duration_seconds",
				Help:    "Duration of model calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"model"},
		),
		generateErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fash_generate_errors_total",
				Help: "Failed model calls",
			},
			[]string{"model"},
		),
	}
}

func (m *Metrics) IncRound() {
	m.rounds.Inc()
}

func (m *Metrics) IncDirective(kind string) {
	m.directives.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncParseFailure() {
	m.parseFailures.Inc()
}

func (m *Metrics) ObserveGenerate(model string, duration time.Duration, err error) {
	m.generateDuration.WithLabelValues(model).Observe(duration.Seconds())
	if err != nil {
		m.generateErrors.WithLabelValues(model).Inc()
	}
}
