package observable

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "observable"

type metrics struct {
	publishes     prometheus.Counter
	computations  prometheus.Counter
	asyncResults  *prometheus.CounterVec
	subscriptions prometheus.Gauge
}

func newMetrics() *metrics {
	return &metrics{
		publishes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "publishes_total",
			Help:      "Publish passes run across all cells.",
		}),
		computations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "computations_total",
			Help:      "Tracked computation passes run.",
		}),
		asyncResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "async_results_total",
			Help:      "Async computation results by outcome.",
		}, []string{"outcome"}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "subscriptions",
			Help:      "Live subscriptions, including dependency subscriptions.",
		}),
	}
}

// register adds the collectors to reg. Systems sharing a registerer share
// the collectors registered first, so their counts add up.
func (m *metrics) register(reg prometheus.Registerer) {
	m.publishes = registerOrReuse(reg, m.publishes)
	m.computations = registerOrReuse(reg, m.computations)
	m.asyncResults = registerOrReuse(reg, m.asyncResults)
	m.subscriptions = registerOrReuse(reg, m.subscriptions)
}

func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	err := reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}
	panic(err)
}
