package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// Metrics exports cache activity to prometheus. It implements
// classname.Observer.
type Metrics struct {
	lookups   *prometheus.CounterVec
	resolvers prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "setclassname",
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by layer and outcome.",
		}, []string{"layer", "outcome"}),
		resolvers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "setclassname",
			Name:      "cached_resolvers",
			Help:      "Number of resolvers held by the cache.",
		}),
	}
	reg.MustRegister(m.lookups, m.resolvers)
	return m
}

// Hit counts a cache hit on layer.
func (m *Metrics) Hit(layer classname.Layer) {
	m.lookups.WithLabelValues(string(layer), "hit").Inc()
}

// Miss counts a miss. Resolvers are never evicted, so every resolver miss
// adds one to the gauge.
func (m *Metrics) Miss(layer classname.Layer) {
	m.lookups.WithLabelValues(string(layer), "miss").Inc()
	if layer == classname.LayerResolver {
		m.resolvers.Inc()
	}
}
