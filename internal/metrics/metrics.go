package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "dont_forget_"

// Metrics - счетчики трекера
type Metrics struct {
	Evaluations     prometheus.Counter
	Transitions     *prometheus.CounterVec
	Notifications   *prometheus.CounterVec
	StorageFailures prometheus.Counter
	TrackedItems    prometheus.Gauge
	AwayItems       prometheus.Gauge
}

// New создает метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "evaluations_total",
			Help: "Proximity evaluations performed",
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "transitions_total",
			Help: "Item state transitions by direction",
		}, []string{"direction"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricPrefix + "notifications_total",
			Help: "Notifications by type and delivery channel",
		}, []string{"type", "channel"}),
		StorageFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "storage_failures_total",
			Help: "Failed attempts to persist the item collection",
		}),
		TrackedItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "tracked_items",
			Help: "Items in the collection",
		}),
		AwayItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "away_items",
			Help: "Items currently out of range",
		}),
	}

	reg.MustRegister(
		m.Evaluations,
		m.Transitions,
		m.Notifications,
		m.StorageFailures,
		m.TrackedItems,
		m.AwayItems,
	)
	return m
}

// NewNop создает метрики без регистрации, для тестов
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
