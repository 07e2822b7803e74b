package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "deploysync"

// Outcome labels used on the import counters.
const (
	OutcomeImported = "imported"
	OutcomeFailed   = "failed"
	OutcomeSkipped  = "skipped"
)

// ImportMetrics collects counters for the artifact import pipeline.
// A nil *ImportMetrics is valid and records nothing.
type ImportMetrics struct {
	artifacts       *prometheus.CounterVec
	networks        *prometheus.CounterVec
	diamonds        *prometheus.CounterVec
	chainReads      *prometheus.CounterVec
	networkDuration *prometheus.HistogramVec
}

// NewImportMetrics creates the collectors and registers them on reg.
func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	m := &ImportMetrics{
		artifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_total",
			Help:      "Deployment artifacts processed, by network and outcome.",
		}, []string{"network", "outcome"}),
		networks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "networks_total",
			Help:      "Network import passes, by outcome.",
		}, []string{"outcome"}),
		diamonds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diamonds_discovered_total",
			Help:      "Diamond instances discovered through factory contracts.",
		}, []string{"network"}),
		chainReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_reads_total",
			Help:      "Factory RPC reads, by method and outcome.",
		}, []string{"method", "outcome"}),
		networkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "network_import_duration_seconds",
			Help:      "Wall time of one network import pass.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}, []string{"network"}),
	}
	if reg != nil {
		reg.MustRegister(m.artifacts, m.networks, m.diamonds, m.chainReads, m.networkDuration)
	}
	return m
}

func (m *ImportMetrics) ArtifactProcessed(network, outcome string) {
	if m == nil {
		return
	}
	m.artifacts.WithLabelValues(network, outcome).Inc()
}

func (m *ImportMetrics) NetworkProcessed(outcome string) {
	if m == nil {
		return
	}
	m.networks.WithLabelValues(outcome).Inc()
}

func (m *ImportMetrics) DiamondDiscovered(network string) {
	if m == nil {
		return
	}
	m.diamonds.WithLabelValues(network).Inc()
}

func (m *ImportMetrics) ChainRead(method, outcome string) {
	if m == nil {
		return
	}
	m.chainReads.WithLabelValues(method, outcome).Inc()
}

// ObserveNetwork records how long a network import took.
func (m *ImportMetrics) ObserveNetwork(network string, started time.Time) {
	if m == nil {
		return
	}
	m.networkDuration.WithLabelValues(network).Observe(time.Since(started).Seconds())
}
