package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestImportMetrics_CountsByLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewImportMetrics(reg)

	m.ArtifactProcessed("sepolia", OutcomeImported)
	m.ArtifactProcessed("sepolia", OutcomeImported)
	m.ArtifactProcessed("sepolia", OutcomeFailed)
	m.NetworkProcessed(OutcomeImported)
	m.DiamondDiscovered("sepolia")
	m.ChainRead("getSymbols", OutcomeFailed)
	m.ObserveNetwork("sepolia", time.Now().Add(-time.Second))

	require.Equal(t, 2.0, testutil.ToFloat64(m.artifacts.WithLabelValues("sepolia", OutcomeImported)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.artifacts.WithLabelValues("sepolia", OutcomeFailed)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.networks.WithLabelValues(OutcomeImported)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.diamonds.WithLabelValues("sepolia")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.chainReads.WithLabelValues("getSymbols", OutcomeFailed)))
	require.Equal(t, 1, testutil.CollectAndCount(m.networkDuration))
}

func TestImportMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *ImportMetrics
	require.NotPanics(t, func() {
		m.ArtifactProcessed("x", OutcomeImported)
		m.NetworkProcessed(OutcomeFailed)
		m.DiamondDiscovered("x")
		m.ChainRead("getSymbols", OutcomeImported)
		m.ObserveNetwork("x", time.Now())
	})
}

func TestNewImportMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewImportMetrics(reg)
	require.Panics(t, func() { NewImportMetrics(reg) })
}
