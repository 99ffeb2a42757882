package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.Generated("seeded")
	rec.Generated("seeded")
	rec.Generated("random")
	rec.Configured("seeded")

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.GeneratedVec().WithLabelValues("seeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.GeneratedVec().WithLabelValues("random")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.ConfiguredVec().WithLabelValues("seeded")))

	expected := `
# HELP localuuid_configured_total Number of generator rebinds, by resulting mode.
# TYPE localuuid_configured_total counter
localuuid_configured_total{mode="seeded"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "localuuid_configured_total"))
}

func TestRecorder_SameRegistrySharesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewRecorder(reg)
	require.NoError(t, err)
	second, err := NewRecorder(reg)
	require.NoError(t, err)

	first.Generated("random")
	second.Generated("random")

	assert.Same(t, first.GeneratedVec(), second.GeneratedVec())
	assert.Equal(t, 2.0, testutil.ToFloat64(first.GeneratedVec().WithLabelValues("random")))
	count, err := testutil.GatherAndCount(reg, "localuuid_generated_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generated_total",
		Help:      "Something else.",
	}, []string{"kind"}))

	rec, err := NewRecorder(reg)
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Contains(t, err.Error(), "localuuid_generated_total")
}

func TestRecorder_Unregistered(t *testing.T) {
	rec, err := NewRecorder(nil)
	require.NoError(t, err)
	rec.Generated("random")
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.GeneratedVec().WithLabelValues("random")))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.Generated("random")
		rec.Configured("random")
	})
}

func TestSetRegisterer(t *testing.T) {
	prev := Registerer()
	t.Cleanup(func() { SetRegisterer(prev) })

	reg := prometheus.NewRegistry()
	SetRegisterer(reg)
	assert.Same(t, reg, Registerer())

	rec, err := Default()
	require.NoError(t, err)
	rec.Generated("seeded")

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, rec, again)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.GeneratedVec().WithLabelValues("seeded")))

	other := prometheus.NewRegistry()
	SetRegisterer(other)
	moved, err := Default()
	require.NoError(t, err)
	assert.NotSame(t, rec, moved)
	count, err := testutil.GatherAndCount(other)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDefault_RegistrationFailure(t *testing.T) {
	prev := Registerer()
	t.Cleanup(func() { SetRegisterer(prev) })

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "configured_total",
		Help:      "Something else.",
	}))
	SetRegisterer(reg)

	rec, err := Default()
	require.Error(t, err)
	require.NotNil(t, rec)
	rec.Configured("random")

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, rec, again)
}
