// Package metrics exposes the Prometheus collectors localuuid maintains.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/RRWM1rr0rB/localuuid/errors"
)

const namespace = "localuuid"

var (
	mu         sync.Mutex
	registerer prometheus.Registerer = prometheus.DefaultRegisterer
	shared     *Recorder
)

// SetRegisterer sets the registerer used by Default. The next call to
// Default registers the collectors on r.
func SetRegisterer(r prometheus.Registerer) {
	mu.Lock()
	defer mu.Unlock()
	registerer = r
	shared = nil
}

// Registerer returns the registerer used by Default.
func Registerer() prometheus.Registerer {
	mu.Lock()
	defer mu.Unlock()
	return registerer
}

// Default returns the Recorder registered on the current Registerer,
// creating it on first use. If registration fails the error is returned once
// and an unregistered Recorder is used until SetRegisterer is called again.
func Default() (*Recorder, error) {
	mu.Lock()
	defer mu.Unlock()
	if shared != nil {
		return shared, nil
	}
	rec, err := NewRecorder(registerer)
	if err != nil {
		shared, _ = NewRecorder(nil)
		return shared, err
	}
	shared = rec
	return shared, nil
}

// Metric types (aliases from Prometheus).
type (
	CounterOpts = prometheus.CounterOpts
	CounterVec  = prometheus.CounterVec
)

// NewCounterVec creates a CounterVec registered on r. A nil r leaves the
// collector unregistered. If an identical collector is already registered
// on r, that one is returned instead.
func NewCounterVec(r prometheus.Registerer, opts CounterOpts, labels []string) (*CounterVec, error) {
	vec := prometheus.NewCounterVec(opts, labels)
	if r == nil {
		return vec, nil
	}
	if err := r.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*CounterVec); ok {
				return existing, nil
			}
		}
		return nil, errors.Wrap(err, "metrics: register "+prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name))
	}
	return vec, nil
}

// Recorder counts identifier generation and configuration per mode.
type Recorder struct {
	generated  *CounterVec
	configured *CounterVec
}

// NewRecorder creates a Recorder whose collectors are registered on r.
// Recorders created on the same registerer share their collectors.
func NewRecorder(r prometheus.Registerer) (*Recorder, error) {
	generated, err := NewCounterVec(r, CounterOpts{
		Namespace: namespace,
		Name:      "generated_total",
		Help:      "Number of identifiers generated, by generation mode.",
	}, []string{"mode"})
	if err != nil {
		return nil, err
	}
	configured, err := NewCounterVec(r, CounterOpts{
		Namespace: namespace,
		Name:      "configured_total",
		Help:      "Number of generator rebinds, by resulting mode.",
	}, []string{"mode"})
	if err != nil {
		return nil, err
	}
	return &Recorder{generated: generated, configured: configured}, nil
}

// Generated records one generated identifier.
func (r *Recorder) Generated(mode string) {
	if r == nil {
		return
	}
	r.generated.WithLabelValues(mode).Inc()
}

// Configured records one rebind.
func (r *Recorder) Configured(mode string) {
	if r == nil {
		return
	}
	r.configured.WithLabelValues(mode).Inc()
}

// GeneratedVec returns the generation counter.
func (r *Recorder) GeneratedVec() *CounterVec { return r.generated }

// ConfiguredVec returns the configuration counter.
func (r *Recorder) ConfiguredVec() *CounterVec { return r.configured }
