package localuuid

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/RRWM1rr0rB/localuuid/logging"
	"github.com/RRWM1rr0rB/localuuid/random"
)

type config struct {
	seed       random.Seed
	logger     *logging.Logger
	registerer prometheus.Registerer
}

// Option configures a Controller.
type Option func(*config)

// WithSeed starts the controller in seeded mode.
func WithSeed(seed random.Seed) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithLogger sets the logger (default: the slog default at log time).
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithRegisterer registers the controller's metrics on r.
// Without it the metrics are kept but not registered. Controllers
// registered on the same r share their collectors.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = r
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
