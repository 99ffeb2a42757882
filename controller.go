package localuuid

import (
	cryptorand "crypto/rand"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/RRWM1rr0rB/localuuid/errors"
	"github.com/RRWM1rr0rB/localuuid/logging"
	"github.com/RRWM1rr0rB/localuuid/metrics"
	"github.com/RRWM1rr0rB/localuuid/random"
)

// GeneratorFunc produces the next UUID of a binding.
type GeneratorFunc func() uuid.UUID

// Mode identifies which kind of binding a Controller currently uses.
type Mode int

const (
	ModeRandom Mode = iota
	ModeSeeded
	ModeDemo
	ModeCustom
)

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeSeeded:
		return "seeded"
	case ModeDemo:
		return "demo"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Controller owns one generator binding and, in seeded mode, the engine that
// binding draws from. All methods are safe for concurrent use; a rebind is
// visible to every subsequent call.
type Controller struct {
	mu       sync.Mutex
	mode     Mode
	generate GeneratorFunc
	engine   *random.Engine

	logger  *logging.Logger
	metrics *metrics.Recorder
	// sharedMetrics makes the controller record through metrics.Default
	// instead of its own recorder.
	sharedMetrics bool
}

// NewController creates a Controller. Without WithSeed it starts in random mode.
func NewController(opts ...Option) (*Controller, error) {
	cfg := newConfig(opts...)
	rec, err := metrics.NewRecorder(cfg.registerer)
	if err != nil {
		return nil, errors.Wrap(err, "localuuid: metrics")
	}
	c := newController(cfg, rec)
	if cfg.seed != nil {
		if err := c.Configure(cfg.seed); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newController(cfg *config, rec *metrics.Recorder) *Controller {
	return &Controller{
		mode:     ModeRandom,
		generate: uuid.New,
		logger:   cfg.logger,
		metrics:  rec,
	}
}

// Configure rebinds the controller. A nil seed selects random v4 UUIDs;
// any other seed starts a fresh deterministic stream from that seed.
// If the engine cannot be built the previous binding stays in place.
func (c *Controller) Configure(seed random.Seed) error {
	if seed == nil {
		c.bind(ModeRandom, uuid.New, nil)
		c.log().Debug("uuid generator configured", logging.StringAttr("mode", ModeRandom.String()))
		return nil
	}

	engine, err := random.NewEngine(seed)
	if err != nil {
		return errors.Wrap(err, "localuuid: configure")
	}
	c.bind(ModeSeeded, seededGenerator(engine), engine)
	c.log().Debug("uuid generator configured",
		logging.StringAttr("mode", ModeSeeded.String()),
		logging.StringAttr("seed_kind", seed.Kind()),
	)
	return nil
}

// ConfigureDemo binds the demo generator: UUIDv5 identifiers named by base
// and a call counter starting at 1. See DemoBase for how base is usually built.
func (c *Controller) ConfigureDemo(base string) {
	c.bind(ModeDemo, demoGenerator(base), nil)
	c.log().Debug("uuid generator configured",
		logging.StringAttr("mode", ModeDemo.String()),
		logging.StringAttr("base", base),
	)
}

// Override binds a caller-supplied generator. fn is called with the
// controller locked and must not call back into it. A nil fn restores
// random mode.
func (c *Controller) Override(fn GeneratorFunc) {
	if fn == nil {
		_ = c.Configure(nil)
		return
	}
	c.bind(ModeCustom, fn, nil)
	c.log().Debug("uuid generator configured", logging.StringAttr("mode", ModeCustom.String()))
}

func (c *Controller) bind(mode Mode, fn GeneratorFunc, engine *random.Engine) {
	c.mu.Lock()
	c.mode = mode
	c.generate = fn
	c.engine = engine
	c.mu.Unlock()

	c.recorder().Configured(mode.String())
}

// Next returns the next identifier of the active binding. A panic in the
// bound generator propagates to the caller and leaves the controller usable.
func (c *Controller) Next() uuid.UUID {
	id, mode := c.next()
	c.recorder().Generated(mode.String())
	return id
}

func (c *Controller) next() (uuid.UUID, Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generate(), c.mode
}

// NextString returns Next in canonical 36-character lowercase form.
func (c *Controller) NextString() string {
	return c.Next().String()
}

// Mode reports the active binding kind.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Read fills p from the seeded stream in seeded mode and from crypto/rand
// otherwise. Seeded reads advance the same stream Next draws from.
func (c *Controller) Read(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine != nil {
		return c.engine.Read(p)
	}
	return cryptorand.Read(p)
}

func (c *Controller) recorder() *metrics.Recorder {
	if !c.sharedMetrics {
		return c.metrics
	}
	rec, err := metrics.Default()
	if err != nil {
		c.log().Warn("uuid metrics not registered", logging.ErrAttr(err))
	}
	return rec
}

func (c *Controller) log() *logging.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.Default()
}

func seededGenerator(engine *random.Engine) GeneratorFunc {
	return func() uuid.UUID {
		// Engine reads do not fail.
		return uuid.Must(uuid.NewRandomFromReader(engine))
	}
}

func demoGenerator(base string) GeneratorFunc {
	var counter uint64
	return func() uuid.UUID {
		counter++
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(base+"/"+strconv.FormatUint(counter, 10)))
	}
}
