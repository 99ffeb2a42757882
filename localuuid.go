package localuuid

import (
	"github.com/google/uuid"

	"github.com/RRWM1rr0rB/localuuid/random"
)

// Seed material, re-exported so callers need only this package.
type Seed = random.Seed

var (
	Int    = random.Int
	Bytes  = random.Bytes
	String = random.String
)

// std registers its metrics lazily through metrics.Default, so
// metrics.SetRegisterer applies to it.
var std = &Controller{mode: ModeRandom, generate: uuid.New, sharedMetrics: true}

// Default returns the process-wide controller used by the package functions.
func Default() *Controller { return std }

// Configure rebinds the process-wide controller. See Controller.Configure.
func Configure(seed Seed) error { return std.Configure(seed) }

// Override binds fn on the process-wide controller. See Controller.Override.
func Override(fn GeneratorFunc) { std.Override(fn) }

// ConfigureFromEnv configures the process-wide controller from the environment.
func ConfigureFromEnv() error { return std.ConfigureFromEnv() }

// New returns the next identifier from the process-wide controller.
func New() uuid.UUID { return std.Next() }

// LocalUUID returns New as a canonical string.
func LocalUUID() string { return std.NextString() }
