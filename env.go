package localuuid

import (
	"fmt"
	"os"

	"github.com/RRWM1rr0rB/localuuid/errors"
	"github.com/RRWM1rr0rB/localuuid/logging"
	"github.com/RRWM1rr0rB/localuuid/random"
)

// Environment variables read by ConfigureFromEnv.
const (
	EnvSeed     = "LOCAL_UUID_SEED"
	EnvDemoBase = "CASE_DEMO_NONRANDOM_UUID_BASE"

	// EnvDeprecatedNonrandom is the retired switch for demo identifiers.
	// Setting it to "NONRANDOM_REQUESTED" forces random mode with a warning.
	EnvDeprecatedNonrandom = "DEMO_UUID_REQUESTING_NONRANDOM"

	deprecatedNonrandomValue = "NONRANDOM_REQUESTED"
)

var (
	ErrDeprecatedEnv = errors.New("localuuid: " + EnvDeprecatedNonrandom + " is deprecated, use " + EnvDemoBase)
	ErrBaseNotExist  = errors.New("localuuid: " + EnvDemoBase + " is expected to refer to an existing directory")
	ErrBaseNotDir    = errors.New("localuuid: " + EnvDemoBase + " is expected to refer to a directory")
)

// Env is the generator configuration found in the environment.
type Env struct {
	// Seed is nil unless LOCAL_UUID_SEED holds a non-empty value.
	Seed random.Seed
	// DemoBaseDir is empty unless CASE_DEMO_NONRANDOM_UUID_BASE names a
	// directory. An empty value names the working directory.
	DemoBaseDir string
}

// Mode reports the mode the environment selects. A seed wins over demo mode.
func (e Env) Mode() Mode {
	switch {
	case e.Seed != nil:
		return ModeSeeded
	case e.DemoBaseDir != "":
		return ModeDemo
	default:
		return ModeRandom
	}
}

// LoadEnv reads the configuration through lookup (normally os.LookupEnv).
// Settings that cannot be used are left out of the returned Env and reported
// together in the error; the Env is valid either way.
func LoadEnv(lookup func(string) (string, bool)) (Env, error) {
	if v, ok := lookup(EnvDeprecatedNonrandom); ok && v == deprecatedNonrandomValue {
		return Env{}, ErrDeprecatedEnv
	}

	var (
		env  Env
		errs error
	)

	if v, ok := lookup(EnvSeed); ok && v != "" {
		env.Seed = random.Parse(v)
	}

	if dir, ok := lookup(EnvDemoBase); ok {
		if dir == "" {
			dir = "."
		}
		info, err := os.Stat(dir)
		switch {
		case err != nil:
			errs = errors.Append(errs, fmt.Errorf("%w: %q", ErrBaseNotExist, dir))
		case !info.IsDir():
			errs = errors.Append(errs, fmt.Errorf("%w: %q", ErrBaseNotDir, dir))
		default:
			env.DemoBaseDir = dir
		}
	}

	return env, errs
}

// ConfigureFromEnv rebinds the controller from the process environment:
// LOCAL_UUID_SEED selects seeded mode, otherwise CASE_DEMO_NONRANDOM_UUID_BASE
// selects demo mode, otherwise random mode. Unusable settings are logged as
// warnings and returned; the controller is configured regardless.
func (c *Controller) ConfigureFromEnv() error {
	env, envErr := LoadEnv(os.LookupEnv)
	for _, err := range errors.Errors(envErr) {
		c.log().Warn("ignoring uuid environment setting", logging.ErrAttr(err))
	}

	switch env.Mode() {
	case ModeSeeded:
		if err := c.Configure(env.Seed); err != nil {
			return errors.Append(envErr, err)
		}
	case ModeDemo:
		wd, err := os.Getwd()
		if err != nil {
			_ = c.Configure(nil)
			return errors.Append(envErr, errors.Wrap(err, "localuuid: working directory"))
		}
		c.ConfigureDemo(DemoBase(env.DemoBaseDir, wd, os.Args))
	default:
		_ = c.Configure(nil)
	}

	return envErr
}
