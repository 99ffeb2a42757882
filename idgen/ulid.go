package idgen

import (
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"

	"github.com/RRWM1rr0rB/localuuid"
	"github.com/RRWM1rr0rB/localuuid/clock"
)

// ULIDGenerator produces ULIDs whose timestamp comes from a clock and whose
// 80 entropy bits come from an io.Reader. With a seeded controller as the
// reader and a fixed clock the output is reproducible.
type ULIDGenerator struct {
	clock   clock.Clock
	entropy io.Reader
}

// ULIDOption configures a ULIDGenerator.
type ULIDOption func(*ULIDGenerator)

// WithClock sets the timestamp source (default: system time).
func WithClock(c clock.Clock) ULIDOption {
	return func(g *ULIDGenerator) {
		g.clock = c
	}
}

// WithEntropy sets the entropy source (default: the process-wide controller).
func WithEntropy(r io.Reader) ULIDOption {
	return func(g *ULIDGenerator) {
		g.entropy = r
	}
}

// NewULIDGenerator creates a ULIDGenerator.
func NewULIDGenerator(opts ...ULIDOption) *ULIDGenerator {
	g := &ULIDGenerator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.clock == nil {
		g.clock = clock.New()
	}
	if g.entropy == nil {
		g.entropy = localuuid.Default()
	}
	return g
}

// Generate returns the next ULID.
func (g *ULIDGenerator) Generate() (ulid.ULID, error) {
	id, err := ulid.New(ulid.Timestamp(g.clock.Now()), g.entropy)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("idgen: failed to generate ULID: %w", err)
	}
	return id, nil
}

// GenerateID returns the next ULID string. It panics if the entropy source
// fails; use Generate to handle that case.
func (g *ULIDGenerator) GenerateID() string {
	id, err := g.Generate()
	if err != nil {
		panic(err)
	}
	return id.String()
}

var _ IDGenerator = (*ULIDGenerator)(nil)
