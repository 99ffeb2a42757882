package idgen

import (
	"github.com/RRWM1rr0rB/localuuid"
)

// UUIDGenerator produces canonical UUID strings from a controller.
type UUIDGenerator struct {
	controller *localuuid.Controller
}

// NewUUIDGenerator creates a generator backed by c, or by the process-wide
// controller when c is nil.
func NewUUIDGenerator(c *localuuid.Controller) *UUIDGenerator {
	if c == nil {
		c = localuuid.Default()
	}
	return &UUIDGenerator{controller: c}
}

// GenerateID returns the controller's next UUID.
func (g *UUIDGenerator) GenerateID() string {
	return g.controller.NextString()
}

var _ IDGenerator = (*UUIDGenerator)(nil)
