// Package idgen adapts the localuuid controller to string identifier
// generators, so components can depend on an IDGenerator and still follow
// whatever mode the controller is in.
package idgen

// IDGenerator defines the contract for ID generation implementations.
type IDGenerator interface {
	GenerateID() string
}
