// Package localuuid is the single point of control for generating UUIDs that
// may need to be reproducible.
//
// Code that needs a fresh identifier calls New (or LocalUUID for the string
// form) instead of calling a UUID library directly. By default that yields a
// random version 4 UUID. A test or documentation build can instead call
//
//	localuuid.Configure(localuuid.Int(0))
//
// after which every New call draws from a seeded stream and the sequence of
// identifiers is the same on every run and every platform. Configure(nil)
// returns to random identifiers.
//
// # Seeded derivation
//
// Each identifier takes the next 16 bytes of the seed's random.Engine stream,
// in stream order, as bytes 0..15 of the UUID. The version nibble of byte 6
// is then set to 4 and the top two bits of byte 8 to the RFC 4122 variant,
// so seeded output has the same shape as a random v4 UUID. With seed Int(0)
// the first identifier is fe4367ee-d56a-4a5c-a67c-a2ac99f96d62.
//
// # Demo mode
//
// ConfigureFromEnv honours CASE_DEMO_NONRANDOM_UUID_BASE: when it names a
// directory, identifiers become UUIDv5 values derived from the working
// directory, the command line and a call counter, so regenerating sample data
// from the same place with the same command yields the same identifiers.
//
// Package-level functions operate on a process-wide Controller. Components
// that prefer explicit wiring can create their own with NewController.
package localuuid
