// Package random provides the seeded pseudo-random engine behind
// deterministic identifier generation.
package random

import (
	"encoding/binary"
	"strconv"
)

// Seed is seed material accepted by NewEngine. The set of implementations is
// closed: use Int, Bytes or String.
type Seed interface {
	// Kind names the seed variant ("int", "bytes" or "string").
	Kind() string

	material() []byte
}

type intSeed int64

// Int returns integer seed material.
func Int(v int64) Seed { return intSeed(v) }

func (s intSeed) Kind() string { return "int" }

func (s intSeed) material() []byte {
	b := make([]byte, 0, 12)
	b = append(b, "int\x00"...)
	return binary.BigEndian.AppendUint64(b, uint64(s))
}

type bytesSeed string

// Bytes returns byte-sequence seed material. b is copied.
func Bytes(b []byte) Seed { return bytesSeed(b) }

func (s bytesSeed) Kind() string { return "bytes" }

func (s bytesSeed) material() []byte {
	return append([]byte("bytes\x00"), s...)
}

type stringSeed string

// String returns text seed material, hashed as its UTF-8 bytes.
func String(v string) Seed { return stringSeed(v) }

func (s stringSeed) Kind() string { return "string" }

func (s stringSeed) material() []byte {
	return append([]byte("string\x00"), s...)
}

// Material returns the canonical byte form the engine key is derived from.
// Every variant is prefixed with its kind so equal payloads of different
// kinds never share a key.
func Material(s Seed) []byte {
	if s == nil {
		return nil
	}
	return s.material()
}

// Parse reads seed material from text: a base-10 int64 becomes Int,
// anything else String.
func Parse(v string) Seed {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return Int(n)
	}
	return String(v)
}
