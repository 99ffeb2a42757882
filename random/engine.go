package random

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// ErrNilSeed is returned by NewEngine when no seed material is given.
var ErrNilSeed = errors.New("random: nil seed")

// epochBytes is the keystream length served under one nonce, kept one block
// short of the 32-bit block counter limit.
const epochBytes = (1<<32 - 1) * 64

// Engine is a reproducible byte stream derived from seed material.
//
// The stream is the RFC 8439 ChaCha20 keystream keyed with SHA-256 of the
// seed's Material, block counter starting at 0, and a 96-bit nonce of four
// zero bytes followed by a big-endian epoch number. Epoch 0 serves the first
// epochBytes bytes, after which the engine rekeys with epoch 1 and so on.
// The byte sequence is therefore identical on every platform.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	key    [chacha20.KeySize]byte
	cipher *chacha20.Cipher
	epoch  uint64
	limit  uint64
	left   uint64
}

// NewEngine creates an Engine positioned at the start of seed's stream.
func NewEngine(seed Seed) (*Engine, error) {
	if seed == nil {
		return nil, ErrNilSeed
	}
	return newEngine(sha256.Sum256(seed.material()), epochBytes)
}

func newEngine(key [chacha20.KeySize]byte, limit uint64) (*Engine, error) {
	e := &Engine{key: key, limit: limit}
	if err := e.rekey(0); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) rekey(epoch uint64) error {
	var nonce [chacha20.NonceSize]byte
	binary.BigEndian.PutUint64(nonce[4:], epoch)

	c, err := chacha20.NewUnauthenticatedCipher(e.key[:], nonce[:])
	if err != nil {
		return fmt.Errorf("random: init keystream epoch %d: %w", epoch, err)
	}
	e.cipher = c
	e.epoch = epoch
	e.left = e.limit
	return nil
}

// Read fills p with the next len(p) bytes of the stream. It only fails if
// the cipher cannot be rekeyed, which does not happen with a valid key.
func (e *Engine) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if e.left == 0 {
			if err := e.rekey(e.epoch + 1); err != nil {
				return n, err
			}
		}
		chunk := p[n:]
		if uint64(len(chunk)) > e.left {
			chunk = chunk[:e.left]
		}
		clear(chunk)
		e.cipher.XORKeyStream(chunk, chunk)
		e.left -= uint64(len(chunk))
		n += len(chunk)
	}
	return n, nil
}

// Uint64 returns the next 8 stream bytes as a little-endian integer,
// which makes Engine a math/rand/v2 Source.
func (e *Engine) Uint64() uint64 {
	var b [8]byte
	if _, err := e.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}
