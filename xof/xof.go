//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package xof implements extendable-output functions that expand
// short seeds into arbitrarily long pseudorandom byte streams.
package xof

import (
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// XOF defines an extendable-output stream. Read never fails and
// always fills the argument buffer.
type XOF interface {
	io.Reader
}

// Kind specifies the XOF construction.
type Kind int

// XOF constructions.
const (
	Shake128 Kind = iota
	Shake256
	ChaCha20
)

var kindNames = map[Kind]string{
	Shake128: "SHAKE128",
	Shake256: "SHAKE256",
	ChaCha20: "ChaCha20",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{Kind %d}", k)
}

// New creates a new XOF stream of the given kind from the seed. The
// function panics if the kind is unknown or the seed is empty.
func New(kind Kind, seed []byte) XOF {
	if len(seed) == 0 {
		panic("xof: empty seed")
	}
	switch kind {
	case Shake128:
		h := sha3.NewShake128()
		h.Write(seed)
		return h

	case Shake256:
		h := sha3.NewShake256()
		h.Write(seed)
		return h

	case ChaCha20:
		return newChaCha20(seed)

	default:
		panic(fmt.Sprintf("xof: unknown kind %v", kind))
	}
}

// ReadFull reads len(buf) bytes from the stream.
func ReadFull(x XOF, buf []byte) {
	if _, err := io.ReadFull(x, buf); err != nil {
		panic(fmt.Sprintf("xof: read failed: %v", err))
	}
}

type chacha20Stream struct {
	c *chacha20.Cipher
}

// newChaCha20 creates a ChaCha20 keystream. The seed is expanded to
// the 32-byte key by repetition and the nonce is zero; callers must
// use distinct seeds for independent streams.
func newChaCha20(seed []byte) *chacha20Stream {
	key := make([]byte, chacha20.KeySize)
	for i := 0; i < len(key); i++ {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &chacha20Stream{
		c: c,
	}
}

func (s *chacha20Stream) Read(p []byte) (int, error) {
	clear(p)
	s.c.XORKeyStream(p, p)
	return len(p), nil
}
