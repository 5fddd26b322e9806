//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the VOLE-in-the-head
// modules.
package env

import (
	"crypto/rand"
	"hash"
	"io"
	"runtime"

	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/voleith/xof"
)

// Config defines the global system configuration. It configures
// system operation for all modules. Config must not be modified after
// being passed to any module. It is safe for concurrent use by
// multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for commitment seeds. Two
	// senders that read byte-identical randomness produce
	// byte-identical protocol messages.
	Rand io.Reader

	// Hash creates the hash function for commitment digests and the
	// consistency check response. The default is SHA3-256.
	Hash func() hash.Hash

	// XOF specifies the construction that expands commitment leaves.
	XOF xof.Kind

	// Workers limits the number of repetitions processed in
	// parallel. Zero selects runtime.GOMAXPROCS(0).
	Workers int

	// Verbose enables debug output.
	Verbose bool
}

// GetRandom returns the source of entropy for commitments and other
// cryptography operations.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetHash returns a new instance of the configured hash function.
func (config *Config) GetHash() hash.Hash {
	if config.Hash != nil {
		return config.Hash()
	}
	return sha3.New256()
}

// GetWorkers returns the number of parallel workers.
func (config *Config) GetWorkers() int {
	if config.Workers > 0 {
		return config.Workers
	}
	return runtime.GOMAXPROCS(0)
}
