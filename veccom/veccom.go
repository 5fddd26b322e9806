//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package veccom implements all-but-one vector commitments. A
// committer commits to q = 2^logQ pseudorandom leaves and later opens
// all leaves except one challenged index, which stays hidden.
//
// The VecCom interface is the boundary the VOLE sender uses. GGM
// implements it with a GGM seed tree: the root seed is expanded into
// a binary tree of depth logQ, each leaf is hashed into a leaf seed
// and a leaf commitment, and the commitment digest hashes all leaf
// commitments. An opening reveals the logQ co-path seeds from which
// the receiver recomputes every leaf except the hidden one.
package veccom

import (
	"github.com/markkurossi/voleith/xof"
)

// DecommitmentKey is the committer's secret state for one
// commitment. It is opaque to callers and may only be passed back to
// the VecCom that created it.
type DecommitmentKey any

// VecCom defines the all-but-one vector commitment interface.
type VecCom interface {
	// Commit creates a fresh commitment to 2^logQ leaves. It returns
	// the commitment digest, the decommitment key, and one
	// extendable-output stream per leaf in leaf order.
	Commit(logQ int) ([]byte, DecommitmentKey, []xof.XOF, error)

	// Decommit opens the commitment of key at all leaves except
	// index.
	Decommit(logQ int, key DecommitmentKey, index uint) *Opening
}
