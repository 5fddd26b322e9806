//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package veccom

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/voleith/env"
	"github.com/markkurossi/voleith/xof"
)

const (
	// SeedSize specifies the tree node seed size in bytes.
	SeedSize = 16

	// IVSize specifies the commitment IV size in bytes.
	IVSize = 16

	// LeafCommitmentSize specifies the leaf commitment size in
	// bytes.
	LeafCommitmentSize = 32

	// MaxLogQ specifies the maximum tree depth.
	MaxLogQ = 20
)

// Seed implements a tree node seed.
type Seed [SeedSize]byte

// IV implements a commitment initialization vector.
type IV [IVSize]byte

// LeafCommitment implements a commitment to one leaf.
type LeafCommitment [LeafCommitmentSize]byte

var (
	_ VecCom = &GGM{}

	// ErrDigestMismatch is returned when a reconstructed commitment
	// does not match the committed digest.
	ErrDigestMismatch = errors.New("veccom: commitment digest mismatch")
)

// GGM implements VecCom with a GGM seed tree.
type GGM struct {
	config *env.Config
}

// NewGGM creates a new GGM vector commitment. A nil config selects
// the default configuration.
func NewGGM(config *env.Config) *GGM {
	if config == nil {
		config = new(env.Config)
	}
	return &GGM{
		config: config,
	}
}

type ggmKey struct {
	logQ int
	iv   IV
	tree [][]Seed
	coms []LeafCommitment
}

func checkLogQ(logQ int) {
	if logQ < 1 || logQ > MaxLogQ {
		panic(fmt.Sprintf("veccom: invalid logQ %d", logQ))
	}
}

// Commit implements VecCom.Commit. The root seed and the IV are read
// from the configured randomness.
func (ggm *GGM) Commit(logQ int) ([]byte, DecommitmentKey, []xof.XOF,
	error) {

	checkLogQ(logQ)

	var root Seed
	var iv IV

	rand := ggm.config.GetRandom()
	if _, err := io.ReadFull(rand, root[:]); err != nil {
		return nil, nil, nil, fmt.Errorf("veccom: read root seed: %w", err)
	}
	if _, err := io.ReadFull(rand, iv[:]); err != nil {
		return nil, nil, nil, fmt.Errorf("veccom: read IV: %w", err)
	}

	key := &ggmKey{
		logQ: logQ,
		iv:   iv,
		tree: expandTree(root, logQ),
		coms: make([]LeafCommitment, 1<<logQ),
	}
	streams := make([]xof.XOF, 1<<logQ)
	for x, leaf := range key.tree[logQ] {
		var seed Seed
		seed, key.coms[x] = hashLeaf(leaf, iv)
		streams[x] = xof.New(ggm.config.XOF, seed[:])
	}

	return ggm.digest(key.coms), key, streams, nil
}

func (ggm *GGM) digest(coms []LeafCommitment) []byte {
	h := ggm.config.GetHash()
	for _, com := range coms {
		h.Write(com[:])
	}
	return h.Sum(nil)
}

func (ggm *GGM) key(logQ int, key DecommitmentKey) *ggmKey {
	k, ok := key.(*ggmKey)
	if !ok {
		panic(fmt.Sprintf("veccom: invalid decommitment key %T", key))
	}
	if k.logQ != logQ {
		panic(fmt.Sprintf("veccom: key logQ %d, expected %d", k.logQ, logQ))
	}
	return k
}

// Decommit implements VecCom.Decommit.
func (ggm *GGM) Decommit(logQ int, key DecommitmentKey,
	index uint) *Opening {

	k := ggm.key(logQ, key)
	if index >= 1<<logQ {
		panic(fmt.Sprintf("veccom: index %d out of range [0,%d)",
			index, 1<<logQ))
	}

	opening := &Opening{
		IV:         k.iv,
		Siblings:   make([]Seed, logQ),
		Commitment: k.coms[index],
	}
	for level := 1; level <= logQ; level++ {
		node := index >> (logQ - level)
		opening.Siblings[level-1] = k.tree[level][node^1]
	}
	return opening
}

// Expand recomputes all leaf streams of the commitment key.
func (ggm *GGM) Expand(logQ int, key DecommitmentKey) []xof.XOF {
	k := ggm.key(logQ, key)

	streams := make([]xof.XOF, 1<<logQ)
	for x, leaf := range k.tree[logQ] {
		seed, _ := hashLeaf(leaf, k.iv)
		streams[x] = xof.New(ggm.config.XOF, seed[:])
	}
	return streams
}

// Reconstruct recomputes the leaf streams of all leaves except index
// from the opening and verifies them against the commitment
// digest. The stream of the hidden leaf is nil.
func (ggm *GGM) Reconstruct(logQ int, digest []byte, opening *Opening,
	index uint) ([]xof.XOF, error) {

	computed, streams, err := ggm.Recompute(logQ, opening, index)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(computed, digest) != 1 {
		return nil, ErrDigestMismatch
	}
	return streams, nil
}

// Recompute recomputes the commitment digest and the leaf streams of
// all leaves except index from the opening. The caller must compare
// the digest against the committed one before using the streams.
func (ggm *GGM) Recompute(logQ int, opening *Opening, index uint) (
	[]byte, []xof.XOF, error) {

	if logQ < 1 || logQ > MaxLogQ {
		return nil, nil, fmt.Errorf("veccom: invalid logQ %d", logQ)
	}
	if opening == nil {
		return nil, nil, errors.New("veccom: nil opening")
	}
	if len(opening.Siblings) != logQ {
		return nil, nil, fmt.Errorf(
			"veccom: opening has %d siblings, expected %d",
			len(opening.Siblings), logQ)
	}
	q := uint(1) << logQ
	if index >= q {
		return nil, nil, fmt.Errorf("veccom: index %d out of range [0,%d)",
			index, q)
	}

	coms := make([]LeafCommitment, q)
	seeds := make([]Seed, q)

	// The sibling at each level roots the subtree of all leaves
	// whose path leaves the hidden leaf's path at that level.
	for level := 1; level <= logQ; level++ {
		depth := logQ - level
		node := (index >> depth) ^ 1
		subtree := expandTree(opening.Siblings[level-1], depth)
		first := node << depth
		for i, leaf := range subtree[depth] {
			x := first + uint(i)
			seeds[x], coms[x] = hashLeaf(leaf, opening.IV)
		}
	}
	coms[index] = opening.Commitment

	streams := make([]xof.XOF, q)
	for x := uint(0); x < q; x++ {
		if x == index {
			continue
		}
		streams[x] = xof.New(ggm.config.XOF, seeds[x][:])
	}
	return ggm.digest(coms), streams, nil
}
