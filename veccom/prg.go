//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package veccom

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/sha3"
)

// prgExpandSeed is a deterministic length-doubling PRG. It expands
// the seed into the left and right child seeds of a tree node.
func prgExpandSeed(seed Seed) (left, right Seed) {
	block, err := aes.NewCipher(seed[:])
	if err != nil {
		panic(err)
	}

	var iv [16]byte
	stream := cipher.NewCTR(block, iv[:])

	var out [2 * SeedSize]byte
	stream.XORKeyStream(out[:], out[:])

	copy(left[:], out[:SeedSize])
	copy(right[:], out[SeedSize:])
	return
}

// hashLeaf hashes the leaf key and the commitment IV into the leaf
// seed and the leaf commitment.
func hashLeaf(key Seed, iv IV) (seed Seed, com LeafCommitment) {
	h := sha3.NewShake256()
	h.Write(key[:])
	h.Write(iv[:])
	h.Read(seed[:])
	h.Read(com[:])
	return
}

// expandTree expands the root seed into a tree of the given depth.
// The result holds the seeds of each level, from the root level 0 to
// the leaf level depth.
func expandTree(root Seed, depth int) [][]Seed {
	tree := make([][]Seed, depth+1)
	tree[0] = []Seed{root}
	for level := 0; level < depth; level++ {
		tree[level+1] = make([]Seed, 2*len(tree[level]))
		for i, seed := range tree[level] {
			tree[level+1][2*i], tree[level+1][2*i+1] = prgExpandSeed(seed)
		}
	}
	return tree
}
