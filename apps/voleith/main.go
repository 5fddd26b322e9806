//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"crypto/sha256"
	"flag"
	"fmt"
	"hash"
	"log"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/markkurossi/voleith/env"
	"github.com/markkurossi/voleith/gf128"
	"github.com/markkurossi/voleith/veccom"
	"github.com/markkurossi/voleith/vole"
	"github.com/markkurossi/voleith/xof"
)

var (
	fields = map[string]gf128.SmallField{
		"gf2":   gf128.GF2,
		"gf2p8": gf128.GF2p8,
	}
	xofs = map[string]xof.Kind{
		"shake128": xof.Shake128,
		"shake256": xof.Shake256,
		"chacha20": xof.ChaCha20,
	}
	hashes = map[string]func() hash.Hash{
		"sha3-256": sha3.New256,
		"sha3-512": sha3.New512,
		"sha256":   sha256.New,
	}
)

func main() {
	ell := flag.Int("l", 1024, "VOLE length")
	tau := flag.Int("t", 16, "Number of repetitions")
	fField := flag.String("f", "gf2p8", "Small field: gf2, gf2p8")
	fXOF := flag.String("x", "shake128",
		"Leaf expansion: shake128, shake256, chacha20")
	fHash := flag.String("h", "sha3-256", "Digest: sha3-256, sha3-512, sha256")
	workers := flag.Int("w", 0, "Number of parallel workers")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	field, ok := fields[*fField]
	if !ok {
		fmt.Printf("Unknown field: %s\n", *fField)
		os.Exit(1)
	}
	kind, ok := xofs[*fXOF]
	if !ok {
		fmt.Printf("Unknown XOF: %s\n", *fXOF)
		os.Exit(1)
	}
	hashFunc, ok := hashes[*fHash]
	if !ok {
		fmt.Printf("Unknown hash: %s\n", *fHash)
		os.Exit(1)
	}
	if *ell <= 0 || *tau <= 0 {
		fmt.Printf("Invalid parameters: l=%d, t=%d\n", *ell, *tau)
		os.Exit(1)
	}

	config := &env.Config{
		Hash:    hashFunc,
		XOF:     kind,
		Workers: *workers,
		Verbose: *verbose,
	}

	sender := vole.NewSender(config, veccom.NewGGM(config), field, *ell, *tau)
	commitment, err := sender.CommitRandom()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Commitment : %x\n", commitment.Digest)

	points := make([]gf128.Element, *tau)
	deltas := make([]gf128.Element, *tau)
	for i := range points {
		for points[i].IsZero() {
			points[i], err = gf128.Random(rand.Reader)
			if err != nil {
				log.Fatal(err)
			}
		}
		var buf [2]byte
		if _, err := rand.Read(buf[:]); err != nil {
			log.Fatal(err)
		}
		deltas[i] = field.Embed(uint(buf[0]) | uint(buf[1])<<8)
	}

	response := sender.ConsistencyCheckRespond(points)
	fmt.Printf("Response   : %x\n", response.Digest)

	sender.Decommit(deltas)

	u, v := sender.Output()
	fmt.Printf("u          : %d bits, %d set\n", u.Len(), u.Count())
	fmt.Printf("V          : %v\n", v)

	sender.Timing.Print(os.Stdout)
}
