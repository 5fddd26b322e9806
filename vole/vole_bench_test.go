//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/markkurossi/voleith/gf128"
)

func BenchmarkSender(b *testing.B) {
	for _, tau := range []int{11, 16} {
		p := params{field: gf128.GF2p8, ell: 1024, tau: tau}
		b.Run(fmt.Sprintf("tau=%d", tau), func(b *testing.B) {
			rnd := rand.New(rand.NewSource(1))
			config := newConfig(2, 0)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sender := newSender(config, p)
				if _, err := sender.CommitRandom(); err != nil {
					b.Fatal(err)
				}
				points, deltas := challenges(rnd, p)
				sender.ConsistencyCheckRespond(points)
				sender.Decommit(deltas)
			}
		})
	}
}

func BenchmarkFold(b *testing.B) {
	p := params{field: gf128.GF2p8, ell: 1024, tau: 16}
	sender := newSender(newConfig(3, 0), p)
	if _, err := sender.CommitRandom(); err != nil {
		b.Fatal(err)
	}
	points, _ := challenges(rand.New(rand.NewSource(4)), p)
	fold := NewFold(points, p.ell)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fold.Matrix(sender.v)
	}
}
