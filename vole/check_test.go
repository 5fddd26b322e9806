//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"math/rand"
	"testing"

	"github.com/markkurossi/voleith/gf128"
)

func TestFold(t *testing.T) {
	const ell = 20
	const tau = 5

	rnd := rand.New(rand.NewSource(31))
	points, _ := challenges(rnd, params{field: gf128.GF2, ell: ell, tau: tau})
	fold := NewFold(points, ell)

	u := randomVector(rnd, ell+tau)
	m := gf128.NewMatrix(ell+tau, 3)
	for i := range m.Data {
		m.Data[i] = gf128.FromUint128(rnd.Uint64(), rnd.Uint64())
	}

	bits := fold.Bits(u)
	folded := fold.Matrix(m)
	if len(bits) != ell || folded.Rows != ell || folded.Cols != 3 {
		t.Fatalf("fold shapes: %d, %v", len(bits), folded)
	}

	for j := 0; j < ell; j++ {
		var b gf128.Element
		if u.Test(j) {
			b = gf128.One
		}
		for i := 0; i < tau; i++ {
			if u.Test(ell + i) {
				b.Xor(points[i].Pow(uint64(j + 1)))
			}
		}
		if !bits[j].Equal(b) {
			t.Fatalf("Bits[%d]: got %v, expected %v", j, bits[j], b)
		}
		for c := 0; c < 3; c++ {
			e := m.At(j, c)
			for i := 0; i < tau; i++ {
				e.Xor(points[i].Pow(uint64(j + 1)).Mul(m.At(ell+i, c)))
			}
			if !folded.At(j, c).Equal(e) {
				t.Fatalf("Matrix[%d][%d]: got %v, expected %v",
					j, c, folded.At(j, c), e)
			}
		}
	}

	expectPanic(t, "bits length", func() {
		fold.Bits(randomVector(rnd, ell))
	})
	expectPanic(t, "matrix rows", func() {
		fold.Matrix(gf128.NewMatrix(ell, 3))
	})
}
