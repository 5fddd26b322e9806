//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf128

import (
	"math/rand"
	"testing"
)

func TestInnerProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	const n = 33
	a := make([]Element, n)
	b := make([]Element, n)
	for i := 0; i < n; i++ {
		a[i] = randomElement(rng)
		b[i] = randomElement(rng)
	}

	var exp Element
	for i := 0; i < n; i++ {
		exp.Xor(a[i].Mul(b[i]))
	}
	got := InnerProduct(a, b)
	if !got.Equal(exp) {
		t.Fatalf("InnerProduct: got %v, expected %v", got, exp)
	}

	if !InnerProduct(nil, nil).IsZero() {
		t.Fatalf("empty inner product")
	}

	var sum Element
	for _, e := range a {
		sum.Xor(e)
	}
	if !Sum(a).Equal(sum) {
		t.Fatalf("Sum: got %v, expected %v", Sum(a), sum)
	}
	if !Sum(nil).IsZero() {
		t.Fatalf("empty sum")
	}
}

func TestPowers(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	s := randomElement(rng)
	p := Powers(s, 10)
	for i, e := range p {
		if !e.Equal(s.Pow(uint64(i + 1))) {
			t.Fatalf("Powers[%d] mismatch", i)
		}
	}
}

func TestMatrix(t *testing.T) {
	m := NewMatrix(3, 2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			m.Set(i, j, Element{Lo: uint64(i*10 + j)})
		}
	}
	tr := m.Transpose()
	if r, c := tr.Shape(); r != 2 || c != 3 {
		t.Fatalf("transpose shape: %d,%d", r, c)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if !tr.At(j, i).Equal(m.At(i, j)) {
				t.Fatalf("transpose (%d,%d)", i, j)
			}
		}
	}
	if !tr.Transpose().Equal(m) {
		t.Fatalf("double transpose")
	}

	s := m.Slice(2)
	if s.Rows != 2 || !s.Row(1)[1].Equal(Element{Lo: 11}) {
		t.Fatalf("slice: %v", s)
	}
	col := m.Column(1)
	if len(col) != 3 || !col[2].Equal(Element{Lo: 21}) {
		t.Fatalf("column: %v", col)
	}

	dst := m.Row(0)
	AddTo(dst, m.Row(1))
	if !m.At(0, 0).Equal(Element{Lo: 10}) {
		t.Fatalf("AddTo did not update row in place")
	}
}
