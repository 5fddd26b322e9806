//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf128

import (
	"fmt"
)

// SmallField defines a small binary field GF(2^k) that is linearly
// embedded into GF(2^128).
type SmallField interface {
	// Bits returns k, the number of bits in the small field
	// elements.
	Bits() int

	// Order returns the number of small field elements, 2^k.
	Order() uint

	// Embed maps the small field element x into GF(2^128).
	Embed(x uint) Element

	// Extract returns the small field element that embeds into e. The
	// boolean result is false if e is not in the embedded subfield.
	Extract(e Element) (uint, bool)
}

// Embedding implements SmallField with a table of basis images.
type Embedding struct {
	name   string
	basis  []Element
	images []Element
}

var (
	_ SmallField = &Embedding{}

	// GF2p8 embeds GF(2^8) into GF(2^128).
	GF2p8 = NewEmbedding("GF(2^8)", []Element{
		One,
		FromUint128(0x053d8555a9979a1c, 0xa13fe8ac5560ce0d),
		FromUint128(0x4cf4b7439cbfbb84, 0xec7759ca3488aee1),
		FromUint128(0x35ad604f7d51d2c6, 0xbfcf02ae363946a8),
		FromUint128(0x0dcb364640a222fe, 0x6b8330483c2e9849),
		FromUint128(0x549810e11a88dea5, 0x252b49277b1b82b4),
		FromUint128(0xd681a5686c0c1f75, 0xc72bf2ef2521ff22),
		FromUint128(0x0950311a4fb78fe0, 0x7a7a8e94e136f9bc),
	})

	// GF2 embeds GF(2) into GF(2^128).
	GF2 = NewEmbedding("GF(2)", []Element{One})
)

// NewEmbedding creates a new embedding from the images of the basis
// monomials 1, y, y^2, ... of the small field. The function panics
// if the basis has more than 16 elements.
func NewEmbedding(name string, basis []Element) *Embedding {
	if len(basis) == 0 || len(basis) > 16 {
		panic(fmt.Sprintf("gf128: invalid embedding basis size %d",
			len(basis)))
	}
	e := &Embedding{
		name:   name,
		basis:  basis,
		images: make([]Element, 1<<len(basis)),
	}
	for x := range e.images {
		e.images[x] = embed(basis, uint(x))
	}
	return e
}

func embed(basis []Element, x uint) Element {
	var y Element
	for i := 0; i < len(basis); i++ {
		if x&(1<<i) != 0 {
			y.Xor(basis[i])
		}
	}
	return y
}

func (e *Embedding) String() string {
	return e.name
}

// Bits implements SmallField.Bits.
func (e *Embedding) Bits() int {
	return len(e.basis)
}

// Order implements SmallField.Order.
func (e *Embedding) Order() uint {
	return uint(len(e.images))
}

// Embed implements SmallField.Embed. Only the low Bits() bits of x
// are used.
func (e *Embedding) Embed(x uint) Element {
	return e.images[x&(e.Order()-1)]
}

// Extract implements SmallField.Extract.
func (e *Embedding) Extract(v Element) (uint, bool) {
	for x, img := range e.images {
		if img.Equal(v) {
			return uint(x), true
		}
	}
	return 0, false
}
