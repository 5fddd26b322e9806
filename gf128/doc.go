//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gf128 implements arithmetic in the binary extension field
// GF(2^128) defined by the reduction polynomial
//
//	x^128 + x^7 + x^2 + x + 1
//
// Field elements are 128-bit values where bit i holds the coefficient
// of x^i. Addition is XOR and multiplication is a carry-less
// polynomial product followed by modular reduction. The package also
// provides linear embeddings of small binary fields such as GF(2^8),
// row-major matrices, and inner products with lazy reduction.
//
// All operations are total: every 128-bit pattern is a valid field
// element and no function in this package fails, apart from
// inverting zero.
package gf128
