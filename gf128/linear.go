//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf128

// InnerProduct computes the inner product of vectors a and b. The
// products are accumulated unreduced and reduced once at the end. The
// function panics if the vector lengths differ.
func InnerProduct(a, b []Element) Element {
	if len(a) != len(b) {
		panic("gf128: inner product length mismatch")
	}
	var acc Unreduced
	for i := 0; i < len(a); i++ {
		acc.Xor(MulUnreduced(a[i], b[i]))
	}
	return Reduce(acc)
}

// Sum returns the sum of the elements.
func Sum(v []Element) Element {
	var r Element
	for _, e := range v {
		r.Xor(e)
	}
	return r
}

// AddTo adds the vector v to the vector dst in place. The function
// panics if the vector lengths differ.
func AddTo(dst, v []Element) {
	if len(dst) != len(v) {
		panic("gf128: vector length mismatch")
	}
	for i := range dst {
		dst[i].Xor(v[i])
	}
}

// Powers returns the vector [s^1, s^2, ..., s^n].
func Powers(s Element, n int) []Element {
	result := make([]Element, n)
	p := s
	for i := 0; i < n; i++ {
		result[i] = p
		p = p.Mul(s)
	}
	return result
}
