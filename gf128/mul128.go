//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf128

// Unreduced implements a 256-bit carry-less product of two field
// elements. Lo holds the coefficients of x^0...x^127 and Hi the
// coefficients of x^128...x^255. An unreduced value must be reduced
// before it is compared, stored, or multiplied further.
type Unreduced struct {
	Lo Element
	Hi Element
}

// Xor adds the argument unreduced value to this value in place.
func (u *Unreduced) Xor(o Unreduced) {
	u.Lo.Xor(o.Lo)
	u.Hi.Xor(o.Hi)
}

// clmul64 computes the 128-bit carry-less product of a and b.
func clmul64(a, b uint64) (lo, hi uint64) {
	for i := 0; i < 64; i++ {
		if (b>>i)&1 != 0 {
			if i == 0 {
				lo ^= a
			} else {
				lo ^= a << i
				hi ^= a >> (64 - i)
			}
		}
	}
	return
}

// mul128 computes the 256-bit carry-less product of a and b with
// three 64x64-bit multiplications.
func mul128(a, b Element) (lo, hi Element) {
	p0lo, p0hi := clmul64(a.Lo, b.Lo)
	p2lo, p2hi := clmul64(a.Hi, b.Hi)
	midLo, midHi := clmul64(a.Lo^a.Hi, b.Lo^b.Hi)

	midLo ^= p0lo ^ p2lo
	midHi ^= p0hi ^ p2hi

	lo.Lo = p0lo
	lo.Hi = p0hi ^ midLo

	hi.Lo = p2lo ^ midHi
	hi.Hi = p2hi

	return
}

// MulUnreduced returns the unreduced product a*b.
func MulUnreduced(a, b Element) Unreduced {
	lo, hi := mul128(a, b)
	return Unreduced{
		Lo: lo,
		Hi: hi,
	}
}

// shl shifts e left by 0 < n < 64 bits and drops the bits shifted
// past x^127.
func shl(e Element, n uint) Element {
	return Element{
		Lo: e.Lo << n,
		Hi: e.Hi<<n | e.Lo>>(64-n),
	}
}

// Reduce reduces the unreduced value modulo x^128 + x^7 + x^2 + x + 1.
func Reduce(u Unreduced) Element {
	d := u.Hi

	// Fold the bits that x^1, x^2, and x^7 push past x^127 back
	// into the high half.
	d.Lo ^= d.Hi>>63 ^ d.Hi>>62 ^ d.Hi>>57

	r := u.Lo
	r.Xor(d)
	r.Xor(shl(d, 1))
	r.Xor(shl(d, 2))
	r.Xor(shl(d, 7))

	return r
}

// Mul returns e*o.
func (e Element) Mul(o Element) Element {
	return Reduce(MulUnreduced(e, o))
}

// Square returns e*e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Pow returns e^n.
func (e Element) Pow(n uint64) Element {
	r := One
	for n > 0 {
		if n&1 != 0 {
			r = r.Mul(e)
		}
		e = e.Square()
		n >>= 1
	}
	return r
}

// Inv returns the multiplicative inverse of e. The function panics
// if e is zero.
func (e Element) Inv() Element {
	if e.IsZero() {
		panic("gf128: inverse of zero")
	}
	// e^(2^128-2) = e^2 * e^4 * ... * e^(2^127)
	r := One
	s := e
	for i := 1; i < 128; i++ {
		s = s.Square()
		r = r.Mul(s)
	}
	return r
}
