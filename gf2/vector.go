//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gf2 implements fixed-length bit vectors over GF(2).
package gf2

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector implements a fixed-length GF(2) vector. The zero value is
// an empty vector.
type Vector struct {
	n    int
	bits *bitset.BitSet
}

// NewVector creates a new zero vector of length n.
func NewVector(n int) Vector {
	return Vector{
		n:    n,
		bits: bitset.New(uint(n)),
	}
}

// FromBytes creates a vector of length n from the packed bytes
// data. Bit j of the vector is bit j%8 of data[j/8]. The function
// panics if data is shorter than ByteLen(n).
func FromBytes(n int, data []byte) Vector {
	if len(data) < ByteLen(n) {
		panic(fmt.Sprintf("gf2: %d bytes for %d bits", len(data), n))
	}
	words := make([]uint64, (n+63)/64)
	var buf [8]byte
	for i := range words {
		copy(buf[:], data[i*8:min(i*8+8, ByteLen(n))])
		words[i] = binary.LittleEndian.Uint64(buf[:])
		clear(buf[:])
	}
	if n%64 != 0 {
		words[len(words)-1] &= (1 << (n % 64)) - 1
	}
	return Vector{
		n:    n,
		bits: bitset.FromWithLength(uint(n), words),
	}
}

// FromBools creates a vector from the boolean values.
func FromBools(values []bool) Vector {
	v := NewVector(len(values))
	for i, b := range values {
		if b {
			v.bits.Set(uint(i))
		}
	}
	return v
}

// ByteLen returns the number of bytes needed to hold n bits.
func ByteLen(n int) int {
	return (n + 7) / 8
}

// Len returns the vector length in bits.
func (v Vector) Len() int {
	return v.n
}

// Bit returns bit i as 0 or 1.
func (v Vector) Bit(i int) uint {
	if v.Test(i) {
		return 1
	}
	return 0
}

// Test tests if bit i is set.
func (v Vector) Test(i int) bool {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("gf2: index %d out of range [0,%d)", i, v.n))
	}
	return v.bits.Test(uint(i))
}

// SetBit sets bit i to the value b.
func (v Vector) SetBit(i int, b bool) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("gf2: index %d out of range [0,%d)", i, v.n))
	}
	v.bits.SetTo(uint(i), b)
}

// Xor adds the argument vector to this vector in place. The function
// panics if the vector lengths differ.
func (v Vector) Xor(o Vector) {
	if v.n != o.n {
		panic(fmt.Sprintf("gf2: xor length mismatch: %d != %d", v.n, o.n))
	}
	if v.n == 0 {
		return
	}
	v.bits.InPlaceSymmetricDifference(o.bits)
}

// XorPrefix adds the argument vector to the first o.Len() bits of
// this vector in place.
func (v Vector) XorPrefix(o Vector) {
	if o.n > v.n {
		panic(fmt.Sprintf("gf2: xor prefix length %d > %d", o.n, v.n))
	}
	for i, ok := o.NextSet(0); ok; i, ok = o.NextSet(i + 1) {
		v.bits.Flip(uint(i))
	}
}

// NextSet returns the index of the next set bit at or after i.
func (v Vector) NextSet(i int) (int, bool) {
	if v.n == 0 || i >= v.n {
		return 0, false
	}
	next, ok := v.bits.NextSet(uint(i))
	if !ok || int(next) >= v.n {
		return 0, false
	}
	return int(next), true
}

// Count returns the number of set bits.
func (v Vector) Count() int {
	if v.n == 0 {
		return 0
	}
	return int(v.bits.Count())
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	if v.n == 0 {
		return Vector{}
	}
	return Vector{
		n:    v.n,
		bits: v.bits.Clone(),
	}
}

// Prefix returns a copy of the first n bits of the vector.
func (v Vector) Prefix(n int) Vector {
	if n < 0 || n > v.n {
		panic(fmt.Sprintf("gf2: prefix %d of %d bits", n, v.n))
	}
	result := NewVector(n)
	for i, ok := v.NextSet(0); ok && i < n; i, ok = v.NextSet(i + 1) {
		result.bits.Set(uint(i))
	}
	return result
}

// Equal tests if the vectors are equal.
func (v Vector) Equal(o Vector) bool {
	if v.n != o.n {
		return false
	}
	if v.n == 0 {
		return true
	}
	return v.bits.Equal(o.bits)
}

// Bytes returns the vector as packed bytes.
func (v Vector) Bytes() []byte {
	return v.Append(nil)
}

// Append appends the packed vector bytes to b.
func (v Vector) Append(b []byte) []byte {
	start := len(b)
	b = append(b, make([]byte, ByteLen(v.n))...)
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		b[start+i/8] |= 1 << (i % 8)
	}
	return b
}

func (v Vector) String() string {
	var sb strings.Builder
	for i := 0; i < v.n; i++ {
		if v.bits.Test(uint(i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
