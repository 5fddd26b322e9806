//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf128

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Element implements a reduced GF(2^128) field element. Lo holds the
// coefficients of x^0...x^63 and Hi the coefficients of
// x^64...x^127.
type Element struct {
	Lo uint64
	Hi uint64
}

// Data contains the canonical 16-byte little-endian encoding of an
// element.
type Data [16]byte

var (
	// Zero is the additive identity.
	Zero = Element{}

	// One is the multiplicative identity.
	One = Element{Lo: 1}

	// X is the field generator x.
	X = Element{Lo: 2}
)

// FromUint128 creates an element from the high and low 64-bit halves
// of a 128-bit integer.
func FromUint128(hi, lo uint64) Element {
	return Element{
		Lo: lo,
		Hi: hi,
	}
}

// Random creates a new random element.
func Random(rand io.Reader) (Element, error) {
	var buf Data
	var e Element

	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return e, err
	}
	e.SetData(&buf)
	return e, nil
}

func (e Element) String() string {
	return fmt.Sprintf("%016x%016x", e.Hi, e.Lo)
}

// IsZero tests if the element is zero.
func (e Element) IsZero() bool {
	return e.Lo == 0 && e.Hi == 0
}

// Equal tests if the elements are equal.
func (e Element) Equal(o Element) bool {
	return e.Lo == o.Lo && e.Hi == o.Hi
}

// Add returns e+o.
func (e Element) Add(o Element) Element {
	return Element{
		Lo: e.Lo ^ o.Lo,
		Hi: e.Hi ^ o.Hi,
	}
}

// Xor adds the argument element to this element in place.
func (e *Element) Xor(o Element) {
	e.Lo ^= o.Lo
	e.Hi ^= o.Hi
}

// Bit returns the coefficient of x^i.
func (e Element) Bit(i int) uint {
	if i < 64 {
		return uint(e.Lo>>i) & 1
	}
	return uint(e.Hi>>(i-64)) & 1
}

// GetData gets the element as element data.
func (e Element) GetData(buf *Data) {
	binary.LittleEndian.PutUint64(buf[0:8], e.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], e.Hi)
}

// SetData sets the element from element data.
func (e *Element) SetData(data *Data) {
	e.Lo = binary.LittleEndian.Uint64((*data)[0:8])
	e.Hi = binary.LittleEndian.Uint64((*data)[8:16])
}

// Bytes returns the element data as bytes.
func (e Element) Bytes(buf *Data) []byte {
	e.GetData(buf)
	return buf[:]
}

// SetBytes sets the element from the first 16 bytes of data.
func (e *Element) SetBytes(data []byte) {
	e.Lo = binary.LittleEndian.Uint64(data[0:8])
	e.Hi = binary.LittleEndian.Uint64(data[8:16])
}

// Append appends the canonical encoding of the element to b.
func (e Element) Append(b []byte) []byte {
	b = binary.LittleEndian.AppendUint64(b, e.Lo)
	return binary.LittleEndian.AppendUint64(b, e.Hi)
}
