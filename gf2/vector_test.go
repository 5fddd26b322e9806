//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFromBytes(t *testing.T) {
	data := []byte{0x01, 0x80, 0xff}
	v := FromBytes(20, data)
	if v.Len() != 20 {
		t.Fatalf("Len: %d", v.Len())
	}
	if v.String() != "10000000000000011111" {
		t.Fatalf("String: %s", v)
	}
	if v.Count() != 6 {
		t.Fatalf("Count: %d", v.Count())
	}
	// The bits past the vector length are dropped.
	if !bytes.Equal(v.Bytes(), []byte{0x01, 0x80, 0x0f}) {
		t.Fatalf("Bytes: %x", v.Bytes())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 7, 8, 63, 64, 65, 144, 200} {
		data := make([]byte, ByteLen(n))
		rng.Read(data)
		if n%8 != 0 {
			data[len(data)-1] &= byte(1<<(n%8)) - 1
		}
		v := FromBytes(n, data)
		if !bytes.Equal(v.Bytes(), data) {
			t.Fatalf("n=%d: %x != %x", n, v.Bytes(), data)
		}
		for i := 0; i < n; i++ {
			exp := uint(data[i/8]>>(i%8)) & 1
			if v.Bit(i) != exp {
				t.Fatalf("n=%d: bit %d", n, i)
			}
		}
	}
}

func TestXor(t *testing.T) {
	a := FromBools([]bool{true, false, true, true})
	b := FromBools([]bool{true, true, false, true})
	c := a.Clone()
	c.Xor(b)
	if c.String() != "0110" {
		t.Fatalf("Xor: %s", c)
	}
	if a.String() != "1011" {
		t.Fatalf("Clone shares storage: %s", a)
	}
	c.Xor(b)
	if !c.Equal(a) {
		t.Fatalf("(a^b)^b != a")
	}

	d := NewVector(6)
	d.SetBit(5, true)
	d.XorPrefix(a)
	if d.String() != "101101" {
		t.Fatalf("XorPrefix: %s", d)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("length mismatch did not panic")
		}
	}()
	a.Xor(d)
}

func TestPrefix(t *testing.T) {
	v := FromBools([]bool{true, false, true, true, false, true})
	p := v.Prefix(4)
	if p.Len() != 4 || p.String() != "1011" {
		t.Fatalf("Prefix: %s", p)
	}
	if v.Prefix(0).Len() != 0 {
		t.Fatalf("empty prefix")
	}
	if !v.Prefix(6).Equal(v) {
		t.Fatalf("full prefix")
	}
	if v.Equal(p) {
		t.Fatalf("vectors of different length are equal")
	}
}

func TestNextSet(t *testing.T) {
	v := NewVector(130)
	v.SetBit(3, true)
	v.SetBit(64, true)
	v.SetBit(129, true)

	var got []int
	for i, ok := v.NextSet(0); ok; i, ok = v.NextSet(i + 1) {
		got = append(got, i)
	}
	if len(got) != 3 || got[0] != 3 || got[1] != 64 || got[2] != 129 {
		t.Fatalf("NextSet: %v", got)
	}
	v.SetBit(64, false)
	if v.Count() != 2 {
		t.Fatalf("Count: %d", v.Count())
	}
}
