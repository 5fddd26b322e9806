//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package xof

import (
	"bytes"
	"testing"
)

var kinds = []Kind{Shake128, Shake256, ChaCha20}

func TestDeterministic(t *testing.T) {
	seed := []byte("0123456789abcdef")
	for _, kind := range kinds {
		a := make([]byte, 100)
		b := make([]byte, 100)
		ReadFull(New(kind, seed), a)
		ReadFull(New(kind, seed), b)
		if !bytes.Equal(a, b) {
			t.Fatalf("%v: streams differ", kind)
		}

		other := make([]byte, 100)
		ReadFull(New(kind, []byte("0123456789abcdeF")), other)
		if bytes.Equal(a, other) {
			t.Fatalf("%v: different seeds give equal streams", kind)
		}
	}
}

func TestChunkedRead(t *testing.T) {
	seed := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for _, kind := range kinds {
		whole := make([]byte, 211)
		ReadFull(New(kind, seed), whole)

		x := New(kind, seed)
		var chunked []byte
		for _, n := range []int{1, 17, 64, 100, 29} {
			buf := make([]byte, n)
			ReadFull(x, buf)
			chunked = append(chunked, buf...)
		}
		if !bytes.Equal(whole, chunked) {
			t.Fatalf("%v: chunked read differs", kind)
		}
	}
}

func TestKinds(t *testing.T) {
	seed := []byte("seed")
	var outputs [][]byte
	for _, kind := range kinds {
		buf := make([]byte, 32)
		ReadFull(New(kind, seed), buf)
		for _, o := range outputs {
			if bytes.Equal(o, buf) {
				t.Fatalf("%v: output equals another kind", kind)
			}
		}
		outputs = append(outputs, buf)
	}
	if Kind(99).String() != "{Kind 99}" {
		t.Fatalf("unknown kind name: %v", Kind(99))
	}
	if ChaCha20.String() != "ChaCha20" {
		t.Fatalf("kind name: %v", ChaCha20)
	}
}

func TestNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("empty seed did not panic")
		}
	}()
	New(Shake128, nil)
}

func BenchmarkShake128(b *testing.B) {
	benchmarkXOF(b, Shake128)
}

func BenchmarkChaCha20(b *testing.B) {
	benchmarkXOF(b, ChaCha20)
}

func benchmarkXOF(b *testing.B, kind Kind) {
	var seed [16]byte
	out := make([]byte, 18)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ReadFull(New(kind, seed[:]), out)
	}
}
