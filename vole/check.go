//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"fmt"
	"hash"

	"github.com/markkurossi/voleith/gf128"
	"github.com/markkurossi/voleith/gf2"
)

// Fold implements the linear map of the consistency check. It folds
// the num_repetitions mask positions at the tail of an extended VOLE
// into its first voleLength positions:
//
//	H(x)[j] = x[j] + sum_i r_i^(j+1) * x[voleLength+i]
//
// The map is linear, so applying it to the verifier's q gives
// H(u)*Delta + H(v) and the verifier can check the sender's response
// without learning u.
type Fold struct {
	voleLength int
	tail       int
	weights    gf128.Matrix
}

// NewFold creates the fold for the challenge points. The function
// panics if voleLength is not positive.
func NewFold(points []gf128.Element, voleLength int) *Fold {
	if voleLength <= 0 {
		panic(fmt.Sprintf("vole: invalid VOLE length %d", voleLength))
	}
	weights := gf128.NewMatrix(voleLength, len(points))
	for i, r := range points {
		for j, p := range gf128.Powers(r, voleLength) {
			weights.Set(j, i, p)
		}
	}
	return &Fold{
		voleLength: voleLength,
		tail:       len(points),
		weights:    weights,
	}
}

// Bits applies the fold to the bit vector u of length
// voleLength+len(points).
func (f *Fold) Bits(u gf2.Vector) []gf128.Element {
	if u.Len() != f.voleLength+f.tail {
		panic(fmt.Sprintf("vole: fold input length %d, expected %d",
			u.Len(), f.voleLength+f.tail))
	}
	var set []int
	for i := 0; i < f.tail; i++ {
		if u.Test(f.voleLength + i) {
			set = append(set, i)
		}
	}
	terms := make([]gf128.Element, len(set))

	result := make([]gf128.Element, f.voleLength)
	for j := range result {
		w := f.weights.Row(j)
		for k, i := range set {
			terms[k] = w[i]
		}
		result[j] = gf128.Sum(terms)
		if u.Test(j) {
			result[j].Xor(gf128.One)
		}
	}
	return result
}

// Matrix applies the fold to every column of the matrix m of shape
// (voleLength+len(points), cols).
func (f *Fold) Matrix(m gf128.Matrix) gf128.Matrix {
	if m.Rows != f.voleLength+f.tail {
		panic(fmt.Sprintf("vole: fold input %v, expected %d rows",
			m, f.voleLength+f.tail))
	}
	tail := make([][]gf128.Element, m.Cols)
	for c := range tail {
		tail[c] = m.Column(c)[f.voleLength:]
	}
	result := gf128.NewMatrix(f.voleLength, m.Cols)
	masks := make([]gf128.Element, m.Cols)
	for j := 0; j < f.voleLength; j++ {
		w := f.weights.Row(j)
		for c := range masks {
			masks[c] = gf128.InnerProduct(w, tail[c])
		}
		row := result.Row(j)
		copy(row, m.Row(j))
		gf128.AddTo(row, masks)
	}
	return result
}

// HashMatrix hashes the matrix m row by row with h and returns the
// digest.
func HashMatrix(h hash.Hash, m gf128.Matrix) []byte {
	var buf gf128.Data
	for _, e := range m.Data {
		h.Write(e.Bytes(&buf))
	}
	return h.Sum(nil)
}
