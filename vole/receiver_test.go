//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/markkurossi/voleith/env"
	"github.com/markkurossi/voleith/gf128"
	"github.com/markkurossi/voleith/gf2"
	"github.com/markkurossi/voleith/veccom"
	"github.com/markkurossi/voleith/xof"
)

var (
	errCommitment  = errors.New("commitment digest mismatch")
	errConsistency = errors.New("consistency check failed")
)

// receiver implements the verifier side of the protocol for tests.
type receiver struct {
	config *env.Config
	ggm    *veccom.GGM
	field  gf128.SmallField
	ell    int
	tau    int
}

func newReceiver(config *env.Config, field gf128.SmallField,
	ell, tau int) *receiver {
	return &receiver{
		config: config,
		ggm:    veccom.NewGGM(config),
		field:  field,
		ell:    ell,
		tau:    tau,
	}
}

// verify checks the protocol transcript and returns the receiver's
// VOLE output q with shape (ell, tau).
func (r *receiver) verify(commitment *Commitment, points []gf128.Element,
	response *Response, deltas []gf128.Element,
	decommitment *Decommitment) (gf128.Matrix, error) {

	ellHat := r.ell + r.tau
	logQ := r.field.Bits()

	var offset int
	switch len(commitment.Corrections) {
	case r.tau - 1:
	case r.tau:
		offset = 1
	default:
		return gf128.Matrix{}, fmt.Errorf("%d corrections",
			len(commitment.Corrections))
	}
	if len(decommitment.Openings) != r.tau {
		return gf128.Matrix{}, fmt.Errorf("%d openings",
			len(decommitment.Openings))
	}

	qt := gf128.NewMatrix(r.tau, ellHat)
	h := r.config.GetHash()
	buf := make([]byte, gf2.ByteLen(ellHat))

	for i := 0; i < r.tau; i++ {
		index, ok := r.field.Extract(deltas[i])
		if !ok {
			return gf128.Matrix{}, fmt.Errorf("invalid challenge %v", deltas[i])
		}
		digest, streams, err := r.ggm.Recompute(logQ,
			decommitment.Openings[i], index)
		if err != nil {
			return gf128.Matrix{}, err
		}
		h.Write(digest)

		row := qt.Row(i)
		for x, stream := range streams {
			if stream == nil {
				continue
			}
			xof.ReadFull(stream, buf)
			rx := gf2.FromBytes(ellHat, buf)
			e := r.field.Embed(uint(x) ^ index)
			for j, ok := rx.NextSet(0); ok; j, ok = rx.NextSet(j + 1) {
				row[j].Xor(e)
			}
		}

		var c gf2.Vector
		if i > 0 {
			c = commitment.Corrections[i-1+offset]
		} else if offset > 0 {
			c = commitment.Corrections[0]
		}
		for j, ok := c.NextSet(0); ok; j, ok = c.NextSet(j + 1) {
			row[j].Xor(deltas[i])
		}
	}
	if !bytes.Equal(h.Sum(nil), commitment.Digest) {
		return gf128.Matrix{}, errCommitment
	}
	q := qt.Transpose()

	if len(response.Vector) != r.ell {
		return gf128.Matrix{}, errConsistency
	}
	folded := NewFold(points, r.ell).Matrix(q)
	for j := 0; j < r.ell; j++ {
		for c := 0; c < r.tau; c++ {
			folded.Set(j, c,
				folded.At(j, c).Add(response.Vector[j].Mul(deltas[c])))
		}
	}
	if !bytes.Equal(HashMatrix(r.config.GetHash(), folded), response.Digest) {
		return gf128.Matrix{}, errConsistency
	}

	return q.Slice(r.ell), nil
}
