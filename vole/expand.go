//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"fmt"

	"github.com/markkurossi/voleith/gf128"
	"github.com/markkurossi/voleith/gf2"
	"github.com/markkurossi/voleith/xof"
)

// expandRepetition reads ellHat bits r_x from every leaf stream and
// returns u = XOR_x r_x. It adds sum_{x>0} embed(x) * r_x to the
// elements of row, one element per bit position. The streams must
// be positioned at their beginning.
func expandRepetition(streams []xof.XOF, field gf128.SmallField,
	ellHat int, row []gf128.Element) (gf2.Vector, error) {

	if len(streams) != int(field.Order()) {
		return gf2.Vector{}, fmt.Errorf("vole: %d leaves for %d-bit field",
			len(streams), field.Bits())
	}
	if len(row) != ellHat {
		return gf2.Vector{}, fmt.Errorf("vole: row length %d, expected %d",
			len(row), ellHat)
	}

	u := gf2.NewVector(ellHat)
	buf := make([]byte, gf2.ByteLen(ellHat))

	for x, stream := range streams {
		xof.ReadFull(stream, buf)
		r := gf2.FromBytes(ellHat, buf)
		u.Xor(r)
		if x == 0 {
			continue
		}
		e := field.Embed(uint(x))
		for j, ok := r.NextSet(0); ok; j, ok = r.NextSet(j + 1) {
			row[j].Xor(e)
		}
	}
	return u, nil
}
