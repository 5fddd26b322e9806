//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package veccom

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Opening implements an all-but-one opening of a commitment. It
// holds the commitment IV, the co-path sibling seeds from the root
// level down to the leaf level, and the commitment of the hidden
// leaf.
type Opening struct {
	IV         IV
	Siblings   []Seed
	Commitment LeafCommitment
}

// Size returns the encoded opening size in bytes.
func (o *Opening) Size() int {
	return IVSize + 4 + len(o.Siblings)*SeedSize + LeafCommitmentSize
}

// MarshalBinary encodes the opening.
func (o *Opening) MarshalBinary() ([]byte, error) {
	return o.Append(make([]byte, 0, o.Size())), nil
}

// Append appends the encoded opening to b.
func (o *Opening) Append(b []byte) []byte {
	b = append(b, o.IV[:]...)
	b = binary.BigEndian.AppendUint32(b, uint32(len(o.Siblings)))
	for _, s := range o.Siblings {
		b = append(b, s[:]...)
	}
	return append(b, o.Commitment[:]...)
}

// UnmarshalBinary decodes the opening from data.
func (o *Opening) UnmarshalBinary(data []byte) error {
	n, err := o.parse(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("veccom: %d trailing bytes in opening", len(data)-n)
	}
	return nil
}

// Parse decodes an opening from the beginning of data and returns
// the number of bytes consumed.
func Parse(data []byte) (*Opening, int, error) {
	o := new(Opening)
	n, err := o.parse(data)
	if err != nil {
		return nil, 0, err
	}
	return o, n, nil
}

func (o *Opening) parse(data []byte) (int, error) {
	if len(data) < IVSize+4 {
		return 0, errors.New("veccom: truncated opening")
	}
	copy(o.IV[:], data)
	pos := IVSize

	count := binary.BigEndian.Uint32(data[pos:])
	pos += 4
	if count > MaxLogQ {
		return 0, fmt.Errorf("veccom: invalid sibling count %d", count)
	}
	if len(data) < pos+int(count)*SeedSize+LeafCommitmentSize {
		return 0, errors.New("veccom: truncated opening")
	}
	o.Siblings = make([]Seed, count)
	for i := range o.Siblings {
		copy(o.Siblings[i][:], data[pos:])
		pos += SeedSize
	}
	copy(o.Commitment[:], data[pos:])
	pos += LeafCommitmentSize

	return pos, nil
}
