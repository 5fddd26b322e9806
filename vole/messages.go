//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vole

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/markkurossi/voleith/gf128"
	"github.com/markkurossi/voleith/gf2"
	"github.com/markkurossi/voleith/veccom"
)

// maxEncodedItems limits the item counts accepted by the decoders.
const maxEncodedItems = 1 << 24

var errTruncated = errors.New("vole: truncated message")

// Commitment implements the first protocol message. It holds the
// aggregate digest of the per-repetition vector commitments and the
// correction values that align every repetition to the shared
// vector u.
type Commitment struct {
	Digest      []byte
	Corrections []gf2.Vector
}

// Response implements the response to the consistency challenge.
type Response struct {
	Vector []gf128.Element
	Digest []byte
}

// Decommitment implements the final protocol message: one
// all-but-one opening per repetition.
type Decommitment struct {
	Openings []*veccom.Opening
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) uint32() (int, error) {
	if d.pos+4 > len(d.data) {
		return 0, errTruncated
	}
	v := binary.BigEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	if v > maxEncodedItems {
		return 0, fmt.Errorf("vole: invalid length %d", v)
	}
	return int(v), nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if d.pos+n > len(d.data) {
		return nil, errTruncated
	}
	v := d.data[d.pos : d.pos+n]
	d.pos += n
	return v, nil
}

func (d *decoder) data32() ([]byte, error) {
	n, err := d.uint32()
	if err != nil {
		return nil, err
	}
	v, err := d.bytes(n)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), v...), nil
}

func (d *decoder) done() error {
	if d.pos != len(d.data) {
		return fmt.Errorf("vole: %d trailing bytes", len(d.data)-d.pos)
	}
	return nil
}

func appendData(b, data []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	return append(b, data...)
}

// Size returns the encoded commitment size in bytes.
func (c *Commitment) Size() int {
	size := 4 + len(c.Digest) + 4
	for _, v := range c.Corrections {
		size += 4 + gf2.ByteLen(v.Len())
	}
	return size
}

// MarshalBinary encodes the commitment.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	b := appendData(make([]byte, 0, c.Size()), c.Digest)
	b = binary.BigEndian.AppendUint32(b, uint32(len(c.Corrections)))
	for _, v := range c.Corrections {
		b = binary.BigEndian.AppendUint32(b, uint32(v.Len()))
		b = v.Append(b)
	}
	return b, nil
}

// UnmarshalBinary decodes the commitment from data.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	d := &decoder{data: data}

	digest, err := d.data32()
	if err != nil {
		return err
	}
	count, err := d.uint32()
	if err != nil {
		return err
	}
	corrections := make([]gf2.Vector, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		n, err := d.uint32()
		if err != nil {
			return err
		}
		v, err := d.bytes(gf2.ByteLen(n))
		if err != nil {
			return err
		}
		corrections = append(corrections, gf2.FromBytes(n, v))
	}
	if err := d.done(); err != nil {
		return err
	}
	c.Digest = digest
	c.Corrections = corrections
	return nil
}

// Size returns the encoded response size in bytes.
func (r *Response) Size() int {
	return 4 + len(r.Vector)*16 + 4 + len(r.Digest)
}

// MarshalBinary encodes the response.
func (r *Response) MarshalBinary() ([]byte, error) {
	b := binary.BigEndian.AppendUint32(nil, uint32(len(r.Vector)))
	for _, e := range r.Vector {
		b = e.Append(b)
	}
	return appendData(b, r.Digest), nil
}

// UnmarshalBinary decodes the response from data.
func (r *Response) UnmarshalBinary(data []byte) error {
	d := &decoder{data: data}

	count, err := d.uint32()
	if err != nil {
		return err
	}
	buf, err := d.bytes(count * 16)
	if err != nil {
		return err
	}
	vector := make([]gf128.Element, count)
	for i := range vector {
		vector[i].SetBytes(buf[i*16:])
	}
	digest, err := d.data32()
	if err != nil {
		return err
	}
	if err := d.done(); err != nil {
		return err
	}
	r.Vector = vector
	r.Digest = digest
	return nil
}

// Size returns the encoded decommitment size in bytes.
func (dc *Decommitment) Size() int {
	size := 4
	for _, o := range dc.Openings {
		size += o.Size()
	}
	return size
}

// MarshalBinary encodes the decommitment.
func (dc *Decommitment) MarshalBinary() ([]byte, error) {
	b := binary.BigEndian.AppendUint32(nil, uint32(len(dc.Openings)))
	for _, o := range dc.Openings {
		b = o.Append(b)
	}
	return b, nil
}

// UnmarshalBinary decodes the decommitment from data.
func (dc *Decommitment) UnmarshalBinary(data []byte) error {
	d := &decoder{data: data}

	count, err := d.uint32()
	if err != nil {
		return err
	}
	openings := make([]*veccom.Opening, 0, min(count, 1024))
	for i := 0; i < count; i++ {
		o, n, err := veccom.Parse(d.data[d.pos:])
		if err != nil {
			return err
		}
		d.pos += n
		openings = append(openings, o)
	}
	if err := d.done(); err != nil {
		return err
	}
	dc.Openings = openings
	return nil
}
