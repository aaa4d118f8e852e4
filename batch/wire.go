package batch

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ErrMalformedWire reports a batch-decoding failure at a specific byte
// offset into the payload (spec.md §7.4, §8 scenario "Batch decoding
// malformed").
type ErrMalformedWire struct {
	Offset int
	Err    error
}

func (e *ErrMalformedWire) Error() string {
	return fmt.Sprintf("batch: malformed wire data at offset %d: %v", e.Offset, e.Err)
}

func (e *ErrMalformedWire) Unwrap() error { return e.Err }

// WriteTo serialises c using writeCT to encode each ciphertext, following
// spec.md §6: a sequence of (lhs, rhs, op2-byte) triples, the whole
// sequence framed by an 8-byte little-endian payload length.
func (c *Container[CT, Op2]) WriteTo(w io.Writer, writeCT func(io.Writer, CT) error) (int64, error) {
	var payload bytes.Buffer
	for _, item := range c.items {
		if err := writeCT(&payload, item.Lhs); err != nil {
			return 0, err
		}
		if err := writeCT(&payload, item.Rhs); err != nil {
			return 0, err
		}
		if err := payload.WriteByte(byte(item.Op)); err != nil {
			return 0, err
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(payload.Len())); err != nil {
		return 0, err
	}
	n, err := payload.WriteTo(w)
	return n + 8, err
}

// MarshalBinary encodes c into a freshly allocated byte slice.
func (c *Container[CT, Op2]) MarshalBinary(writeCT func(io.Writer, CT) error) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf, writeCT); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadContainer decodes a Container previously written by WriteTo/
// MarshalBinary. readCT must consume exactly one ciphertext's bytes from
// r; it carries the scheme-specific context spec.md §4.7 requires
// threading through the decoder.
func ReadContainer[CT any, Op2 ~uint8](r io.Reader, readCT func(io.Reader) (CT, error)) (*Container[CT, Op2], error) {
	var length uint64
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, &ErrMalformedWire{Offset: 0, Err: err}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, &ErrMalformedWire{Offset: 8, Err: err}
	}

	br := bytes.NewReader(payload)
	c := NewContainer[CT, Op2]()
	for br.Len() > 0 {
		offset := int(length) - br.Len() + 8
		lhs, err := readCT(br)
		if err != nil {
			return nil, &ErrMalformedWire{Offset: offset, Err: err}
		}
		rhs, err := readCT(br)
		if err != nil {
			return nil, &ErrMalformedWire{Offset: offset, Err: err}
		}
		opByte, err := br.ReadByte()
		if err != nil {
			return nil, &ErrMalformedWire{Offset: offset, Err: err}
		}
		c.Push(lhs, rhs, Op2(opByte))
	}
	return c, nil
}

// UnmarshalContainer decodes a byte slice produced by MarshalBinary.
func UnmarshalContainer[CT any, Op2 ~uint8](data []byte, readCT func(io.Reader) (CT, error)) (*Container[CT, Op2], error) {
	return ReadContainer[CT, Op2](bytes.NewReader(data), readCT)
}
