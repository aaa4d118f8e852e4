package ckks

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Ciphertext is a pair of ScaledPoly sharing a common scale (spec.md §3).
// Fresh ciphertexts carry the encryption scale; ciphertexts produced by
// homomorphic operations may carry a rescaled factor, which is why the
// scale travels with the ciphertext rather than living only on the
// Parameters.
type Ciphertext struct {
	C0, C1 ScaledPoly
}

// BinarySize returns the number of bytes WriteTo will emit for ct.
func (ct Ciphertext) BinarySize() int {
	return scaledPolyBinarySize(ct.C0) + scaledPolyBinarySize(ct.C1)
}

func scaledPolyBinarySize(sp ScaledPoly) int {
	return 8 /* scale */ + 4 /* length */ + 8*len(sp.Poly)
}

// WriteTo writes ct in the wire format of spec.md §6: for each half, the
// scale as an IEEE-754 double, the polynomial length as a uint32, then that
// many little-endian signed int64 coefficients, halves concatenated C0
// then C1.
func (ct Ciphertext) WriteTo(w io.Writer) (n int64, err error) {
	for _, sp := range [2]ScaledPoly{ct.C0, ct.C1} {
		if err = binary.Write(w, binary.LittleEndian, sp.Scale); err != nil {
			return n, err
		}
		n += 8

		if err = binary.Write(w, binary.LittleEndian, uint32(len(sp.Poly))); err != nil {
			return n, err
		}
		n += 4

		for _, c := range sp.Poly {
			if err = binary.Write(w, binary.LittleEndian, int64(c)); err != nil {
				return n, err
			}
			n += 8
		}
	}
	return n, nil
}

// ReadFrom reads a Ciphertext previously written by WriteTo.
func (ct *Ciphertext) ReadFrom(r io.Reader) (n int64, err error) {
	halves := [2]*ScaledPoly{&ct.C0, &ct.C1}
	for _, sp := range halves {
		if err = binary.Read(r, binary.LittleEndian, &sp.Scale); err != nil {
			return n, err
		}
		n += 8

		var length uint32
		if err = binary.Read(r, binary.LittleEndian, &length); err != nil {
			return n, err
		}
		n += 4

		sp.Poly = make([]uint64, length)
		for i := range sp.Poly {
			var c int64
			if err = binary.Read(r, binary.LittleEndian, &c); err != nil {
				return n, fmt.Errorf("ckks: malformed ciphertext at byte offset %d: %w", n, err)
			}
			sp.Poly[i] = uint64(c)
			n += 8
		}
	}
	return n, nil
}

// MarshalBinary encodes ct into a freshly allocated byte slice.
func (ct Ciphertext) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(ct.BinarySize())
	_, err := ct.WriteTo(&buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a byte slice produced by MarshalBinary.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	_, err := ct.ReadFrom(bytes.NewReader(data))
	return err
}
