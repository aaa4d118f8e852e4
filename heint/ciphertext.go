package heint

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/maloleroy/fhe-bpce/ring"
)

// Ciphertext is a pair of ring elements (C0, C1), the same RLWE shape as
// ckks.Ciphertext but without a floating-point scale: the fixed-point
// resolution lives in Parameters.T via delta(), a single constant for the
// whole scheme rather than something that travels per-ciphertext.
type Ciphertext struct {
	C0, C1 ring.Poly
}

// BinarySize returns the number of bytes WriteTo will emit for ct.
func (ct Ciphertext) BinarySize() int {
	return polyBinarySize(ct.C0) + polyBinarySize(ct.C1)
}

func polyBinarySize(p ring.Poly) int {
	return 4 + 8*len(p)
}

// WriteTo writes ct as two length-prefixed, little-endian int64
// coefficient blocks (C0 then C1), mirroring ckks.Ciphertext's wire shape
// minus the per-half scale field.
func (ct Ciphertext) WriteTo(w io.Writer) (n int64, err error) {
	for _, p := range [2]ring.Poly{ct.C0, ct.C1} {
		if err = binary.Write(w, binary.LittleEndian, uint32(len(p))); err != nil {
			return n, err
		}
		n += 4
		for _, c := range p {
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
	halves := [2]*ring.Poly{&ct.C0, &ct.C1}
	for _, half := range halves {
		var length uint32
		if err = binary.Read(r, binary.LittleEndian, &length); err != nil {
			return n, err
		}
		n += 4

		poly := make(ring.Poly, length)
		for i := range poly {
			var c int64
			if err = binary.Read(r, binary.LittleEndian, &c); err != nil {
				return n, fmt.Errorf("heint: malformed ciphertext at byte offset %d: %w", n, err)
			}
			poly[i] = uint64(c)
			n += 8
		}
		*half = poly
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
