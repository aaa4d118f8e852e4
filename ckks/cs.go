package ckks

import "github.com/maloleroy/fhe-bpce/cryptosystem"

// UnaryOp is ckks's unary operation alphabet (spec.md §4.6): only
// negation needs no extra operand.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
)

// BinaryOp is ckks's binary operation alphabet. OpMul exists as a tag so
// generic callers can name it, but CS.Operate2 panics if it is ever
// dispatched: native ckks multiplication is unsupported (spec.md §9).
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpMul
)

// CS adapts the encryption/decryption/evaluation triple into
// cryptosystem.CryptoSystem[ScaledPoly, Ciphertext, UnaryOp, BinaryOp].
// The assignment below is a compile-time check of that conformance, not
// just a comment: it fails to build the moment CS drifts from the
// interface's method set.
var _ cryptosystem.CryptoSystem[ScaledPoly, Ciphertext, UnaryOp, BinaryOp] = (*CS)(nil)

type CS struct {
	params Parameters
	enc    *Encryptor
	dec    *Decryptor
	ev     *Evaluator
}

// NewCS builds a CS bundling an Encryptor (under pk), a Decryptor (under
// sk), and an Evaluator.
func NewCS(params Parameters, pk *PublicKey, sk *SecretKey) (*CS, error) {
	dec, err := NewDecryptor(params, sk)
	if err != nil {
		return nil, err
	}
	return &CS{
		params: params,
		enc:    NewEncryptor(params, pk),
		dec:    dec,
		ev:     NewEvaluator(params),
	}, nil
}

// Cipher encrypts the already-encoded plaintext pt.
func (cs *CS) Cipher(pt ScaledPoly) (Ciphertext, error) {
	ct, err := cs.enc.EncryptPlaintextNew(pt)
	if err != nil {
		return Ciphertext{}, err
	}
	return *ct, nil
}

// Decipher decrypts ct into a ScaledPoly.
func (cs *CS) Decipher(ct Ciphertext) ScaledPoly {
	return cs.dec.DecryptNew(&ct)
}

// checkShape panics with ErrMismatchedRingParameters if any half of any
// ct was not produced at this CS's own ring degree: the only structural
// compatibility check possible, since a Ciphertext carries no Parameters
// of its own (spec.md §4.6 leaves operand mismatches implementation-
// defined; Operate1/Operate2 are where this CS defines them).
func (cs *CS) checkShape(cts ...Ciphertext) {
	n := cs.params.ring.N
	for _, ct := range cts {
		for _, half := range [2]ScaledPoly{ct.C0, ct.C1} {
			if len(half.Poly) != 0 && len(half.Poly) != n {
				panic(ErrMismatchedRingParameters)
			}
		}
	}
}

// Operate1 applies op to ct.
func (cs *CS) Operate1(op UnaryOp, ct Ciphertext) Ciphertext {
	cs.checkShape(ct)
	switch op {
	case OpNeg:
		return *cs.ev.NegNew(&ct)
	default:
		panic("ckks: unknown UnaryOp")
	}
}

// Operate2 applies op to (lhs, rhs). OpMul panics: native ckks
// multiplication is unsupported (spec.md §9); use heint for ciphertext-
// ciphertext multiplication.
func (cs *CS) Operate2(op BinaryOp, lhs, rhs Ciphertext) Ciphertext {
	cs.checkShape(lhs, rhs)
	switch op {
	case OpAdd:
		return *cs.ev.AddNew(&lhs, &rhs)
	case OpMul:
		panic(ErrMultiplicationUnsupported)
	default:
		panic("ckks: unknown BinaryOp")
	}
}

// Operate1Inplace is semantically equivalent to Operate1.
func (cs *CS) Operate1Inplace(op UnaryOp, ct *Ciphertext) {
	*ct = cs.Operate1(op, *ct)
}

// Operate2Inplace is semantically equivalent to Operate2, writing into lhs.
func (cs *CS) Operate2Inplace(op BinaryOp, lhs *Ciphertext, rhs Ciphertext) {
	*lhs = cs.Operate2(op, *lhs, rhs)
}

// Relinearize is a no-op: native ckks ciphertexts never grow past two
// ring elements.
func (cs *CS) Relinearize(ct *Ciphertext) {
	*ct = *cs.ev.Relinearize(ct)
}
