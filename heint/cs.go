package heint

import (
	"github.com/maloleroy/fhe-bpce/cryptosystem"
	"github.com/maloleroy/fhe-bpce/ring"
)

// UnaryOp is heint's unary operation alphabet (spec.md §4.9): negation
// only, deliberately the same shape as ckks's to show the tag meanings
// don't have to differ, while BinaryOp below deliberately does differ.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
)

// BinaryOp is heint's binary operation alphabet: {Add, Sub, MulPlain,
// Mul}, a different shape than ckks's {Add, Mul} on purpose (spec.md §9
// "designated-operation pattern": generic code must ask the scheme which
// tag means add/multiply rather than assume positions line up).
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMulPlain
	OpMul
)

// CS adapts the encryption/decryption/evaluation triple into
// cryptosystem.SelectableCS[Plaintext, Ciphertext, UnaryOp, BinaryOp].
// The assignment below is a compile-time check of that conformance, not
// just a comment: it fails to build the moment CS drifts from the
// interface's method set.
var _ cryptosystem.SelectableCS[Plaintext, Ciphertext, UnaryOp, BinaryOp] = (*CS)(nil)

type CS struct {
	params Parameters
	enc    *Encryptor
	dec    *Decryptor
	ev     *Evaluator
}

// NewCS builds a CS bundling an Encryptor (under pk), a Decryptor (under
// sk), and an Evaluator (under relin, which may be nil if MUL is never
// dispatched).
func NewCS(params Parameters, pk *PublicKey, sk *SecretKey, relin *RelinKey) (*CS, error) {
	dec, err := NewDecryptor(params, sk)
	if err != nil {
		return nil, err
	}
	return &CS{
		params: params,
		enc:    NewEncryptor(params, pk),
		dec:    dec,
		ev:     NewEvaluator(params, relin),
	}, nil
}

// Cipher encrypts pt.
func (cs *CS) Cipher(pt Plaintext) (Ciphertext, error) {
	ct, err := cs.enc.EncryptNew(pt)
	if err != nil {
		return Ciphertext{}, err
	}
	return *ct, nil
}

// Decipher decrypts ct into a Plaintext holding the exact integer
// coefficients recovered (no approximation error to clamp, spec.md §4.9).
func (cs *CS) Decipher(ct Ciphertext) Plaintext {
	values := cs.dec.DecryptToValues(&ct, cs.params.ring.N)
	pt, _ := Encode(cs.params.ring, values)
	return pt
}

// checkShape panics with ErrMismatchedRingParameters if any half of any ct
// was not produced at this CS's own ring degree: the only structural
// compatibility check possible, since a Ciphertext carries no Parameters
// of its own (spec.md §4.6 leaves operand mismatches implementation-
// defined; Operate1/Operate2 are where this CS defines them).
func (cs *CS) checkShape(cts ...Ciphertext) {
	n := cs.params.ring.N
	for _, ct := range cts {
		for _, half := range [2]ring.Poly{ct.C0, ct.C1} {
			if len(half) != 0 && len(half) != n {
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
		panic("heint: unknown UnaryOp")
	}
}

// Operate2 applies op to (lhs, rhs). OpMulPlain treats rhs as a raw
// multiplier by reading rhs.C0 as an unembedded Plaintext (valid only for
// rhs values produced the same way, e.g. selectable flags built from
// OnePlaintext/ZeroPlaintext); OpMul is genuine ciphertext-ciphertext
// multiplication via the relinearisation key.
func (cs *CS) Operate2(op BinaryOp, lhs, rhs Ciphertext) Ciphertext {
	cs.checkShape(lhs, rhs)
	switch op {
	case OpAdd:
		return *cs.ev.AddNew(&lhs, &rhs)
	case OpSub:
		return *cs.ev.SubNew(&lhs, &rhs)
	case OpMulPlain:
		return *cs.ev.MulPlainNew(&lhs, Plaintext{Poly: rhs.C0})
	case OpMul:
		ct, err := cs.ev.MulNew(&lhs, &rhs)
		if err != nil {
			panic(err)
		}
		return *ct
	default:
		panic("heint: unknown BinaryOp")
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

// Relinearize is a no-op: MulNew already folds the tensor product down
// before returning.
func (cs *CS) Relinearize(ct *Ciphertext) {
	*ct = *cs.ev.Relinearize(ct)
}

// AddAlphabet returns the tag meaning "add" (spec.md §4.6).
func (cs *CS) AddAlphabet() BinaryOp { return OpAdd }

// MulAlphabet returns the tag meaning "multiply" (spec.md §4.6): real
// ciphertext-ciphertext multiplication, the operation
// selectable.Collection.FoldWhereFlag needs.
func (cs *CS) MulAlphabet() BinaryOp { return OpMul }

// ZeroPlaintext returns the additive identity plaintext.
func (cs *CS) ZeroPlaintext() Plaintext { return ZeroPlaintext() }

// OnePlaintext returns the multiplicative identity plaintext.
func (cs *CS) OnePlaintext() Plaintext { return OnePlaintext() }
