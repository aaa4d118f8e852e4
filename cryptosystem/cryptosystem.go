// Package cryptosystem declares the scheme-shaped capability abstraction
// spec.md §4.6 asks for: a small, value-oriented interface that concrete
// back-ends differing in storage, error model, and key management can all
// implement identically, so that the batch and selectable packages can be
// written once, generically, against it.
package cryptosystem

// CryptoSystem is implemented by a concrete homomorphic scheme over
// plaintexts PT, ciphertexts CT, a unary-operation alphabet Op1 and a
// binary-operation alphabet Op2. Both alphabets are small, enumerable tag
// sets (e.g. ckks's {Add, Mul} or heint's {Add, Sub, MulPlain, Mul}); which tag
// means what is scheme-specific, which is why generic code never assumes
// positions or names line up across schemes (spec.md §9 "designated-
// operation pattern").
type CryptoSystem[PT any, CT any, Op1 comparable, Op2 comparable] interface {
	// Cipher produces a ciphertext at the scheme's standard scale/level.
	// Deterministic up to fresh randomness.
	Cipher(pt PT) (CT, error)

	// Decipher inverts Cipher up to approximation for CKKS-shaped schemes;
	// exact for BFV/BGV/TFHE-integer-shaped schemes.
	Decipher(ct CT) PT

	// Operate1 applies the declared unary tag, returning a new ciphertext.
	Operate1(op Op1, ct CT) CT

	// Operate2 applies the declared binary tag to (lhs, rhs), returning a
	// new ciphertext. Preconditions on operand compatibility (same scheme,
	// same scale class) are the caller's responsibility; mismatches are
	// implementation-defined.
	Operate2(op Op2, lhs, rhs CT) CT

	// Operate1Inplace is semantically equivalent to Operate1 but permitted
	// to reuse ct's storage.
	Operate1Inplace(op Op1, ct *CT)

	// Operate2Inplace is semantically equivalent to Operate2 but permitted
	// to reuse lhs's storage.
	Operate2Inplace(op Op2, lhs *CT, rhs CT)

	// Relinearize is a no-op for schemes that never grow ciphertext degree;
	// schemes carrying ciphertext "size" state override it.
	Relinearize(ct *CT)
}

// SelectableCS refines CryptoSystem with the designated operations and
// plaintext identities the selectable collection needs (spec.md §4.6): a
// designated ADD and MUL binary op, and additive/multiplicative identity
// plaintexts ("zero"/"one").
type SelectableCS[PT any, CT any, Op1 comparable, Op2 comparable] interface {
	CryptoSystem[PT, CT, Op1, Op2]

	// AddAlphabet returns the tag meaning "add" in this scheme's Op2 set.
	AddAlphabet() Op2
	// MulAlphabet returns the tag meaning "multiply" in this scheme's Op2
	// set.
	MulAlphabet() Op2
	// ZeroPlaintext returns the additive identity plaintext.
	ZeroPlaintext() PT
	// OnePlaintext returns the multiplicative identity plaintext.
	OnePlaintext() PT
}
