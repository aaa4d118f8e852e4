package ckks

import "fmt"

// Error kinds from spec.md §7.
var (
	ErrInvalidScale              = fmt.Errorf("ckks: scale must be strictly positive")
	ErrInvalidParameters         = fmt.Errorf("ckks: invalid parameters")
	ErrPlaintextTooLong          = fmt.Errorf("ckks: plaintext vector longer than ring degree N")
	ErrMultiplicationUnsupported = fmt.Errorf("ckks: ciphertext-ciphertext multiplication is unsupported in the native core (spec.md §4.5/§9); use an adapter scheme")
	ErrDecryptionKeyNil          = fmt.Errorf("ckks: decryption key is nil")
	ErrMismatchedRingParameters  = fmt.Errorf("ckks: operands do not share ring parameters")
)
