package heint

import "fmt"

var (
	ErrPlaintextTooLong         = fmt.Errorf("heint: plaintext vector longer than ring degree N")
	ErrDecryptionKeyNil         = fmt.Errorf("heint: decryption key is nil")
	ErrRelinearizationKeyNil    = fmt.Errorf("heint: relinearization key is nil")
	ErrMismatchedRingParameters = fmt.Errorf("heint: operands do not share ring parameters")
)
