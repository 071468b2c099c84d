// Package limits provides centralized size limits for the nacl primitives.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// AuthKeySize is the HMAC-SHA-512-256 key size. Shorter or longer keys must be
	// padded or hashed by the caller.
	AuthKeySize = 32

	// AuthSize is the size of an HMAC-SHA-512-256 authenticator
	AuthSize = 32

	// SignSeedSize is the size of the Ed25519 seed
	SignSeedSize = 32

	// SignPublicKeySize is the size of an Ed25519 verifying key
	SignPublicKeySize = 32

	// SignPrivateKeySize is the size of an Ed25519 signing key (seed || public key)
	SignPrivateKeySize = SignSeedSize + SignPublicKeySize

	// SignatureSize is the size of an Ed25519 signature (R || S)
	SignatureSize = 64

	// StreamKeySize is the XSalsa20 key size
	StreamKeySize = 32

	// StreamNonceSize is the XSalsa20 nonce size
	StreamNonceSize = 24

	// MaxStreamLength is the largest keystream a single call may request.
	// It matches the unsigned 32-bit length accepted by the NaCl bindings.
	MaxStreamLength = 1<<32 - 1
)

var (
	// ErrInvalidLength indicates a fixed-size buffer has the wrong length
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidArgument indicates a scalar argument is out of range
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError describes a malformed call. Index is the zero-based position of
// the argument in the call, Name its parameter name.
type ArgumentError struct {
	Index int
	Name  string
	Want  int
	Got   int
	Err   error
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Err, ErrInvalidLength) {
		return fmt.Sprintf("arg[%d] '%s' must be %d bytes, got %d", e.Index, e.Name, e.Want, e.Got)
	}
	return fmt.Sprintf("arg[%d] '%s': %v (got %d)", e.Index, e.Name, e.Err, e.Got)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// IsArgumentError reports whether err was caused by a malformed call rather
// than by a failed cryptographic check.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// ValidateLength checks that buf is exactly want bytes long.
// Returns an *ArgumentError wrapping ErrInvalidLength otherwise.
func ValidateLength(index int, name string, buf []byte, want int) error {
	if len(buf) != want {
		return &ArgumentError{Index: index, Name: name, Want: want, Got: len(buf), Err: ErrInvalidLength}
	}
	return nil
}

// ValidateStreamLength checks a requested keystream length against
// [0, MaxStreamLength].
func ValidateStreamLength(index int, name string, length int) error {
	if length < 0 {
		return &ArgumentError{Index: index, Name: name, Got: length,
			Err: fmt.Errorf("%w: length must be a non-negative integer", ErrInvalidArgument)}
	}
	if uint64(length) > MaxStreamLength {
		return &ArgumentError{Index: index, Name: name, Got: length,
			Err: fmt.Errorf("%w: length exceeds limit %d", ErrInvalidArgument, uint64(MaxStreamLength))}
	}
	return nil
}
