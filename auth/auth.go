// Package auth implements HMAC-SHA-512-256 message authentication, the NaCl
// crypto_auth primitive.
//
// An authenticator is the first 32 bytes of HMAC-SHA-512 computed under a
// 32-byte key:
//
//	tag, err := auth.Sum(message, key)
//	if err != nil {
//	    return err // key was not 32 bytes
//	}
//	if err := auth.Verify(tag, message, key); err != nil {
//	    // errors.Is(err, auth.ErrInvalidAuthenticator)
//	}
//
// Keys must be exactly KeySize bytes. Callers holding shorter or longer key
// material must pad or hash it themselves; the key is never hashed here, so
// HMAC test vectors with keys over 32 bytes are outside this primitive's domain.
package auth

import (
	"crypto/hmac"

	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
)

const (
	// KeySize is the size of an authentication key in bytes
	KeySize = limits.AuthKeySize

	// Size is the size of an authenticator in bytes
	Size = limits.AuthSize
)

// ErrInvalidAuthenticator is returned by Verify for any mismatch, whether the
// authenticator, the message or the key was altered.
var ErrInvalidAuthenticator error = crypto.NewVerificationError("invalid authenticator")

// Sum computes the authenticator of message under key.
func Sum(message, key []byte) ([]byte, error) {
	if err := limits.ValidateLength(1, "key", key, KeySize); err != nil {
		crypto.LogRejection("auth", "Sum", err)
		return nil, err
	}

	var k [KeySize]byte
	copy(k[:], key)
	defer crypto.ZeroBytes(k[:])

	tag := SumArray(message, &k)
	return tag[:], nil
}

// SumArray computes the authenticator of message under a fixed-size key.
func SumArray(message []byte, key *[KeySize]byte) [Size]byte {
	var full [crypto.Hash512Size]byte
	defer crypto.ZeroBytes(full[:])

	// hmac pads the 32-byte key with zeros to the 128-byte SHA-512 block
	mac := hmac.New(crypto.NewHash512, key[:])
	mac.Write(message)
	mac.Sum(full[:0])

	var out [Size]byte
	copy(out[:], full[:Size])
	return out
}

// Verify checks authenticator against message and key. It returns nil on
// success, ErrInvalidAuthenticator on mismatch, and a *limits.ArgumentError if
// authenticator or key has the wrong length.
func Verify(authenticator, message, key []byte) error {
	if err := limits.ValidateLength(0, "authenticator", authenticator, Size); err != nil {
		crypto.LogRejection("auth", "Verify", err)
		return err
	}
	if err := limits.ValidateLength(2, "key", key, KeySize); err != nil {
		crypto.LogRejection("auth", "Verify", err)
		return err
	}

	var k [KeySize]byte
	copy(k[:], key)
	defer crypto.ZeroBytes(k[:])

	expected := SumArray(message, &k)
	defer crypto.ZeroBytes(expected[:])

	if !crypto.ConstantTimeEqual(expected[:], authenticator) {
		crypto.LogRejection("auth", "Verify", ErrInvalidAuthenticator)
		return ErrInvalidAuthenticator
	}
	return nil
}
