// Package limits provides the centralized size constants and argument-shape
// validation shared by the auth, sign and stream packages.
//
// # Size Constants
//
// Every fixed-length parameter accepted by the primitives is declared here:
//
//   - AuthKeySize (32 bytes): HMAC-SHA-512-256 key.
//   - AuthSize (32 bytes): HMAC-SHA-512-256 authenticator.
//   - SignSeedSize (32 bytes): Ed25519 seed.
//   - SignPublicKeySize (32 bytes): Ed25519 verifying key.
//   - SignPrivateKeySize (64 bytes): Ed25519 signing key (seed followed by public key).
//   - SignatureSize (64 bytes): Ed25519 signature R followed by S.
//   - StreamKeySize (32 bytes): XSalsa20 key.
//   - StreamNonceSize (24 bytes): XSalsa20 nonce.
//
// # Validation Functions
//
// Validation happens before any cryptographic work. A failed check returns an
// [*ArgumentError] that records the position and name of the offending
// argument:
//
//	if err := limits.ValidateLength(1, "key", key, limits.AuthKeySize); err != nil {
//	    return nil, err
//	}
//
// # Error Types
//
//   - ErrInvalidLength: a buffer has the wrong number of bytes
//   - ErrInvalidArgument: a scalar argument is out of range (for example a
//     negative keystream length)
//
// Both are wrapped by [ArgumentError] so callers can use errors.Is, and
// [IsArgumentError] distinguishes a malformed call from a cryptographic
// rejection.
package limits
