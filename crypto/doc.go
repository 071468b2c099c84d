// Package crypto holds the helpers shared by the auth, sign and stream
// packages.
//
// # Secret Memory
//
// Every buffer that holds a key, seed, expanded digest or subkey is wiped
// before it goes out of scope:
//
//	err := crypto.WithSecret(32, func(seed []byte) error {
//	    _, err := io.ReadFull(rand.Reader, seed)
//	    return err
//	})
//
// [SecureWipe] clears a slice in a way the compiler cannot elide. Go's garbage
// collector may still have copied the data, so wiping limits exposure rather
// than guaranteeing erasure.
//
// # Hashing and Comparison
//
// [NewHash512] and [Sum512] provide the SHA-512 instance used by HMAC-SHA-512-256
// and Ed25519. [ConstantTimeEqual] compares authenticators and encoded points
// without leaking the position of the first difference.
//
// # Errors
//
// Cryptographic rejections are [VerificationError] values wrapping
// [ErrVerification]. Their messages are fixed per package and never say which
// input was wrong. Malformed calls are reported separately by the limits
// package.
//
// # Logging
//
// [LoggerHelper] wraps logrus with function and package fields. Rejected calls
// are logged at debug level through [LogRejection]. Only sizes and short
// previews of public values ([SecureFieldHash]) are ever logged.
package crypto
