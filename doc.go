// Package nacl exposes the NaCl authentication, signature and stream-cipher
// primitives through a flat, binding-style API.
//
// The functions mirror the names of the classic NaCl bindings and take and
// return byte slices. Each delegates to a primitive package:
//
//   - [Auth], [AuthVerify]: HMAC-SHA-512-256 (package auth)
//   - [SignKeypair], [SignPublickey], [Sign], [SignOpen]: Ed25519 (package sign)
//   - [Stream], [StreamXOR]: XSalsa20 (package stream)
//
// # Getting Started
//
//	verifyKey, signKey, err := nacl.SignKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	signed, _ := nacl.Sign([]byte("hello"), signKey)
//	msg, err := nacl.SignOpen(signed, verifyKey)
//
// # Error Handling
//
// Errors fall into two classes that never overlap:
//
//   - argument errors: a key, nonce, seed or authenticator has the wrong
//     length, or a keystream length is negative. [IsArgumentError] reports
//     these. They are detected before any cryptographic work.
//   - verification errors: an authenticator or signature did not check out.
//     [IsVerificationError] reports these. The error never says which input
//     was wrong.
//
// # Thread Safety
//
// Every function is pure and safe for concurrent use. Secret intermediates
// (seed digests, scalars, HSalsa20 subkeys, HMAC keys) are wiped before the
// functions return.
//
// # Command Line
//
// cmd/nacl wraps the same functions in a command-line tool with hex
// input and output, a known-answer test runner and a throughput benchmark.
package nacl
