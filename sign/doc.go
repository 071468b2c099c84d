// Package sign implements Ed25519 signatures in the NaCl crypto_sign format.
//
// # Keys
//
// A keypair is derived deterministically from a 32-byte seed. The signing key
// is 64 bytes: the seed followed by the 32-byte verifying key. Randomness is
// consumed only when a seed is generated:
//
//	pub, priv, err := sign.GenerateKey(nil) // crypto/rand seed
//	pub, priv, err := sign.NewKeyFromSeed(seed)
//
// # Signed Messages
//
// Sign returns the 64-byte signature R||S followed by the message. Open checks
// the signature and returns the message:
//
//	sm, err := sign.Sign(message, priv)
//	msg, err := sign.Open(sm, pub)
//	if errors.Is(err, sign.ErrVerificationFailed) {
//	    // corrupted signature, message or key
//	}
//
// Signing is deterministic. The per-message nonce r is derived from the second
// half of SHA-512(seed) and the message, so identical inputs always produce
// identical signatures.
//
// # Derivation Pipeline
//
//	seed -> SHA-512 -> digest[:32] -clamp-> scalar a -> A = a*B -> verifying key
//	                   digest[32:] + message -> SHA-512 -> r -> R = r*B
//	S = r + SHA-512(R || A || message) * a  (mod L)
//
// Group and scalar arithmetic is provided by filippo.io/edwards25519.
// Intermediate digests, scalars and nonces are wiped before returning.
package sign
