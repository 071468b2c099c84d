package sign

import (
	"filippo.io/edwards25519"

	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
)

var (
	// ErrVerificationFailed is returned by Open for every rejected signed
	// message. It does not say which part was corrupted.
	ErrVerificationFailed error = crypto.NewVerificationError("ciphertext fails verification")

	// ErrInconsistentKey is returned by CheckPrivateKey when the public half
	// of a signing key does not match its seed.
	ErrInconsistentKey error = crypto.NewVerificationError("signing key does not match its seed")
)

// Sign signs message with priv and returns the signature followed by message.
func Sign(message []byte, priv PrivateKey) ([]byte, error) {
	if err := limits.ValidateLength(1, "signingkey", priv, PrivateKeySize); err != nil {
		crypto.LogRejection("sign", "Sign", err)
		return nil, err
	}

	out := make([]byte, SignatureSize+len(message))
	signInto(out[:SignatureSize], message, priv)
	copy(out[SignatureSize:], message)
	return out, nil
}

// SignDetached returns only the 64-byte signature of message.
func SignDetached(message []byte, priv PrivateKey) ([]byte, error) {
	if err := limits.ValidateLength(1, "signingkey", priv, PrivateKeySize); err != nil {
		crypto.LogRejection("sign", "SignDetached", err)
		return nil, err
	}

	sig := make([]byte, SignatureSize)
	signInto(sig, message, priv)
	return sig, nil
}

// signInto writes R || S into sig. priv must be PrivateKeySize bytes.
func signInto(sig, message []byte, priv PrivateKey) {
	seed, publicKey := priv[:SeedSize], priv[SeedSize:]

	digest := crypto.Sum512(seed)
	defer crypto.ZeroBytes(digest[:])

	a := secretScalar(&digest)
	defer wipeScalar(a)

	// r = H(prefix || M) mod L
	nonceDigest := crypto.Sum512(digest[32:], message)
	defer crypto.ZeroBytes(nonceDigest[:])
	r := reduce(&nonceDigest)
	defer wipeScalar(r)

	R := new(edwards25519.Point).ScalarBaseMult(r)
	encodedR := R.Bytes()

	// k = H(R || A || M) mod L
	k := challenge(encodedR, publicKey, message)

	// S = k*a + r mod L
	S := edwards25519.NewScalar().MultiplyAdd(k, a, r)
	defer wipeScalar(S)

	copy(sig[:32], encodedR)
	copy(sig[32:], S.Bytes())
}

// challenge computes SHA-512(R || A || M) reduced modulo the group order.
func challenge(encodedR, publicKey, message []byte) *edwards25519.Scalar {
	h := crypto.Sum512(encodedR, publicKey, message)
	return reduce(&h)
}

func reduce(digest *[crypto.Hash512Size]byte) *edwards25519.Scalar {
	// SetUniformBytes only fails for inputs that are not 64 bytes
	s, err := edwards25519.NewScalar().SetUniformBytes(digest[:])
	if err != nil {
		panic("sign: internal error: scalar reduction failed: " + err.Error())
	}
	return s
}
