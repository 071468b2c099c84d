package sign

import (
	"filippo.io/edwards25519"

	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
)

// Open verifies a signed message produced by Sign and returns the message.
// Any failure, including a signed message shorter than the signature,
// returns ErrVerificationFailed. A verifying key of the wrong length is an
// argument error.
func Open(signedMessage []byte, pub PublicKey) ([]byte, error) {
	if err := limits.ValidateLength(1, "verifyingkey", pub, PublicKeySize); err != nil {
		crypto.LogRejection("sign", "Open", err)
		return nil, err
	}

	if len(signedMessage) < SignatureSize {
		crypto.LogRejection("sign", "Open", ErrVerificationFailed)
		return nil, ErrVerificationFailed
	}

	sig, message := signedMessage[:SignatureSize], signedMessage[SignatureSize:]
	if !verify(pub, message, sig) {
		crypto.LogRejection("sign", "Open", ErrVerificationFailed)
		return nil, ErrVerificationFailed
	}

	out := make([]byte, len(message))
	copy(out, message)
	return out, nil
}

// Verify checks a detached signature. It returns ErrVerificationFailed if the
// signature does not match.
func Verify(pub PublicKey, message, sig []byte) error {
	if err := limits.ValidateLength(0, "verifyingkey", pub, PublicKeySize); err != nil {
		crypto.LogRejection("sign", "Verify", err)
		return err
	}
	if err := limits.ValidateLength(2, "signature", sig, SignatureSize); err != nil {
		crypto.LogRejection("sign", "Verify", err)
		return err
	}

	if !verify(pub, message, sig) {
		crypto.LogRejection("sign", "Verify", ErrVerificationFailed)
		return ErrVerificationFailed
	}
	return nil
}

// verify checks [S]B == R + [k]A by computing [S]B - [k]A and comparing its
// encoding with R.
func verify(publicKey, message, sig []byte) bool {
	A, err := new(edwards25519.Point).SetBytes(publicKey)
	if err != nil {
		return false
	}

	// Reject S >= L so a signature has one valid encoding
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	k := challenge(sig[:32], publicKey, message)

	minusA := new(edwards25519.Point).Negate(A)
	check := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, S)

	return crypto.ConstantTimeEqual(check.Bytes(), sig[:32])
}
