package nacl

import (
	"github.com/opd-ai/nacl/auth"
	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
	"github.com/opd-ai/nacl/sign"
	"github.com/opd-ai/nacl/stream"
)

// Sizes in bytes, named as in the NaCl bindings.
const (
	AuthKeyBytes       = auth.KeySize
	AuthBytes          = auth.Size
	SignSeedBytes      = sign.SeedSize
	SignPublicKeyBytes = sign.PublicKeySize
	SignSecretKeyBytes = sign.PrivateKeySize
	SignBytes          = sign.SignatureSize
	StreamKeyBytes     = stream.KeySize
	StreamNonceBytes   = stream.NonceSize
)

var (
	// ErrInvalidAuthenticator is returned by AuthVerify on any mismatch
	ErrInvalidAuthenticator = auth.ErrInvalidAuthenticator

	// ErrVerificationFailed is returned by SignOpen on any rejected signed message
	ErrVerificationFailed = sign.ErrVerificationFailed
)

// Auth computes the HMAC-SHA-512-256 authenticator of message under a 32-byte key.
func Auth(message, key []byte) ([]byte, error) {
	return auth.Sum(message, key)
}

// AuthVerify checks authenticator against message and key.
func AuthVerify(authenticator, message, key []byte) error {
	return auth.Verify(authenticator, message, key)
}

// SignKeypair generates a fresh Ed25519 keypair from a random seed.
func SignKeypair() (verifyKey, signKey []byte, err error) {
	pub, priv, err := sign.GenerateKey(nil)
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

// SignPublickey derives the Ed25519 keypair for a 32-byte seed.
func SignPublickey(seed []byte) (verifyKey, signKey []byte, err error) {
	pub, priv, err := sign.NewKeyFromSeed(seed)
	if err != nil {
		return nil, nil, err
	}
	return pub, priv, nil
}

// Sign returns the 64-byte signature of message followed by message.
func Sign(message, signKey []byte) ([]byte, error) {
	return sign.Sign(message, signKey)
}

// SignOpen verifies signedMessage and returns the embedded message.
func SignOpen(signedMessage, verifyKey []byte) ([]byte, error) {
	return sign.Open(signedMessage, verifyKey)
}

// Stream returns length bytes of XSalsa20 keystream.
func Stream(length int, nonce, key []byte) ([]byte, error) {
	return stream.Stream(length, nonce, key)
}

// StreamXOR XORs message with the XSalsa20 keystream.
func StreamXOR(message, nonce, key []byte) ([]byte, error) {
	return stream.XOR(message, nonce, key)
}

// IsArgumentError reports whether err comes from a malformed call.
func IsArgumentError(err error) bool {
	return limits.IsArgumentError(err)
}

// IsVerificationError reports whether err is a cryptographic rejection.
func IsVerificationError(err error) bool {
	return crypto.IsVerificationError(err)
}
