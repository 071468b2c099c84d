package sign

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
)

const (
	// SeedSize is the size of the seed a keypair is derived from
	SeedSize = limits.SignSeedSize

	// PublicKeySize is the size of a verifying key
	PublicKeySize = limits.SignPublicKeySize

	// PrivateKeySize is the size of a signing key (seed || verifying key)
	PrivateKeySize = limits.SignPrivateKeySize

	// SignatureSize is the size of a signature (R || S)
	SignatureSize = limits.SignatureSize

	// Overhead is the number of bytes Sign prepends to a message
	Overhead = SignatureSize
)

// PublicKey is an Ed25519 verifying key.
type PublicKey []byte

// Equal reports whether pub and other hold the same key.
func (pub PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(pub, other)
}

// PrivateKey is an Ed25519 signing key: the seed followed by the verifying key.
type PrivateKey []byte

// Seed returns a copy of the seed half of the signing key.
func (priv PrivateKey) Seed() []byte {
	return bytes.Clone(priv[:SeedSize])
}

// Public returns a copy of the verifying key half of the signing key.
func (priv PrivateKey) Public() PublicKey {
	return PublicKey(bytes.Clone(priv[SeedSize:]))
}

// GenerateKey creates a keypair from a fresh 32-byte seed read from random.
// A nil random uses crypto/rand.Reader.
func GenerateKey(random io.Reader) (PublicKey, PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}

	var pub PublicKey
	var priv PrivateKey
	err := crypto.WithSecret(SeedSize, func(seed []byte) error {
		if _, err := io.ReadFull(random, seed); err != nil {
			return fmt.Errorf("failed to read seed: %w", err)
		}
		var err error
		pub, priv, err = NewKeyFromSeed(seed)
		return err
	})
	if err != nil {
		crypto.NewLogger("sign", "GenerateKey").WithError(err, "entropy", "read_seed").Warn("key generation failed")
		return nil, nil, err
	}

	crypto.NewLogger("sign", "GenerateKey").
		WithFields(crypto.OperationFields("generate_key", "success", crypto.SecureFieldHash(pub, "public_key"))).
		Debug("Generated keypair")
	return pub, priv, nil
}

// NewKeyFromSeed derives the keypair for seed. The same seed always yields the
// same keys.
func NewKeyFromSeed(seed []byte) (PublicKey, PrivateKey, error) {
	if err := limits.ValidateLength(0, "seed", seed, SeedSize); err != nil {
		crypto.LogRejection("sign", "NewKeyFromSeed", err)
		return nil, nil, err
	}

	priv := make(PrivateKey, PrivateKeySize)
	copy(priv, seed)

	digest := crypto.Sum512(seed)
	defer crypto.ZeroBytes(digest[:])

	a := secretScalar(&digest)
	defer wipeScalar(a)

	A := new(edwards25519.Point).ScalarBaseMult(a)
	copy(priv[SeedSize:], A.Bytes())

	return priv.Public(), priv, nil
}

// CheckPrivateKey reports whether the trailing half of priv is the verifying
// key derived from its seed half.
func CheckPrivateKey(priv PrivateKey) error {
	if err := limits.ValidateLength(0, "signingkey", priv, PrivateKeySize); err != nil {
		return err
	}
	pub, derived, err := NewKeyFromSeed(priv[:SeedSize])
	if err != nil {
		return err
	}
	defer crypto.ZeroBytes(derived)

	if !crypto.ConstantTimeEqual(pub, priv[SeedSize:]) {
		return ErrInconsistentKey
	}
	return nil
}

// secretScalar clamps the first half of the seed digest into the secret
// exponent a.
func secretScalar(digest *[crypto.Hash512Size]byte) *edwards25519.Scalar {
	// SetBytesWithClamping only fails for inputs that are not 32 bytes
	a, err := edwards25519.NewScalar().SetBytesWithClamping(digest[:32])
	if err != nil {
		panic("sign: internal error: clamping failed: " + err.Error())
	}
	return a
}

func wipeScalar(s *edwards25519.Scalar) {
	s.Set(edwards25519.NewScalar())
}
