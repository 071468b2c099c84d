// Package stream implements the XSalsa20 stream cipher, the NaCl
// crypto_stream primitive.
//
// Stream returns length bytes of keystream for a 24-byte nonce and 32-byte
// key; XOR combines data with the same keystream and is its own inverse:
//
//	ks, err := stream.Stream(1000, nonce, key)
//	ct, err := stream.XOR(plaintext, nonce, key)
//	pt, err := stream.XOR(ct, nonce, key)
//
// A (key, nonce) pair must never be used for two different messages. The
// package does not track nonces.
//
// For long or incremental keystreams, NewCipher returns a *Cipher that
// implements cipher.Stream and io.Reader and can be positioned with Seek.
package stream

import (
	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
)

const (
	// KeySize is the size of a stream key in bytes
	KeySize = limits.StreamKeySize

	// NonceSize is the size of a stream nonce in bytes
	NonceSize = limits.StreamNonceSize

	// BlockSize is the size of one Salsa20 keystream block
	BlockSize = 64
)

// Stream returns the first length bytes of the keystream for nonce and key.
func Stream(length int, nonce, key []byte) ([]byte, error) {
	if err := limits.ValidateStreamLength(0, "length", length); err != nil {
		crypto.LogRejection("stream", "Stream", err)
		return nil, err
	}
	c, err := newCipher("Stream", nonce, key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	out := make([]byte, length)
	c.XORKeyStream(out, out)
	return out, nil
}

// XOR returns data XORed with the keystream for nonce and key. Applying XOR
// twice with the same nonce and key returns the original data.
func XOR(data, nonce, key []byte) ([]byte, error) {
	c, err := newCipher("XOR", nonce, key)
	if err != nil {
		return nil, err
	}
	defer c.Wipe()

	out := make([]byte, len(data))
	c.XORKeyStream(out, data)
	return out, nil
}
