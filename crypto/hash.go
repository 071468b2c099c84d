package crypto

import (
	"crypto/sha512"
	"hash"
)

const (
	// Hash512Size is the SHA-512 digest size
	Hash512Size = sha512.Size

	// Hash512BlockSize is the SHA-512 block size, the width HMAC pads keys to
	Hash512BlockSize = sha512.BlockSize
)

// NewHash512 returns a fresh SHA-512 state. It is the hash shared by the MAC
// and signature packages.
func NewHash512() hash.Hash {
	return sha512.New()
}

// Sum512 hashes the concatenation of parts without materialising it.
func Sum512(parts ...[]byte) [Hash512Size]byte {
	h := sha512.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out [Hash512Size]byte
	h.Sum(out[:0])
	return out
}
