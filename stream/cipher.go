package stream

import (
	"crypto/cipher"
	"encoding/binary"
	"io"
	"math"

	"golang.org/x/crypto/salsa20/salsa"

	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
)

// Cipher is an XSalsa20 keystream positioned at a byte offset. It implements
// cipher.Stream and io.Reader (Read yields raw keystream). A Cipher is not
// safe for concurrent use.
type Cipher struct {
	subkey [32]byte
	nonce  [8]byte

	// counter is the index of the next block to generate
	counter uint64
	// exhausted is set once block 2^64-1 has been generated
	exhausted bool

	block [BlockSize]byte
	used  int // bytes of block already consumed
}

var (
	_ cipher.Stream = (*Cipher)(nil)
	_ io.Reader     = (*Cipher)(nil)
)

// NewCipher returns a Cipher positioned at the start of the keystream for
// nonce and key.
func NewCipher(nonce, key []byte) (*Cipher, error) {
	return newCipher("NewCipher", nonce, key)
}

func newCipher(function string, nonce, key []byte) (*Cipher, error) {
	if err := limits.ValidateLength(1, "nonce", nonce, NonceSize); err != nil {
		crypto.LogRejection("stream", function, err)
		return nil, err
	}
	if err := limits.ValidateLength(2, "key", key, KeySize); err != nil {
		crypto.LogRejection("stream", function, err)
		return nil, err
	}

	c := &Cipher{used: BlockSize}

	var k [32]byte
	copy(k[:], key)
	defer crypto.ZeroBytes(k[:])

	// XSalsa20: HSalsa20 over the first 16 nonce bytes yields the subkey for
	// Salsa20 with the remaining 8 bytes as its nonce.
	var hNonce [16]byte
	copy(hNonce[:], nonce[:16])
	salsa.HSalsa20(&c.subkey, &hNonce, &k, &salsa.Sigma)
	copy(c.nonce[:], nonce[16:])

	return c, nil
}

// XORKeyStream XORs each byte of src with the next keystream byte and writes
// the result to dst. dst and src must overlap entirely or not at all.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("stream: output smaller than input")
	}
	dst = dst[:len(src)]

	// Leftover keystream from a partially used block
	if c.used < BlockSize {
		n := xorBytes(dst, src, c.block[c.used:])
		c.used += n
		dst, src = dst[n:], src[n:]
	}

	if full := len(src) / BlockSize; full > 0 {
		c.reserve(uint64(full))
		n := full * BlockSize
		input := c.counterInput()
		salsa.XORKeyStream(dst[:n], src[:n], &input, &c.subkey)
		c.advance(uint64(full))
		dst, src = dst[n:], src[n:]
	}

	if len(src) > 0 {
		c.refill()
		c.used = xorBytes(dst, src, c.block[:])
	}
}

// Read fills p with keystream. It never returns an error.
func (c *Cipher) Read(p []byte) (int, error) {
	clear(p)
	c.XORKeyStream(p, p)
	return len(p), nil
}

// Seek positions the keystream at byte offset.
func (c *Cipher) Seek(offset uint64) {
	c.counter = offset / BlockSize
	c.exhausted = false
	c.used = BlockSize
	if rem := int(offset % BlockSize); rem > 0 {
		c.refill()
		c.used = rem
	}
}

// Offset returns the current byte position in the keystream, modulo 2^64.
func (c *Cipher) Offset() uint64 {
	return c.counter*BlockSize - uint64(BlockSize-c.used)
}

// Wipe erases the subkey and buffered keystream. The Cipher must not be used
// afterwards.
func (c *Cipher) Wipe() {
	crypto.ZeroBytes(c.subkey[:])
	crypto.ZeroBytes(c.block[:])
	c.used = BlockSize
}

// refill generates the next keystream block into c.block.
func (c *Cipher) refill() {
	c.reserve(1)
	clear(c.block[:])
	input := c.counterInput()
	salsa.XORKeyStream(c.block[:], c.block[:], &input, &c.subkey)
	c.advance(1)
	c.used = 0
}

// reserve panics if generating n more blocks would wrap the 64-bit counter.
func (c *Cipher) reserve(n uint64) {
	if c.exhausted || n-1 > math.MaxUint64-c.counter {
		panic("stream: counter overflow")
	}
}

func (c *Cipher) advance(n uint64) {
	next := c.counter + n
	if next < c.counter || next == 0 {
		c.exhausted = true
	}
	c.counter = next
}

// counterInput lays out the Salsa20 input: 8-byte nonce, then the block
// counter little-endian.
func (c *Cipher) counterInput() [16]byte {
	var in [16]byte
	copy(in[:8], c.nonce[:])
	binary.LittleEndian.PutUint64(in[8:], c.counter)
	return in
}

func xorBytes(dst, src, ks []byte) int {
	n := min(len(src), len(ks))
	for i := 0; i < n; i++ {
		dst[i] = src[i] ^ ks[i]
	}
	return n
}
