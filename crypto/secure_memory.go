package crypto

import (
	"errors"
	"runtime"
)

// SecureWipe erases the contents of a byte slice containing sensitive data.
// It returns an error if the byte slice is nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	clear(data)

	// Keep the slice live until after the write so the store is not elided
	runtime.KeepAlive(data)

	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from SecureWipe.
func ZeroBytes(data []byte) {
	_ = SecureWipe(data)
}

// WithSecret allocates a size-byte scratch buffer, passes it to fn and wipes
// it when fn returns, whether fn succeeds, fails or panics. fn must not retain
// the buffer.
func WithSecret(size int, fn func(secret []byte) error) error {
	if size < 0 {
		return errors.New("negative secret size")
	}
	secret := make([]byte, size)
	defer ZeroBytes(secret)
	return fn(secret)
}
