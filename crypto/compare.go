package crypto

import "crypto/subtle"

// ConstantTimeEqual reports whether a and b hold the same bytes. For equal
// lengths the running time depends only on the length, not on where or
// whether the inputs differ.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
