package crypto

import "errors"

// ErrVerification is the common cause of every cryptographic rejection.
// Package-specific errors such as auth.ErrInvalidAuthenticator wrap it.
var ErrVerification = errors.New("verification failed")

// VerificationError is a rejection with a fixed, package-specific message.
// The message never says which input was wrong.
type VerificationError struct {
	msg string
}

// NewVerificationError returns a VerificationError carrying msg.
func NewVerificationError(msg string) *VerificationError {
	return &VerificationError{msg: msg}
}

func (e *VerificationError) Error() string { return e.msg }

func (e *VerificationError) Unwrap() error { return ErrVerification }

// IsVerificationError reports whether err is a cryptographic rejection.
func IsVerificationError(err error) bool {
	return errors.Is(err, ErrVerification)
}
