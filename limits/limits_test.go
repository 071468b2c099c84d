package limits

import (
	"errors"
	"strings"
	"testing"
)

// TestConstantConsistency verifies internal consistency of the size constants
func TestConstantConsistency(t *testing.T) {
	if SignPrivateKeySize != SignSeedSize+SignPublicKeySize {
		t.Errorf("SignPrivateKeySize (%d) != SignSeedSize (%d) + SignPublicKeySize (%d)",
			SignPrivateKeySize, SignSeedSize, SignPublicKeySize)
	}

	if AuthSize != 32 {
		t.Errorf("AuthSize = %d, want 32 (SHA-512 output truncated to 256 bits)", AuthSize)
	}

	if StreamNonceSize != 24 {
		t.Errorf("StreamNonceSize = %d, want 24", StreamNonceSize)
	}
}

// TestValidateLength tests the fixed-length validation function
func TestValidateLength(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		want    int
		wantErr error
	}{
		{
			name:    "exact length",
			buf:     make([]byte, 32),
			want:    32,
			wantErr: nil,
		},
		{
			name:    "too short",
			buf:     make([]byte, 31),
			want:    32,
			wantErr: ErrInvalidLength,
		},
		{
			name:    "too long",
			buf:     make([]byte, 33),
			want:    32,
			wantErr: ErrInvalidLength,
		},
		{
			name:    "nil buffer",
			buf:     nil,
			want:    24,
			wantErr: ErrInvalidLength,
		},
		{
			name:    "zero length expected",
			buf:     []byte{},
			want:    0,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(2, "key", tt.buf, tt.want)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && !IsArgumentError(err) {
				t.Errorf("ValidateLength() error %v is not an *ArgumentError", err)
			}
		})
	}
}

// TestArgumentErrorFields verifies the error carries the call position
func TestArgumentErrorFields(t *testing.T) {
	err := ValidateLength(1, "nonce", make([]byte, 10), StreamNonceSize)

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected *ArgumentError, got %T", err)
	}
	if argErr.Index != 1 || argErr.Name != "nonce" {
		t.Errorf("ArgumentError position = (%d, %q), want (1, \"nonce\")", argErr.Index, argErr.Name)
	}
	if argErr.Want != StreamNonceSize || argErr.Got != 10 {
		t.Errorf("ArgumentError sizes = (%d, %d), want (%d, 10)", argErr.Want, argErr.Got, StreamNonceSize)
	}
	if want := "arg[1] 'nonce' must be 24 bytes, got 10"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestValidateStreamLength tests keystream length bounds
func TestValidateStreamLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{"zero", 0, nil},
		{"small", 1000, nil},
		{"four MiB", 4194304, nil},
		{"negative", -1, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStreamLength(0, "length", tt.length)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateStreamLength(%d) error = %v, wantErr %v", tt.length, err, tt.wantErr)
			}
		})
	}

	err := ValidateStreamLength(0, "length", -5)
	if err == nil || !strings.Contains(err.Error(), "non-negative integer") {
		t.Errorf("negative length error = %v, want mention of non-negative integer", err)
	}
}

// TestIsArgumentError checks classification of unrelated errors
func TestIsArgumentError(t *testing.T) {
	if IsArgumentError(nil) {
		t.Error("IsArgumentError(nil) = true")
	}
	if IsArgumentError(errors.New("invalid authenticator")) {
		t.Error("IsArgumentError() classified a plain error as an argument error")
	}
	wrapped := errors.Join(errors.New("context"), ValidateLength(0, "seed", nil, SignSeedSize))
	if !IsArgumentError(wrapped) {
		t.Error("IsArgumentError() did not see through wrapping")
	}
}
