package bench

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/nacl/auth"
	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/sign"
	"github.com/opd-ai/nacl/stream"
)

// Config holds benchmark parameters
type Config struct {
	// MessageSize is the input size for auth, sign and stream_xor, and the
	// keystream length for stream
	MessageSize int
	// Iterations is the number of calls per operation
	Iterations int
}

// DefaultConfig returns 1 KiB messages and 1000 iterations
func DefaultConfig() Config {
	return Config{
		MessageSize: 1024,
		Iterations:  1000,
	}
}

// Validate checks the configuration
func (c Config) Validate() error {
	if c.MessageSize < 0 {
		return fmt.Errorf("message size must be non-negative, got %d", c.MessageSize)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	return nil
}

// Run calls every primitive cfg.Iterations times with fixed inputs and
// records each call in m. A primitive returning an error aborts the run,
// since the inputs are always valid.
func Run(ctx context.Context, cfg Config, m *Monitor) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	message := bytes.Repeat([]byte{0xa5}, cfg.MessageSize)
	authKey := bytes.Repeat([]byte{0x01}, auth.KeySize)
	seed := bytes.Repeat([]byte{0x02}, sign.SeedSize)
	nonce := bytes.Repeat([]byte{0x03}, stream.NonceSize)
	streamKey := bytes.Repeat([]byte{0x04}, stream.KeySize)

	pub, priv, err := sign.NewKeyFromSeed(seed)
	if err != nil {
		return err
	}
	tag, err := auth.Sum(message, authKey)
	if err != nil {
		return err
	}
	signed, err := sign.Sign(message, priv)
	if err != nil {
		return err
	}

	steps := []struct {
		op    Operation
		bytes int
		fn    func() error
	}{
		{OpAuth, len(message), func() error { _, err := auth.Sum(message, authKey); return err }},
		{OpAuthVerify, len(message), func() error { return auth.Verify(tag, message, authKey) }},
		{OpSignKeygen, 0, func() error { _, _, err := sign.NewKeyFromSeed(seed); return err }},
		{OpSign, len(message), func() error { _, err := sign.Sign(message, priv); return err }},
		{OpSignOpen, len(message), func() error { _, err := sign.Open(signed, pub); return err }},
		{OpStream, cfg.MessageSize, func() error { _, err := stream.Stream(cfg.MessageSize, nonce, streamKey); return err }},
		{OpStreamXOR, len(message), func() error { _, err := stream.XOR(message, nonce, streamKey); return err }},
	}

	logger := crypto.NewLogger("bench", "Run").WithFields(logrus.Fields{
		"iterations": cfg.Iterations,
		"size":       cfg.MessageSize,
	})

	for _, step := range steps {
		stepLogger := logger.WithField("operation", step.op)
		stepLogger.Debug("Benchmarking operation")

		for i := 0; i < cfg.Iterations; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.Time(step.op, step.bytes, step.fn); err != nil {
				stepLogger.WithError(err, crypto.RejectionType(err), string(step.op)).Error("Primitive failed on valid input")
				return fmt.Errorf("bench %s: %w", step.op, err)
			}
		}
	}
	return nil
}
