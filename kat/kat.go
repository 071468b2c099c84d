// Package kat reads and checks known-answer test vectors for the nacl
// primitives.
//
// Ed25519 vectors use the sign.input format published on ed25519.cr.yp.to:
// one colon-separated record per line,
//
//	seed||pubkey : pubkey : message : signature||message :
//
// with every field hex-encoded and blank lines ignored.
package kat

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/nacl/crypto"
	"github.com/opd-ai/nacl/limits"
	"github.com/opd-ai/nacl/sign"
)

// maxLineSize bounds a single record. sign.input messages stay below 1 KiB,
// so a line is well under this.
const maxLineSize = 1 << 20

// ErrMalformedRecord indicates a line that is not a valid record
var ErrMalformedRecord = errors.New("malformed record")

// SignRecord is one Ed25519 known-answer record.
type SignRecord struct {
	Line          int
	SecretKey     []byte // seed || public key
	PublicKey     []byte
	Message       []byte
	SignedMessage []byte // signature || message
}

// DecodeHex decodes s, naming field in any error.
func DecodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: field %s: %v", ErrMalformedRecord, field, err)
	}
	return b, nil
}

// ParseSignRecord parses one colon-separated record. A trailing colon is
// accepted, as in sign.input.
func ParseSignRecord(line string) (SignRecord, error) {
	fields := strings.Split(strings.TrimSpace(line), ":")
	if len(fields) == 5 && fields[4] == "" {
		fields = fields[:4]
	}
	if len(fields) != 4 {
		return SignRecord{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedRecord, len(fields))
	}

	var rec SignRecord
	var err error
	if rec.SecretKey, err = DecodeHex("secretkey", fields[0]); err != nil {
		return SignRecord{}, err
	}
	if rec.PublicKey, err = DecodeHex("publickey", fields[1]); err != nil {
		return SignRecord{}, err
	}
	if rec.Message, err = DecodeHex("message", fields[2]); err != nil {
		return SignRecord{}, err
	}
	if rec.SignedMessage, err = DecodeHex("signedmessage", fields[3]); err != nil {
		return SignRecord{}, err
	}

	switch {
	case len(rec.SecretKey) != sign.PrivateKeySize:
		return SignRecord{}, fmt.Errorf("%w: secret key is %d bytes, want %d", ErrMalformedRecord, len(rec.SecretKey), sign.PrivateKeySize)
	case len(rec.PublicKey) != sign.PublicKeySize:
		return SignRecord{}, fmt.Errorf("%w: public key is %d bytes, want %d", ErrMalformedRecord, len(rec.PublicKey), sign.PublicKeySize)
	case len(rec.SignedMessage) < sign.SignatureSize:
		return SignRecord{}, fmt.Errorf("%w: signed message is %d bytes, shorter than a signature", ErrMalformedRecord, len(rec.SignedMessage))
	}
	return rec, nil
}

// ReadSignRecords reads every record from r. Blank lines are skipped and Line
// is the 1-based line number.
func ReadSignRecords(r io.Reader) ([]SignRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var records []SignRecord
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseSignRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		rec.Line = lineno
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// Stage names the check a record failed.
type Stage string

const (
	StageShape      Stage = "record shape"
	StagePublicKey  Stage = "regenerate verifying key from seed"
	StageSecretKey  Stage = "regenerate signing key from seed"
	StageSignature  Stage = "deterministic signature"
	StageOpen       Stage = "open returns message"
	StageCorruption Stage = "corrupted signed message rejected"
)

// Mismatch reports a record that did not reproduce.
type Mismatch struct {
	Line  int
	Stage Stage
	Err   error
}

func (m *Mismatch) Error() string {
	if m.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", m.Line, m.Stage, m.Err)
	}
	return fmt.Sprintf("line %d: %s: output differs", m.Line, m.Stage)
}

func (m *Mismatch) Unwrap() error {
	return m.Err
}

// CheckSignRecord first checks the key lengths, then regenerates the keys from the seed, re-signs the message,
// opens the published signed message, and checks that a signed message with
// one extra leading byte is rejected.
func CheckSignRecord(rec SignRecord) error {
	if err := limits.ValidateLength(0, "secretkey", rec.SecretKey, sign.PrivateKeySize); err != nil {
		return &Mismatch{Line: rec.Line, Stage: StageShape, Err: err}
	}
	if err := limits.ValidateLength(1, "publickey", rec.PublicKey, sign.PublicKeySize); err != nil {
		return &Mismatch{Line: rec.Line, Stage: StageShape, Err: err}
	}

	pub, priv, err := sign.NewKeyFromSeed(rec.SecretKey[:sign.SeedSize])
	if err != nil {
		return &Mismatch{Line: rec.Line, Stage: StagePublicKey, Err: err}
	}
	if !pub.Equal(rec.PublicKey) {
		return &Mismatch{Line: rec.Line, Stage: StagePublicKey}
	}
	if string(priv) != string(rec.SecretKey) {
		return &Mismatch{Line: rec.Line, Stage: StageSecretKey}
	}

	signed, err := sign.Sign(rec.Message, rec.SecretKey)
	if err != nil {
		return &Mismatch{Line: rec.Line, Stage: StageSignature, Err: err}
	}
	if string(signed) != string(rec.SignedMessage) {
		return &Mismatch{Line: rec.Line, Stage: StageSignature}
	}

	msg, err := sign.Open(rec.SignedMessage, rec.PublicKey)
	if err != nil {
		return &Mismatch{Line: rec.Line, Stage: StageOpen, Err: err}
	}
	if string(msg) != string(rec.Message) {
		return &Mismatch{Line: rec.Line, Stage: StageOpen}
	}

	corrupted := append([]byte{0}, rec.SignedMessage...)
	if _, err := sign.Open(corrupted, rec.PublicKey); !errors.Is(err, sign.ErrVerificationFailed) {
		return &Mismatch{Line: rec.Line, Stage: StageCorruption, Err: err}
	}
	return nil
}

// Report summarises a KAT run.
type Report struct {
	Records  int
	Passed   int
	Failures []error
}

// Failed returns the number of records that did not reproduce.
func (r *Report) Failed() int {
	return len(r.Failures)
}

// RunSign checks every record read from r. It stops early only if ctx is
// cancelled or the input cannot be parsed; mismatches are collected in the
// report.
func RunSign(ctx context.Context, r io.Reader) (*Report, error) {
	records, err := ReadSignRecords(r)
	if err != nil {
		return nil, err
	}

	logger := crypto.NewLogger("kat", "RunSign")

	report := &Report{Records: len(records)}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			logger.WithError(err, "cancelled", "check_record").WithField("line", rec.Line).Warn("Known-answer run interrupted")
			return report, err
		}
		if err := CheckSignRecord(rec); err != nil {
			logger.WithError(err, "mismatch", "check_record").WithField("line", rec.Line).Error("Known-answer record failed")
			report.Failures = append(report.Failures, err)
			continue
		}
		report.Passed++
	}

	logger.WithFields(crypto.OperationFields("run_sign", "complete", logrus.Fields{
		"records": report.Records,
		"passed":  report.Passed,
		"failed":  report.Failed(),
	})).Info("Known-answer run complete")

	return report, nil
}
