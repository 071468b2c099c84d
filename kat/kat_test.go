package kat

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/nacl/limits"
)

const rfcRecord = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb" +
	"3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c:" +
	"3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c:" +
	"72:" +
	"92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da" +
	"085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00" +
	"72:"

func TestParseSignRecord(t *testing.T) {
	rec, err := ParseSignRecord(rfcRecord)
	require.NoError(t, err)
	assert.Len(t, rec.SecretKey, 64)
	assert.Equal(t, rec.SecretKey[32:], rec.PublicKey)
	assert.Equal(t, []byte{0x72}, rec.Message)
	assert.Len(t, rec.SignedMessage, 65)

	withoutTrailingColon := strings.TrimSuffix(rfcRecord, ":")
	rec2, err := ParseSignRecord(withoutTrailingColon)
	require.NoError(t, err)
	assert.Equal(t, rec, rec2)
}

func TestParseSignRecordErrors(t *testing.T) {
	fields := strings.Split(rfcRecord, ":")

	tests := []struct {
		name string
		line string
	}{
		{"too few fields", strings.Join(fields[:3], ":")},
		{"too many fields", rfcRecord + "00:"},
		{"bad hex", "zz" + rfcRecord[2:]},
		{"short secret key", fields[0][:126] + ":" + strings.Join(fields[1:], ":")},
		{"short public key", fields[0] + ":" + fields[1][:62] + ":" + strings.Join(fields[2:], ":")},
		{"short signed message", strings.Join(fields[:3], ":") + ":00ff:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSignRecord(tt.line)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestReadSignRecordsSkipsBlankLines(t *testing.T) {
	input := "\n" + rfcRecord + "\n\n   \n" + rfcRecord + "\n"
	records, err := ReadSignRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, 5, records[1].Line)
}

func TestReadSignRecordsReportsLine(t *testing.T) {
	input := rfcRecord + "\n" + "not-a-record\n"
	_, err := ReadSignRecords(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCheckSignRecord(t *testing.T) {
	rec, err := ParseSignRecord(rfcRecord)
	require.NoError(t, err)
	require.NoError(t, CheckSignRecord(rec))
}

func TestCheckSignRecordMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignRecord)
		stage  Stage
	}{
		{
			name:   "wrong public key",
			mutate: func(r *SignRecord) { r.PublicKey[0] ^= 1 },
			stage:  StagePublicKey,
		},
		{
			name:   "wrong public half of secret key",
			mutate: func(r *SignRecord) { r.SecretKey[40] ^= 1 },
			stage:  StageSecretKey,
		},
		{
			name:   "wrong signature",
			mutate: func(r *SignRecord) { r.SignedMessage[10] ^= 1 },
			stage:  StageSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseSignRecord(rfcRecord)
			require.NoError(t, err)
			rec.Line = 7
			tt.mutate(&rec)

			err = CheckSignRecord(rec)
			var mismatch *Mismatch
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.stage, mismatch.Stage)
			assert.Equal(t, 7, mismatch.Line)
			assert.Contains(t, err.Error(), "line 7")
		})
	}
}

func TestCheckSignRecordShape(t *testing.T) {
	valid, err := ParseSignRecord(rfcRecord)
	require.NoError(t, err)

	tests := []struct {
		name string
		rec  SignRecord
		arg  string
	}{
		{"zero record", SignRecord{Line: 3}, "secretkey"},
		{"short secret key", SignRecord{Line: 3, SecretKey: valid.SecretKey[:31], PublicKey: valid.PublicKey}, "secretkey"},
		{"short public key", SignRecord{Line: 3, SecretKey: valid.SecretKey, PublicKey: valid.PublicKey[:31]}, "publickey"},
		{"long public key", SignRecord{Line: 3, SecretKey: valid.SecretKey, PublicKey: append(append([]byte{}, valid.PublicKey...), 0)}, "publickey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = CheckSignRecord(tt.rec) })

			var mismatch *Mismatch
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, StageShape, mismatch.Stage)
			assert.Equal(t, 3, mismatch.Line)

			var argErr *limits.ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.arg, argErr.Name)
			assert.ErrorIs(t, err, limits.ErrInvalidLength)
		})
	}
}

func TestCheckSignRecordShortSignedMessage(t *testing.T) {
	rec, err := ParseSignRecord(rfcRecord)
	require.NoError(t, err)
	rec.SignedMessage = rec.SignedMessage[:10]

	var mismatch *Mismatch
	require.NotPanics(t, func() { err = CheckSignRecord(rec) })
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, StageSignature, mismatch.Stage)
}

func TestRunSignTestdata(t *testing.T) {
	tests := []struct {
		name    string
		records int
	}{
		{"kat-ed25519.txt", 1024},
		{"generated-ed25519.txt", 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := os.Open("../sign/testdata/" + tt.name)
			require.NoError(t, err)
			defer f.Close()

			report, err := RunSign(context.Background(), f)
			require.NoError(t, err)
			assert.Equal(t, tt.records, report.Records)
			assert.Equal(t, report.Records, report.Passed)
			assert.Zero(t, report.Failed(), "failures: %v", report.Failures)
		})
	}
}

func TestRunSignCollectsFailures(t *testing.T) {
	bad := strings.Replace(rfcRecord, "92a009a9", "92a009aa", 1)
	input := rfcRecord + "\n" + bad + "\n"

	report, err := RunSign(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Records)
	assert.Equal(t, 1, report.Passed)
	require.Equal(t, 1, report.Failed())

	var mismatch *Mismatch
	require.True(t, errors.As(report.Failures[0], &mismatch))
	assert.Equal(t, 2, mismatch.Line)
}

func TestRunSignLogs(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldLevel, oldFormatter := logrus.StandardLogger().Out, logrus.GetLevel(), logrus.StandardLogger().Formatter
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logrus.SetOutput(oldOut)
		logrus.SetLevel(oldLevel)
		logrus.SetFormatter(oldFormatter)
	})

	bad := strings.Replace(rfcRecord, "92a009a9", "92a009aa", 1)
	_, err := RunSign(context.Background(), strings.NewReader(bad+"\n"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "Known-answer record failed")
	assert.Contains(t, out, `"error_type":"mismatch"`)
	assert.Contains(t, out, `"line":1`)
	assert.Contains(t, out, "Known-answer run complete")
	assert.Contains(t, out, `"status":"complete"`)
	assert.Contains(t, out, `"package":"kat"`)
}

func TestRunSignCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := RunSign(ctx, strings.NewReader(rfcRecord+"\n"))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Zero(t, report.Passed)
}
