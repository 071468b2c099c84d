package crypto

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/nacl/limits"
)

// Error types attached to rejected calls.
const (
	RejectArgument     = "argument"
	RejectVerification = "verification"
	RejectInternal     = "internal"
)

// LoggerHelper carries the function and package fields for one call site.
// With* methods return a new helper, so a base helper can be shared.
// It never logs key material; use SecureFieldHash for public values only.
type LoggerHelper struct {
	fields logrus.Fields
}

// NewLogger creates a logger helper for function inside package pkg
func NewLogger(pkg, function string) *LoggerHelper {
	return &LoggerHelper{
		fields: logrus.Fields{
			"function": function,
			"package":  pkg,
		},
	}
}

// WithField returns a helper with key set to value
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	return l.WithFields(logrus.Fields{key: value})
}

// WithFields returns a helper with every entry of fields added
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	out := l.Fields()
	for k, v := range fields {
		out[k] = v
	}
	return &LoggerHelper{fields: out}
}

// WithError returns a helper describing err
func (l *LoggerHelper) WithError(err error, errorType, operation string) *LoggerHelper {
	return l.WithFields(logrus.Fields{
		"error":      err.Error(),
		"error_type": errorType,
		"operation":  operation,
	})
}

func (l *LoggerHelper) Debug(message string) { logrus.WithFields(l.fields).Debug(message) }

func (l *LoggerHelper) Info(message string) { logrus.WithFields(l.fields).Info(message) }

func (l *LoggerHelper) Warn(message string) { logrus.WithFields(l.fields).Warn(message) }

func (l *LoggerHelper) Error(message string) { logrus.WithFields(l.fields).Error(message) }

// Fields returns a copy of the accumulated fields
func (l *LoggerHelper) Fields() logrus.Fields {
	out := make(logrus.Fields, len(l.fields))
	for k, v := range l.fields {
		out[k] = v
	}
	return out
}

// SecureFieldHash previews at most the first 8 bytes of a public value.
// Never pass seeds, keys or scalars.
func SecureFieldHash(data []byte, name string) logrus.Fields {
	preview := "nil"
	if n := min(len(data), 8); n > 0 {
		preview = fmt.Sprintf("%x", data[:n])
		if len(data) > n {
			preview += "..."
		}
	}
	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}

// OperationFields builds the operation/status pair plus any extra fields
func OperationFields(operation, status string, additional ...logrus.Fields) logrus.Fields {
	fields := logrus.Fields{
		"operation": operation,
		"status":    status,
	}
	for _, extra := range additional {
		for k, v := range extra {
			fields[k] = v
		}
	}
	return fields
}

// RejectionType classifies err as an argument error, a verification failure
// or anything else.
func RejectionType(err error) string {
	switch {
	case limits.IsArgumentError(err):
		return RejectArgument
	case IsVerificationError(err):
		return RejectVerification
	default:
		return RejectInternal
	}
}

// LogRejection records a failed call at debug level. Argument errors also
// carry the position and name of the offending argument.
func LogRejection(pkg, function string, err error) {
	logger := NewLogger(pkg, function).WithError(err, RejectionType(err), function)

	var argErr *limits.ArgumentError
	if errors.As(err, &argErr) {
		logger = logger.WithFields(logrus.Fields{
			"arg_index": argErr.Index,
			"arg_name":  argErr.Name,
		})
	}
	logger.Debug("call rejected")
}
