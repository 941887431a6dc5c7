package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps err with a code and message while keeping it reachable through
// Unwrap, errors.Is and errors.As.
//
// The classification of a wrapped PlatformError is preserved; otherwise the
// default classification of code is used. Returns nil if err is nil.
//
// Example:
//
//	if err := filesystem.Remove(p); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to remove directory")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one step.
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeIO, "copy failed", map[string]interface{}{
//	    "source": src,
//	    "target": dst,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
