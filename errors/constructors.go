package errors

import "fmt"

// New creates a PlatformError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidArgument, "no arguments, at least one required")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeNotFound, "directory %s does not exist", path)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
