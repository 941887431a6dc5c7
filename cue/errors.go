package cue

import (
	"github.com/xaviervia/fast/errors"
)

// wrapLoadErrorWithContext wraps an error with CodeCUELoadFailed and attaches context metadata.
// Used when a CUE source cannot be read from the filesystem.
func wrapLoadErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeCUELoadFailed, message, ctx)
}

// wrapBuildErrorWithContext wraps an error with CodeCUEBuildFailed and attaches context metadata.
// Used when CUE compilation or evaluation fails.
func wrapBuildErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeCUEBuildFailed, message, ctx)
}

// wrapDecodeErrorWithContext wraps an error with CodeCUEDecodeFailed and attaches context metadata.
func wrapDecodeErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeCUEDecodeFailed, message, ctx)
}

// decodeError reports a value that has no tree literal representation.
func decodeError(field string, format string, args ...interface{}) errors.PlatformError {
	return errors.WithContext(errors.Newf(errors.CodeCUEDecodeFailed, format, args...), "field", formatFieldPath(field))
}

// makeContext is a convenience helper for creating context maps inline.
// Example: makeContext("path", "/foo/bar", "line", 42).
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{})
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

func formatFieldPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
