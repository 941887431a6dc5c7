// Package errors provides the structured errors returned by every fast package.
//
// Each error carries an ErrorCode naming the failure kind, a classification
// (retryable or permanent), a human-readable message, optional context
// metadata and an optional wrapped cause. Errors stay compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Error Codes
//
// The codes mirror the failure kinds of a tree mutation:
//
//   - CodeInvalidArgument: missing or malformed parameters (no path, wrong arity)
//   - CodeNotFound: the target of an operation does not exist
//   - CodeAlreadyExists: a strict operation found a pre-existing target
//   - CodeNotDirectory: a directory was required but a file was found
//   - CodePermission: the host filesystem refused the operation
//   - CodeIO: any other host filesystem failure
//   - CodeLiteralInvalid, CodeCUELoadFailed, CodeCUEBuildFailed, CodeCUEDecodeFailed:
//     tree literal construction failures
//   - CodeInternal, CodeUnknown: everything else
//
// # Usage
//
//	if err := dir.Delete(); err != nil {
//	    if errors.HasCode(err, errors.CodeNotFound) {
//	        // nothing to clean up
//	    }
//	}
//
// Wrapping a host error keeps the original chain intact:
//
//	if err := filesystem.Mkdir(p, 0o755); err != nil {
//	    return errors.Wrapf(err, errors.CodeIO, "failed to create %s", p)
//	}
package errors
