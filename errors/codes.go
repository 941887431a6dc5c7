package errors

// ErrorCode represents a specific failure kind.
// Codes are strings so they read well in logs and CLI output.
type ErrorCode string

const (
	// Argument errors.

	// CodeInvalidArgument indicates missing or malformed parameters, such as an
	// operation called without a path on a handle that has none.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Resource errors.

	// CodeNotFound indicates the target of an operation does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a strict operation found a pre-existing target.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeNotDirectory indicates a directory was required but something else was found.
	CodeNotDirectory ErrorCode = "NOT_DIRECTORY"

	// Host filesystem errors.

	// CodePermission indicates the host filesystem denied the operation.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// CodeIO indicates an unclassified host filesystem failure.
	CodeIO ErrorCode = "IO_ERROR"

	// Literal errors.

	// CodeLiteralInvalid indicates a tree literal could not be built from its input.
	CodeLiteralInvalid ErrorCode = "LITERAL_INVALID"

	// CodeCUELoadFailed indicates a CUE file could not be read.
	CodeCUELoadFailed ErrorCode = "CUE_LOAD_FAILED"

	// CodeCUEBuildFailed indicates CUE compilation or evaluation failed.
	CodeCUEBuildFailed ErrorCode = "CUE_BUILD_FAILED"

	// CodeCUEDecodeFailed indicates a CUE value could not be decoded into a tree literal.
	CodeCUEDecodeFailed ErrorCode = "CUE_DECODE_FAILED"

	// System errors.

	// CodeInternal indicates an internal error.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
