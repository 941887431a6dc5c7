package errors

// ErrorClassification indicates whether retrying the failed operation may help.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a transient failure.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates a failure that will repeat on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry may succeed.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// Codes missing from the map are permanent.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO: ClassificationRetryable,

	CodeInvalidArgument: ClassificationPermanent,
	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeNotDirectory:    ClassificationPermanent,
	CodePermission:      ClassificationPermanent,

	CodeLiteralInvalid:  ClassificationPermanent,
	CodeCUELoadFailed:   ClassificationPermanent,
	CodeCUEBuildFailed:  ClassificationPermanent,
	CodeCUEDecodeFailed: ClassificationPermanent,

	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
