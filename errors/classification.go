package errors

// ErrorClassification indicates whether an error may succeed on retry.
// Operations never retry internally; the classification lets callers pick
// a retry policy without switching on individual codes.
type ErrorClassification string

const (
	// ClassificationRetryable indicates a transient failure, such as an I/O
	// error reported by the device.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates the same call will fail again until
	// the filesystem state or the arguments change.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIOError: ClassificationRetryable,

	CodeNotFound:          ClassificationPermanent,
	CodeAlreadyExists:     ClassificationPermanent,
	CodePermissionDenied:  ClassificationPermanent,
	CodeNotADirectory:     ClassificationPermanent,
	CodeIsADirectory:      ClassificationPermanent,
	CodeDirectoryNotEmpty: ClassificationPermanent,
	CodeTooManySymlinks:   ClassificationPermanent,
	CodeCrossDevice:       ClassificationPermanent,
	CodeInvalidArgument:   ClassificationPermanent,
	CodeNotSupported:      ClassificationPermanent,
	CodeUnknown:           ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unlisted codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
