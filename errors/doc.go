// Package errors provides the error taxonomy shared by every filesystem
// operation.
//
// It extends Go's standard error handling with a closed set of error codes,
// retry classification, context metadata, and JSON rendering, while staying
// compatible with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap).
//
// # Error Codes
//
// Backend failures are mapped onto a small taxonomy:
//
//   - Entity: CodeNotFound, CodeAlreadyExists, CodePermissionDenied
//   - Type: CodeNotADirectory, CodeIsADirectory, CodeDirectoryNotEmpty
//   - Resolution: CodeTooManySymlinks, CodeCrossDevice
//   - Input: CodeInvalidArgument
//   - Backend: CodeIOError, CodeNotSupported
//   - Generic: CodeUnknown
//
// Every backend maps its raw failures onto these codes. The mapping is
// total: a raw failure without a dedicated code becomes CodeUnknown and is
// never dropped.
//
// # Creating and Wrapping
//
//	err := errors.New(errors.CodeInvalidArgument, "path contains NUL")
//
//	if err := backend.Mkdir(name, 0o777); err != nil {
//	    return errors.Wrap(err, backend.Code(err), "CreateDirectory failed")
//	}
//
// # Context Metadata
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "operation": "rename",
//	    "path1":     "/tmp/a",
//	    "path2":     "/tmp/b",
//	})
//
// # Retry Classification
//
// Only CodeIOError is retryable by default. Operations never retry on their
// own; callers that want a policy use IsRetryable.
//
//	if errors.IsRetryable(err) {
//	    time.Sleep(backoff)
//	}
package errors
