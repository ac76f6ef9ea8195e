package errors

// ErrorCode identifies the kind of failure reported by an operation.
// Codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Entity errors.

	// CodeNotFound indicates a path (or one of its ancestors) does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the destination of a create, copy or link
	// operation is already occupied.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodePermissionDenied indicates the backend refused access.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Type errors.

	// CodeNotADirectory indicates a directory was expected somewhere along the path.
	CodeNotADirectory ErrorCode = "NOT_A_DIRECTORY"

	// CodeIsADirectory indicates a directory was found where a file was expected.
	CodeIsADirectory ErrorCode = "IS_A_DIRECTORY"

	// CodeDirectoryNotEmpty indicates a directory still has entries.
	CodeDirectoryNotEmpty ErrorCode = "DIRECTORY_NOT_EMPTY"

	// Resolution errors.

	// CodeTooManySymlinks indicates symbolic link resolution exceeded its depth limit.
	CodeTooManySymlinks ErrorCode = "TOO_MANY_SYMLINKS"

	// CodeCrossDevice indicates an operation spanned two volumes or backends.
	CodeCrossDevice ErrorCode = "CROSS_DEVICE"

	// Input errors.

	// CodeInvalidArgument indicates a malformed path or argument.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Backend errors.

	// CodeIOError indicates the backend failed while performing I/O.
	CodeIOError ErrorCode = "IO_ERROR"

	// CodeNotSupported indicates the backend does not offer the primitive.
	CodeNotSupported ErrorCode = "NOT_SUPPORTED"

	// Generic errors.

	// CodeUnknown indicates a backend failure that has no mapping.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Codes returns every defined error code in declaration order.
func Codes() []ErrorCode {
	return []ErrorCode{
		CodeNotFound,
		CodeAlreadyExists,
		CodePermissionDenied,
		CodeNotADirectory,
		CodeIsADirectory,
		CodeDirectoryNotEmpty,
		CodeTooManySymlinks,
		CodeCrossDevice,
		CodeInvalidArgument,
		CodeIOError,
		CodeNotSupported,
		CodeUnknown,
	}
}

// Known reports whether c is one of the defined codes.
func (c ErrorCode) Known() bool {
	_, ok := defaultClassifications[c]
	return ok
}
