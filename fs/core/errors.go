package core

import (
	stderrors "errors"
	"io/fs"

	"github.com/jmgilman/go/pathfs/errors"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrInvalid is returned for an invalid argument.
	// Re-exported from io/fs for convenience.
	ErrInvalid = fs.ErrInvalid

	// ErrUnsupported is returned when an operation is not supported by the
	// backend, for example hard links on the memory backend.
	ErrUnsupported = stderrors.New("operation not supported")

	// ErrNotDir is returned when a path component that must be a directory
	// is not one.
	ErrNotDir = stderrors.New("not a directory")

	// ErrIsDir is returned when a directory is found where a file is
	// required.
	ErrIsDir = stderrors.New("is a directory")

	// ErrNotEmpty is returned when removing a directory that has entries.
	ErrNotEmpty = stderrors.New("directory not empty")

	// ErrLoop is returned when symbolic link resolution exceeds its depth
	// limit.
	ErrLoop = stderrors.New("too many levels of symbolic links")

	// ErrCrossDevice is returned when an operation spans two volumes.
	ErrCrossDevice = stderrors.New("cross-device link")
)

var sentinelCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{ErrNotExist, errors.CodeNotFound},
	{ErrExist, errors.CodeAlreadyExists},
	{ErrPermission, errors.CodePermissionDenied},
	{ErrNotDir, errors.CodeNotADirectory},
	{ErrIsDir, errors.CodeIsADirectory},
	{ErrNotEmpty, errors.CodeDirectoryNotEmpty},
	{ErrLoop, errors.CodeTooManySymlinks},
	{ErrCrossDevice, errors.CodeCrossDevice},
	{ErrInvalid, errors.CodeInvalidArgument},
	{ErrUnsupported, errors.CodeNotSupported},
	{stderrors.ErrUnsupported, errors.CodeNotSupported},
}

// CodeOf maps an error to the taxonomy using the sentinels shared by every
// backend. A PlatformError keeps its own code. Anything else, including
// nil, is errors.CodeUnknown.
func CodeOf(err error) errors.ErrorCode {
	if err == nil {
		return errors.CodeUnknown
	}
	var platformErr errors.PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Code()
	}
	for _, sc := range sentinelCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}
	return errors.CodeUnknown
}
