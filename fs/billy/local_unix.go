//go:build unix

package billy

import (
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/pathfs/errors"
)

var errnoCodes = map[unix.Errno]errors.ErrorCode{
	unix.ENOENT:       errors.CodeNotFound,
	unix.EEXIST:       errors.CodeAlreadyExists,
	unix.EACCES:       errors.CodePermissionDenied,
	unix.EPERM:        errors.CodePermissionDenied,
	unix.EROFS:        errors.CodePermissionDenied,
	unix.ENOTDIR:      errors.CodeNotADirectory,
	unix.EISDIR:       errors.CodeIsADirectory,
	unix.ENOTEMPTY:    errors.CodeDirectoryNotEmpty,
	unix.ELOOP:        errors.CodeTooManySymlinks,
	unix.EXDEV:        errors.CodeCrossDevice,
	unix.EINVAL:       errors.CodeInvalidArgument,
	unix.ENAMETOOLONG: errors.CodeInvalidArgument,
	unix.EIO:          errors.CodeIOError,
	unix.ENOSPC:       errors.CodeIOError,
	unix.ENOTSUP:      errors.CodeNotSupported,
}

func errnoCode(err error) (errors.ErrorCode, bool) {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return "", false
	}
	code, ok := errnoCodes[errno]
	if !ok {
		return errors.CodeUnknown, true
	}
	return code, true
}

func linkCount(name string) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return uint64(st.Nlink), nil
}
