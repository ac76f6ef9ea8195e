//go:build windows

package billy

import (
	"io/fs"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

var errnoCodes = map[syscall.Errno]errors.ErrorCode{
	windows.ERROR_FILE_NOT_FOUND:        errors.CodeNotFound,
	windows.ERROR_PATH_NOT_FOUND:        errors.CodeNotFound,
	windows.ERROR_ALREADY_EXISTS:        errors.CodeAlreadyExists,
	windows.ERROR_FILE_EXISTS:           errors.CodeAlreadyExists,
	windows.ERROR_ACCESS_DENIED:         errors.CodePermissionDenied,
	windows.ERROR_DIRECTORY:             errors.CodeNotADirectory,
	windows.ERROR_DIR_NOT_EMPTY:         errors.CodeDirectoryNotEmpty,
	windows.ERROR_CANT_RESOLVE_FILENAME: errors.CodeTooManySymlinks,
	windows.ERROR_NOT_SAME_DEVICE:       errors.CodeCrossDevice,
	windows.ERROR_INVALID_PARAMETER:     errors.CodeInvalidArgument,
	windows.ERROR_INVALID_NAME:          errors.CodeInvalidArgument,
	windows.ERROR_DISK_FULL:             errors.CodeIOError,
	windows.ERROR_NOT_SUPPORTED:         errors.CodeNotSupported,
}

func errnoCode(err error) (errors.ErrorCode, bool) {
	var errno syscall.Errno
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
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	h, err := windows.CreateFile(p, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return 0, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	defer func() { _ = windows.CloseHandle(h) }()

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return uint64(info.NumberOfLinks), nil
}

func space(name string) (core.SpaceInfo, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return core.SpaceInfo{}, &fs.PathError{Op: "statfs", Path: name, Err: err}
	}
	var si core.SpaceInfo
	if err := windows.GetDiskFreeSpaceEx(p, &si.Available, &si.Capacity, &si.Free); err != nil {
		return core.SpaceInfo{}, &fs.PathError{Op: "statfs", Path: name, Err: err}
	}
	return si, nil
}
