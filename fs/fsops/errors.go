package fsops

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// Error describes a failed filesystem operation.
//
// Err carries the mapped error code, so both errors.GetCode and Code
// report it. The underlying backend error stays reachable through
// errors.Is and errors.As.
type Error struct {
	// Op is the name of the operation that failed, e.g. "CopyFile".
	Op string

	// Path1 is the first path argument of the operation.
	Path1 fspath.Path

	// Path2 is the second path argument, empty for single-path operations.
	Path2 fspath.Path

	// Err is the coded error describing the failure.
	Err errors.PlatformError
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path2.Empty() {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path1.Quote(), e.Err)
	}
	return fmt.Sprintf("%s %s, %s: %v", e.Op, e.Path1.Quote(), e.Path2.Quote(), e.Err)
}

// Unwrap returns the coded error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the mapped error code.
func (e *Error) Code() errors.ErrorCode {
	if e.Err == nil {
		return errors.CodeUnknown
	}
	return e.Err.Code()
}

func newError(op string, p1, p2 fspath.Path, code errors.ErrorCode, cause error) *Error {
	ctx := map[string]interface{}{
		"operation": op,
		"path1":     p1.String(),
	}
	if !p2.Empty() {
		ctx["path2"] = p2.String()
	}
	return &Error{
		Op:    op,
		Path1: p1,
		Path2: p2,
		Err:   errors.WrapWithContext(cause, code, op+" failed", ctx),
	}
}

// sentinel builds a backend-style error for conditions detected by the
// dispatcher itself, so that they are mapped like backend failures.
func sentinel(op string, p fspath.Path, err error) error {
	return &fs.PathError{Op: op, Path: p.Native(), Err: err}
}
