// Package fsops performs filesystem operations on fspath.Path values
// through a core.Backend.
//
// Each operation is implemented once and returns its result together with
// an error. A failed operation returns the neutral value of its result
// type and an *Error naming the operation, its paths and the mapped error
// code:
//
//	ops := fsops.New(billy.NewLocal())
//	created, err := ops.CreateDirectories(fspath.New("build/out"))
//	if err != nil {
//		code := errors.GetCode(err) // e.g. errors.CodePermissionDenied
//	}
//
// Absence is an answer, not a failure, for Status, Exists, Remove and
// RemoveAll. Every other condition is returned as an error; nothing is
// retried. Package fsopsmust exposes the same operations with panics.
//
// # Configuration
//
// New accepts functional options:
//
//	ops := fsops.New(backend,
//		fsops.WithLogger(slog.Default()),
//		fsops.WithMaxSymlinkDepth(8),
//	)
//
// Failures and successful mutations are logged at debug level with the
// attributes op, path, path2 and code.
package fsops
