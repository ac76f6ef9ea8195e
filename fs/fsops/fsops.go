package fsops

import (
	"context"
	"log/slog"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
	"github.com/jmgilman/go/pathfs/fs/fspath"
)

// FS performs path-based filesystem operations against a backend.
//
// Every method returns its result and an error. On failure the result is
// the neutral value for its type (false, 0, the empty Path, a status with
// type core.StatusError, or a zero core.SpaceInfo) and the error is an
// *Error. Package fsopsmust offers the same methods with panics instead.
//
// FS holds no mutable state of its own and is safe for concurrent use to
// the extent the backend is.
type FS struct {
	backend core.Backend
	opts    Options
}

// New returns an FS driving backend.
func New(backend core.Backend, opts ...Option) *FS {
	return &FS{backend: backend, opts: newOptions(opts)}
}

// Backend returns the backend this FS drives.
func (f *FS) Backend() core.Backend {
	return f.backend
}

// fail maps err through the backend and records the failure.
func (f *FS) fail(op string, p1, p2 fspath.Path, err error) *Error {
	code := f.backend.Code(err)
	if err == nil {
		err = errors.New(code, "no cause recorded")
	}
	f.log("operation failed", op, p1, p2, slog.String("code", string(code)))
	return newError(op, p1, p2, code, err)
}

// done records a successful mutation.
func (f *FS) done(op string, p1, p2 fspath.Path) {
	f.log("operation completed", op, p1, p2)
}

func (f *FS) log(msg, op string, p1, p2 fspath.Path, extra ...slog.Attr) {
	attrs := []slog.Attr{slog.String("op", op), slog.String("path", p1.String())}
	if !p2.Empty() {
		attrs = append(attrs, slog.String("path2", p2.String()))
	}
	attrs = append(attrs, extra...)
	f.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// valid rejects paths that cannot reach the backend.
func (f *FS) valid(op string, paths ...fspath.Path) error {
	for _, p := range paths {
		if err := p.Validate(); err != nil {
			return f.fail(op, paths[0], second(paths), err)
		}
	}
	return nil
}

func second(paths []fspath.Path) fspath.Path {
	if len(paths) > 1 {
		return paths[1]
	}
	return fspath.Path{}
}

// fromNative converts a name returned by the backend into a Path with
// the style of like.
func fromNative(like fspath.Path, native string) fspath.Path {
	p, err := fspath.FromNativeStyle(like.Style(), native)
	if err != nil {
		return fspath.NewStyle(like.Style(), native)
	}
	return p
}

func (f *FS) notFound(err error) bool {
	return err != nil && f.backend.Code(err) == errors.CodeNotFound
}
