//go:build !unix && !windows

package billy

import (
	"io/fs"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

func errnoCode(error) (errors.ErrorCode, bool) {
	return "", false
}

func linkCount(name string) (uint64, error) {
	return 0, &fs.PathError{Op: "stat", Path: name, Err: core.ErrUnsupported}
}
