//go:build !linux && !darwin && !freebsd && !windows

package billy

import (
	"io/fs"

	"github.com/jmgilman/go/pathfs/fs/core"
)

func space(name string) (core.SpaceInfo, error) {
	return core.SpaceInfo{}, &fs.PathError{Op: "statfs", Path: name, Err: core.ErrUnsupported}
}
