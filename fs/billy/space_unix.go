//go:build linux || darwin || freebsd

package billy

import (
	"io/fs"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/pathfs/fs/core"
)

func space(name string) (core.SpaceInfo, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(name, &st); err != nil {
		return core.SpaceInfo{}, &fs.PathError{Op: "statfs", Path: name, Err: err}
	}
	bsize := uint64(st.Bsize)
	return core.SpaceInfo{
		Capacity:  uint64(st.Blocks) * bsize,
		Free:      uint64(st.Bfree) * bsize,
		Available: uint64(st.Bavail) * bsize,
	}, nil
}
