package core

import (
	"io/fs"
	"path"
	"strings"
)

// Seed copies every file under srcRoot in a read-only filesystem (typically
// embed.FS or testing/fstest.MapFS) into dst, preserving the directory
// structure and permission bits. Empty directories are created as well.
//
// Use "." to copy the entire source filesystem.
//
// Example:
//
//	//go:embed testdata/tree
//	var tree embed.FS
//
//	mem := billy.NewMemory()
//	err := core.Seed(tree, mem, "testdata/tree")
func Seed(src fs.FS, dst ContentFS, srcRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		dstPath := filePath
		if srcRoot != "." && srcRoot != "" {
			dstPath = strings.TrimPrefix(filePath, srcRoot)
			dstPath = strings.TrimPrefix(dstPath, "/")
		}
		if dstPath == "" {
			dstPath = "."
		}

		if d.IsDir() {
			if dstPath == "." {
				return nil
			}
			return dst.MkdirAll(dstPath, 0o755)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		if dir := path.Dir(dstPath); dir != "." {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		return dst.WriteFile(dstPath, data, info.Mode().Perm())
	})
}
