package fstest

import (
	"io/fs"
	"testing"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// TestStatFS tests metadata queries: Stat, Lstat, Readlink, ReadDir and
// LinkCount. Uses POSIXTestConfig() by default.
func TestStatFS(t *testing.T, backend core.Backend) {
	TestStatFSWithConfig(t, backend, POSIXTestConfig())
}

// TestStatFSWithConfig tests metadata queries with capability configuration.
func TestStatFSWithConfig(t *testing.T, backend core.Backend, config FSTestConfig) {
	run(t, config, "StatRegularFile", func(t *testing.T) {
		writeFile(t, backend, "regular.txt", "hello")

		info, err := backend.Stat("regular.txt")
		if err != nil {
			t.Fatalf("Stat(regular.txt): got error %v, want nil", err)
		}
		if info.Size() != 5 {
			t.Errorf("Stat(regular.txt).Size() = %d, want 5", info.Size())
		}
		if got := core.StatusOf(info).Type; got != core.RegularFile {
			t.Errorf("StatusOf(regular.txt) = %s, want regular_file", got)
		}
	})

	run(t, config, "StatMissing", func(t *testing.T) {
		_, err := backend.Stat("missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
		expectCode(t, backend, "Stat(missing.txt)", err, errors.CodeNotFound)
	})

	run(t, config, "LstatSymlink", func(t *testing.T) {
		writeFile(t, backend, "target.txt", "target")
		symlink(t, backend, "target.txt", "link.txt")

		linfo, err := backend.Lstat("link.txt")
		if err != nil {
			t.Fatalf("Lstat(link.txt): got error %v, want nil", err)
		}
		if linfo.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Lstat(link.txt).Mode() = %v, want symlink", linfo.Mode())
		}

		info, err := backend.Stat("link.txt")
		if err != nil {
			t.Fatalf("Stat(link.txt): got error %v, want nil", err)
		}
		if !info.Mode().IsRegular() || info.Size() != 6 {
			t.Errorf("Stat(link.txt) = mode %v size %d, want regular file of 6 bytes", info.Mode(), info.Size())
		}
	})

	run(t, config, "BrokenSymlink", func(t *testing.T) {
		symlink(t, backend, "nowhere", "broken")

		if _, err := backend.Lstat("broken"); err != nil {
			t.Errorf("Lstat(broken): got error %v, want nil", err)
		}
		_, err := backend.Stat("broken")
		expectCode(t, backend, "Stat(broken)", err, errors.CodeNotFound)
	})

	run(t, config, "SymlinkLoop", func(t *testing.T) {
		symlink(t, backend, "loop2", "loop1")
		symlink(t, backend, "loop1", "loop2")

		_, err := backend.Stat("loop1")
		expectCode(t, backend, "Stat(loop1)", err, errors.CodeTooManySymlinks)
	})

	run(t, config, "SymlinkedDirectory", func(t *testing.T) {
		mkdir(t, backend, "real")
		writeFile(t, backend, "real/inner.txt", "x")
		symlink(t, backend, "real", "alias")

		if _, err := backend.Stat("alias/inner.txt"); err != nil {
			t.Errorf("Stat(alias/inner.txt): got error %v, want nil", err)
		}
		entries, err := backend.ReadDir("alias")
		if err != nil {
			t.Fatalf("ReadDir(alias): got error %v, want nil", err)
		}
		if len(entries) != 1 || entries[0].Name() != "inner.txt" {
			t.Errorf("ReadDir(alias) = %v, want [inner.txt]", entryNames(entries))
		}
	})

	run(t, config, "ReadlinkNotSymlink", func(t *testing.T) {
		writeFile(t, backend, "plain.txt", "x")

		_, err := backend.Readlink("plain.txt")
		expectCode(t, backend, "Readlink(plain.txt)", err, errors.CodeInvalidArgument)
	})

	run(t, config, "ReadDirSorted", func(t *testing.T) {
		mkdir(t, backend, "list")
		writeFile(t, backend, "list/b.txt", "b")
		writeFile(t, backend, "list/a.txt", "a")
		mkdir(t, backend, "list/c")

		entries, err := backend.ReadDir("list")
		if err != nil {
			t.Fatalf("ReadDir(list): got error %v, want nil", err)
		}
		got := entryNames(entries)
		want := []string{"a.txt", "b.txt", "c"}
		if len(got) != len(want) {
			t.Fatalf("ReadDir(list) = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("ReadDir(list)[%d] = %s, want %s", i, got[i], want[i])
			}
		}
		if !entries[2].IsDir() {
			t.Errorf("ReadDir(list)[2].IsDir() = false, want true")
		}
	})

	run(t, config, "ReadDirNotDirectory", func(t *testing.T) {
		writeFile(t, backend, "file.txt", "x")

		_, err := backend.ReadDir("file.txt")
		expectCode(t, backend, "ReadDir(file.txt)", err, errors.CodeNotADirectory)
	})

	run(t, config, "LinkCount", func(t *testing.T) {
		writeFile(t, backend, "counted.txt", "x")

		n, err := backend.LinkCount("counted.txt")
		if err != nil {
			t.Fatalf("LinkCount(counted.txt): got error %v, want nil", err)
		}
		if n != 1 {
			t.Errorf("LinkCount(counted.txt) = %d, want 1", n)
		}

		_, err = backend.LinkCount("absent.txt")
		expectCode(t, backend, "LinkCount(absent.txt)", err, errors.CodeNotFound)
	})
}

func entryNames(entries []fs.DirEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
