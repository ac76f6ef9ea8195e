package fstest

import (
	"testing"
	"time"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// TestWriteFS tests creation and modification: Mkdir, Symlink, Link,
// CopyFile, Truncate and Chtimes. Uses POSIXTestConfig() by default.
func TestWriteFS(t *testing.T, backend core.Backend) {
	TestWriteFSWithConfig(t, backend, POSIXTestConfig())
}

// TestWriteFSWithConfig tests creation and modification with capability
// configuration.
func TestWriteFSWithConfig(t *testing.T, backend core.Backend, config FSTestConfig) {
	run(t, config, "Mkdir", func(t *testing.T) {
		mkdir(t, backend, "newdir")

		info, err := backend.Stat("newdir")
		if err != nil {
			t.Fatalf("Stat(newdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(newdir).IsDir() = false, want true")
		}
	})

	run(t, config, "MkdirExisting", func(t *testing.T) {
		mkdir(t, backend, "twice")

		err := backend.Mkdir("twice", 0o755)
		expectCode(t, backend, "Mkdir(twice)", err, errors.CodeAlreadyExists)
	})

	run(t, config, "MkdirMissingParent", func(t *testing.T) {
		err := backend.Mkdir("nonexistent/child", 0o755)
		expectCode(t, backend, "Mkdir(nonexistent/child)", err, errors.CodeNotFound)
	})

	run(t, config, "MkdirUnderFile", func(t *testing.T) {
		writeFile(t, backend, "blocker.txt", "x")

		err := backend.Mkdir("blocker.txt/child", 0o755)
		expectCode(t, backend, "Mkdir(blocker.txt/child)", err, errors.CodeNotADirectory)
	})

	run(t, config, "SymlinkExisting", func(t *testing.T) {
		writeFile(t, backend, "occupied.txt", "x")

		err := backend.Symlink("anything", "occupied.txt")
		expectCode(t, backend, "Symlink(anything, occupied.txt)", err, errors.CodeAlreadyExists)
	})

	run(t, config, "HardLink", func(t *testing.T) {
		writeFile(t, backend, "original.txt", "x")

		err := backend.Link("original.txt", "second.txt")
		if !config.HardLinks {
			expectCode(t, backend, "Link(original.txt, second.txt)", err, errors.CodeNotSupported)
			return
		}
		if err != nil {
			t.Fatalf("Link(original.txt, second.txt): got error %v, want nil", err)
		}
		n, err := backend.LinkCount("original.txt")
		if err != nil || n != 2 {
			t.Errorf("LinkCount(original.txt) = %d, %v; want 2, nil", n, err)
		}
		same, err := backend.SameFile("original.txt", "second.txt")
		if err != nil || !same {
			t.Errorf("SameFile(original.txt, second.txt) = %v, %v; want true, nil", same, err)
		}
	})

	run(t, config, "CopyFile", func(t *testing.T) {
		if err := content(t, backend).WriteFile("source.txt", []byte("payload"), 0o640); err != nil {
			t.Fatalf("WriteFile(source.txt): setup failed: %v", err)
		}

		if err := backend.CopyFile("source.txt", "copy.txt"); err != nil {
			t.Fatalf("CopyFile(source.txt, copy.txt): got error %v, want nil", err)
		}
		data, err := content(t, backend).ReadFile("copy.txt")
		if err != nil {
			t.Fatalf("ReadFile(copy.txt): got error %v, want nil", err)
		}
		if string(data) != "payload" {
			t.Errorf("ReadFile(copy.txt) = %q, want %q", data, "payload")
		}
		info, err := backend.Stat("copy.txt")
		if err != nil {
			t.Fatalf("Stat(copy.txt): got error %v, want nil", err)
		}
		if info.Mode().Perm() != 0o640 {
			t.Errorf("Stat(copy.txt).Mode().Perm() = %v, want 0640", info.Mode().Perm())
		}
	})

	run(t, config, "CopyFileExisting", func(t *testing.T) {
		writeFile(t, backend, "from.txt", "new")
		writeFile(t, backend, "to.txt", "old")

		err := backend.CopyFile("from.txt", "to.txt")
		expectCode(t, backend, "CopyFile(from.txt, to.txt)", err, errors.CodeAlreadyExists)

		data, _ := content(t, backend).ReadFile("to.txt")
		if string(data) != "old" {
			t.Errorf("ReadFile(to.txt) = %q after failed copy, want %q", data, "old")
		}
	})

	run(t, config, "CopyFileDirectory", func(t *testing.T) {
		mkdir(t, backend, "srcdir")

		err := backend.CopyFile("srcdir", "dstfile")
		expectCode(t, backend, "CopyFile(srcdir, dstfile)", err, errors.CodeIsADirectory)
	})

	run(t, config, "CopyFileMissingParent", func(t *testing.T) {
		writeFile(t, backend, "orphan.txt", "x")

		err := backend.CopyFile("orphan.txt", "nowhere/orphan.txt")
		expectCode(t, backend, "CopyFile(orphan.txt, nowhere/orphan.txt)", err, errors.CodeNotFound)
	})

	run(t, config, "Truncate", func(t *testing.T) {
		writeFile(t, backend, "sized.txt", "hello world")

		if err := backend.Truncate("sized.txt", 5); err != nil {
			t.Fatalf("Truncate(sized.txt, 5): got error %v, want nil", err)
		}
		data, _ := content(t, backend).ReadFile("sized.txt")
		if string(data) != "hello" {
			t.Errorf("ReadFile(sized.txt) = %q, want %q", data, "hello")
		}

		if err := backend.Truncate("sized.txt", 8); err != nil {
			t.Fatalf("Truncate(sized.txt, 8): got error %v, want nil", err)
		}
		data, _ = content(t, backend).ReadFile("sized.txt")
		if string(data) != "hello\x00\x00\x00" {
			t.Errorf("ReadFile(sized.txt) = %q, want zero-filled extension", data)
		}
	})

	run(t, config, "TruncateMissing", func(t *testing.T) {
		err := backend.Truncate("ghost.txt", 0)
		expectCode(t, backend, "Truncate(ghost.txt)", err, errors.CodeNotFound)
	})

	run(t, config, "Chtimes", func(t *testing.T) {
		writeFile(t, backend, "timed.txt", "x")
		mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

		if err := backend.Chtimes("timed.txt", mtime, mtime); err != nil {
			t.Fatalf("Chtimes(timed.txt): got error %v, want nil", err)
		}
		info, err := backend.Stat("timed.txt")
		if err != nil {
			t.Fatalf("Stat(timed.txt): got error %v, want nil", err)
		}
		if !info.ModTime().Equal(mtime) {
			t.Errorf("Stat(timed.txt).ModTime() = %v, want %v", info.ModTime(), mtime)
		}
	})
}
