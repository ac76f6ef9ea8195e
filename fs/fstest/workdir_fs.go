package fstest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// TestWorkdirFS tests the current directory: Getwd, Chdir and relative
// name resolution. Uses POSIXTestConfig() by default.
//
// The backend's current directory is changed; callers must restore it.
func TestWorkdirFS(t *testing.T, backend core.Backend) {
	TestWorkdirFSWithConfig(t, backend, POSIXTestConfig())
}

// TestWorkdirFSWithConfig tests the current directory with capability
// configuration.
func TestWorkdirFSWithConfig(t *testing.T, backend core.Backend, config FSTestConfig) {
	start, err := backend.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): got error %v, want nil", err)
	}

	run(t, config, "GetwdAbsolute", func(t *testing.T) {
		if !filepath.IsAbs(start) && !strings.HasPrefix(start, "/") {
			t.Errorf("Getwd() = %q, want an absolute name", start)
		}
	})

	run(t, config, "ChdirResolvesRelativeNames", func(t *testing.T) {
		mkdir(t, backend, "sub")
		writeFile(t, backend, "sub/inside.txt", "x")

		if err := backend.Chdir("sub"); err != nil {
			t.Fatalf("Chdir(sub): got error %v, want nil", err)
		}
		defer func() { _ = backend.Chdir(start) }()

		if _, err := backend.Stat("inside.txt"); err != nil {
			t.Errorf("Stat(inside.txt) after Chdir: got error %v, want nil", err)
		}
		wd, err := backend.Getwd()
		if err != nil {
			t.Fatalf("Getwd(): got error %v, want nil", err)
		}
		if filepath.Base(filepath.FromSlash(wd)) != "sub" {
			t.Errorf("Getwd() = %q after Chdir(sub), want a name ending in sub", wd)
		}
	})

	run(t, config, "ChdirNotDirectory", func(t *testing.T) {
		writeFile(t, backend, "notdir.txt", "x")

		err := backend.Chdir("notdir.txt")
		expectCode(t, backend, "Chdir(notdir.txt)", err, errors.CodeNotADirectory)
	})

	run(t, config, "ChdirMissing", func(t *testing.T) {
		err := backend.Chdir("vanished")
		expectCode(t, backend, "Chdir(vanished)", err, errors.CodeNotFound)
	})

	run(t, config, "CodeIsTotal", func(t *testing.T) {
		if got := backend.Code(nil); got != errors.CodeUnknown {
			t.Errorf("Code(nil) = %s, want UNKNOWN", got)
		}
		if got := backend.Code(errors.New(errors.CodeIOError, "disk")); got != errors.CodeIOError {
			t.Errorf("Code(IO_ERROR) = %s, want IO_ERROR", got)
		}
		for _, code := range errors.Codes() {
			if !code.Known() {
				t.Errorf("code %s is not known", code)
			}
		}
	})
}
