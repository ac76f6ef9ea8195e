// Package fstest provides a conformance test suite for validating backend
// implementations against the core.Backend contract.
//
// This package contains test functions that backend packages import and
// execute to verify they map failures onto the same error codes and honor
// the same POSIX-like semantics. Backends that lack a primitive (hard links
// in memory, for example) declare it in FSTestConfig and the suite checks
// that the primitive reports NOT_SUPPORTED instead.
//
// Every test works with names relative to the backend's current directory,
// which must be an empty, writable directory. The backend must also
// implement core.ContentFS so the suite can create fixtures.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) core.Backend {
//	        return mybackend.New()
//	    })
//	}
package fstest

import (
	"io/fs"
	"slices"
	"testing"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// FSTestConfig configures the test suite to match backend capabilities.
type FSTestConfig struct {
	// HardLinks indicates the backend supports Link and reports real link
	// counts.
	HardLinks bool

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "WriteFS/HardLink").
	SkipTests []string
}

// POSIXTestConfig returns configuration for host filesystems.
func POSIXTestConfig() FSTestConfig {
	return FSTestConfig{
		HardLinks: true,
	}
}

// MemoryTestConfig returns configuration for in-process filesystems.
func MemoryTestConfig() FSTestConfig {
	return FSTestConfig{
		HardLinks: false,
	}
}

// NewBackendFunc returns a fresh backend whose current directory is empty.
// It receives the subtest so it can register cleanup.
type NewBackendFunc func(t *testing.T) core.Backend

// TestSuite runs all conformance tests against a backend.
// Uses POSIXTestConfig() by default.
func TestSuite(t *testing.T, newFS NewBackendFunc) {
	TestSuiteWithConfig(t, newFS, POSIXTestConfig())
}

// TestSuiteWithConfig runs conformance tests with capability configuration.
func TestSuiteWithConfig(t *testing.T, newFS NewBackendFunc, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.Backend, FSTestConfig)
	}{
		{"StatFS", TestStatFSWithConfig},
		{"WriteFS", TestWriteFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"VolumeFS", TestVolumeFSWithConfig},
		{"WorkdirFS", TestWorkdirFSWithConfig},
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			if slices.Contains(config.SkipTests, group.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			group.run(t, newFS(t), skipWithin(config, group.name))
		})
	}
}

// skipWithin narrows SkipTests to the subtests of one group.
func skipWithin(config FSTestConfig, group string) FSTestConfig {
	narrowed := config
	narrowed.SkipTests = nil
	prefix := group + "/"
	for _, name := range config.SkipTests {
		if len(name) > len(prefix) && name[:len(prefix)] == prefix {
			narrowed.SkipTests = append(narrowed.SkipTests, name[len(prefix):])
		}
	}
	return narrowed
}

// run executes a subtest unless the configuration skips it.
func run(t *testing.T, config FSTestConfig, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if slices.Contains(config.SkipTests, name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}

// content returns the backend's ContentFS capability, which the suite
// needs to build fixtures.
func content(t *testing.T, backend core.Backend) core.ContentFS {
	t.Helper()
	cfs, ok := backend.(core.ContentFS)
	if !ok {
		t.Fatalf("%s backend does not implement core.ContentFS", backend.Type())
	}
	return cfs
}

// writeFile creates name with data, failing the test on error.
func writeFile(t *testing.T, backend core.Backend, name, data string) {
	t.Helper()
	if err := content(t, backend).WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}

// mkdir creates a directory, failing the test on error.
func mkdir(t *testing.T, backend core.Backend, name string) {
	t.Helper()
	if err := backend.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}
}

// symlink creates a symbolic link, failing the test on error.
func symlink(t *testing.T, backend core.Backend, target, link string) {
	t.Helper()
	if err := backend.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(%s, %s): setup failed: %v", target, link, err)
	}
}

// expectCode checks that err is non-nil and maps to want.
func expectCode(t *testing.T, backend core.Backend, what string, err error, want errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: got nil error, want %s", what, want)
		return
	}
	if got := backend.Code(err); got != want {
		t.Errorf("%s: got code %s (%v), want %s", what, got, err, want)
	}
}

// expectMissing checks that name does not exist.
func expectMissing(t *testing.T, backend core.Backend, name string) {
	t.Helper()
	if _, err := backend.Lstat(name); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Lstat(%s): got error %v, want fs.ErrNotExist", name, err)
	}
}
