package fstest

import (
	"testing"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// TestVolumeFS tests volume queries. Uses POSIXTestConfig() by default.
func TestVolumeFS(t *testing.T, backend core.Backend) {
	TestVolumeFSWithConfig(t, backend, POSIXTestConfig())
}

// TestVolumeFSWithConfig tests volume queries with capability configuration.
func TestVolumeFSWithConfig(t *testing.T, backend core.Backend, config FSTestConfig) {
	run(t, config, "Space", func(t *testing.T) {
		si, err := backend.Space(".")
		if err != nil {
			t.Fatalf("Space(.): got error %v, want nil", err)
		}
		if si.Capacity == 0 {
			t.Errorf("Space(.).Capacity = 0, want > 0")
		}
		if si.Free > si.Capacity || si.Available > si.Capacity {
			t.Errorf("Space(.) = %+v, want Free and Available within Capacity", si)
		}
	})

	run(t, config, "SpaceMissing", func(t *testing.T) {
		_, err := backend.Space("no-such-volume-entry")
		expectCode(t, backend, "Space(no-such-volume-entry)", err, errors.CodeNotFound)
	})
}
