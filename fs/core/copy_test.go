package core_test

import (
	"io/fs"
	"maps"
	"path"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/go/pathfs/fs/core"
)

// recordingFS is a ContentFS that records what Seed writes.
type recordingFS struct {
	files map[string][]byte
	perms map[string]fs.FileMode
	dirs  map[string]bool
}

func newRecordingFS() *recordingFS {
	return &recordingFS{
		files: map[string][]byte{},
		perms: map[string]fs.FileMode{},
		dirs:  map[string]bool{},
	}
}

func (r *recordingFS) ReadFile(name string) ([]byte, error) {
	data, ok := r.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: core.ErrNotExist}
	}
	return data, nil
}

func (r *recordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if dir := path.Dir(name); dir != "." && !r.dirs[dir] {
		return &fs.PathError{Op: "open", Path: name, Err: core.ErrNotExist}
	}
	r.files[name] = data
	r.perms[name] = perm
	return nil
}

func (r *recordingFS) MkdirAll(name string, _ fs.FileMode) error {
	for dir := name; dir != "."; dir = path.Dir(dir) {
		r.dirs[dir] = true
	}
	return nil
}

// TestSeed_Root verifies the whole source tree is copied.
func TestSeed_Root(t *testing.T) {
	src := fstest.MapFS{
		"a.txt":     {Data: []byte("a"), Mode: 0o600},
		"dir/b.txt": {Data: []byte("bb"), Mode: 0o644},
		"dir/sub/c": {Data: []byte("ccc"), Mode: 0o755},
		"empty":     {Mode: fs.ModeDir | 0o755},
	}
	dst := newRecordingFS()

	if err := core.Seed(src, dst, "."); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	wantFiles := []string{"a.txt", "dir/b.txt", "dir/sub/c"}
	if got := slices.Sorted(maps.Keys(dst.files)); !slices.Equal(got, wantFiles) {
		t.Errorf("files = %v, want %v", got, wantFiles)
	}
	if string(dst.files["dir/sub/c"]) != "ccc" {
		t.Errorf("dir/sub/c = %q, want %q", dst.files["dir/sub/c"], "ccc")
	}
	if dst.perms["a.txt"] != 0o600 {
		t.Errorf("a.txt perm = %v, want 0600", dst.perms["a.txt"])
	}
	if !dst.dirs["empty"] {
		t.Errorf("empty directory was not created")
	}
}

// TestSeed_Subtree verifies srcRoot is stripped from destination names.
func TestSeed_Subtree(t *testing.T) {
	src := fstest.MapFS{
		"templates/x/y.txt": {Data: []byte("y")},
		"other/z.txt":       {Data: []byte("z")},
	}
	dst := newRecordingFS()

	if err := core.Seed(src, dst, "templates"); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if _, ok := dst.files["x/y.txt"]; !ok {
		t.Errorf("x/y.txt missing; got %v", slices.Sorted(maps.Keys(dst.files)))
	}
	if _, ok := dst.files["z.txt"]; ok {
		t.Errorf("files outside srcRoot were copied")
	}
}

// TestSeed_MissingRoot verifies a missing root is reported.
func TestSeed_MissingRoot(t *testing.T) {
	err := core.Seed(fstest.MapFS{}, newRecordingFS(), "absent")
	if err == nil {
		t.Fatal("Seed succeeded for a missing root")
	}
	if got := core.CodeOf(err); got != "NOT_FOUND" {
		t.Errorf("CodeOf(err) = %s, want NOT_FOUND", got)
	}
}
