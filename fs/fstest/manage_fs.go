package fstest

import (
	"testing"

	"github.com/jmgilman/go/pathfs/errors"
	"github.com/jmgilman/go/pathfs/fs/core"
)

// TestManageFS tests removal and movement: Remove, Rename and SameFile.
// Uses POSIXTestConfig() by default.
func TestManageFS(t *testing.T, backend core.Backend) {
	TestManageFSWithConfig(t, backend, POSIXTestConfig())
}

// TestManageFSWithConfig tests removal and movement with capability
// configuration.
func TestManageFSWithConfig(t *testing.T, backend core.Backend, config FSTestConfig) {
	run(t, config, "RemoveFile", func(t *testing.T) {
		writeFile(t, backend, "doomed.txt", "x")

		if err := backend.Remove("doomed.txt"); err != nil {
			t.Fatalf("Remove(doomed.txt): got error %v, want nil", err)
		}
		expectMissing(t, backend, "doomed.txt")
	})

	run(t, config, "RemoveEmptyDirectory", func(t *testing.T) {
		mkdir(t, backend, "emptydir")

		if err := backend.Remove("emptydir"); err != nil {
			t.Fatalf("Remove(emptydir): got error %v, want nil", err)
		}
		expectMissing(t, backend, "emptydir")
	})

	run(t, config, "RemoveNonEmptyDirectory", func(t *testing.T) {
		mkdir(t, backend, "fulldir")
		writeFile(t, backend, "fulldir/child.txt", "x")

		err := backend.Remove("fulldir")
		expectCode(t, backend, "Remove(fulldir)", err, errors.CodeDirectoryNotEmpty)
	})

	run(t, config, "RemoveMissing", func(t *testing.T) {
		err := backend.Remove("never-existed")
		expectCode(t, backend, "Remove(never-existed)", err, errors.CodeNotFound)
	})

	run(t, config, "RemoveSymlinkKeepsTarget", func(t *testing.T) {
		writeFile(t, backend, "kept.txt", "x")
		symlink(t, backend, "kept.txt", "pointer")

		if err := backend.Remove("pointer"); err != nil {
			t.Fatalf("Remove(pointer): got error %v, want nil", err)
		}
		expectMissing(t, backend, "pointer")
		if _, err := backend.Stat("kept.txt"); err != nil {
			t.Errorf("Stat(kept.txt) after removing link: got error %v, want nil", err)
		}
	})

	run(t, config, "RenameFile", func(t *testing.T) {
		writeFile(t, backend, "before.txt", "moved")

		if err := backend.Rename("before.txt", "after.txt"); err != nil {
			t.Fatalf("Rename(before.txt, after.txt): got error %v, want nil", err)
		}
		expectMissing(t, backend, "before.txt")
		data, err := content(t, backend).ReadFile("after.txt")
		if err != nil || string(data) != "moved" {
			t.Errorf("ReadFile(after.txt) = %q, %v; want %q, nil", data, err, "moved")
		}
	})

	run(t, config, "RenameReplacesFile", func(t *testing.T) {
		writeFile(t, backend, "winner.txt", "new")
		writeFile(t, backend, "loser.txt", "old")

		if err := backend.Rename("winner.txt", "loser.txt"); err != nil {
			t.Fatalf("Rename(winner.txt, loser.txt): got error %v, want nil", err)
		}
		data, _ := content(t, backend).ReadFile("loser.txt")
		if string(data) != "new" {
			t.Errorf("ReadFile(loser.txt) = %q, want %q", data, "new")
		}
	})

	run(t, config, "RenameDirectory", func(t *testing.T) {
		mkdir(t, backend, "tree")
		mkdir(t, backend, "tree/branch")
		writeFile(t, backend, "tree/branch/leaf.txt", "leaf")
		writeFile(t, backend, "tree2", "sibling sharing a prefix")

		if err := backend.Rename("tree", "moved-tree"); err != nil {
			t.Fatalf("Rename(tree, moved-tree): got error %v, want nil", err)
		}
		expectMissing(t, backend, "tree")
		data, err := content(t, backend).ReadFile("moved-tree/branch/leaf.txt")
		if err != nil || string(data) != "leaf" {
			t.Errorf("ReadFile(moved-tree/branch/leaf.txt) = %q, %v; want %q, nil", data, err, "leaf")
		}
		if _, err := backend.Stat("tree2"); err != nil {
			t.Errorf("Stat(tree2): sibling was disturbed by rename: %v", err)
		}
	})

	run(t, config, "RenameMissingParent", func(t *testing.T) {
		writeFile(t, backend, "stay.txt", "x")

		err := backend.Rename("stay.txt", "absent-dir/stay.txt")
		expectCode(t, backend, "Rename(stay.txt, absent-dir/stay.txt)", err, errors.CodeNotFound)
	})

	run(t, config, "SameFile", func(t *testing.T) {
		writeFile(t, backend, "one.txt", "1")
		writeFile(t, backend, "two.txt", "2")
		symlink(t, backend, "one.txt", "one-link")

		cases := []struct {
			a, b string
			want bool
		}{
			{"one.txt", "./one.txt", true},
			{"one.txt", "one-link", true},
			{"one.txt", "two.txt", false},
		}
		for _, c := range cases {
			got, err := backend.SameFile(c.a, c.b)
			if err != nil {
				t.Errorf("SameFile(%s, %s): got error %v, want nil", c.a, c.b, err)
				continue
			}
			if got != c.want {
				t.Errorf("SameFile(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
			}
		}

		_, err := backend.SameFile("one.txt", "missing")
		expectCode(t, backend, "SameFile(one.txt, missing)", err, errors.CodeNotFound)
	})
}
