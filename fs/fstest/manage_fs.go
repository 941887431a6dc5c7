package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/xaviervia/fast/fs/core"
)

// TestManageFS tests Remove and Rename.
func TestManageFS(t *testing.T, filesystem core.FS) {
	t.Run("RemoveFile", func(t *testing.T) {
		mustWrite(t, filesystem, "remove.txt", []byte("x"))
		if err := filesystem.Remove("remove.txt"); err != nil {
			t.Fatalf("Remove(remove.txt): got error %v, want nil", err)
		}
		assertMissing(t, filesystem, "remove.txt")
	})

	t.Run("RemoveEmptyDir", func(t *testing.T) {
		if err := filesystem.MkdirAll("empty", 0o755); err != nil {
			t.Fatalf("MkdirAll(empty): setup failed: %v", err)
		}
		if err := filesystem.Remove("empty"); err != nil {
			t.Fatalf("Remove(empty): got error %v, want nil", err)
		}
		assertMissing(t, filesystem, "empty")
	})

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		mustWrite(t, filesystem, "full/child.txt", []byte("x"))
		if err := filesystem.Remove("full"); err == nil {
			t.Error("Remove(full): got nil, want error for non-empty directory")
		}
		if ok, _ := filesystem.Exists("full/child.txt"); !ok {
			t.Error("Remove(full): child should survive a refused removal")
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		err := filesystem.Remove("ghost.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(ghost.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RenameFile", func(t *testing.T) {
		mustWrite(t, filesystem, "old.txt", []byte("payload"))
		if err := filesystem.MkdirAll("moved", 0o755); err != nil {
			t.Fatalf("MkdirAll(moved): setup failed: %v", err)
		}
		if err := filesystem.Rename("old.txt", "moved/new.txt"); err != nil {
			t.Fatalf("Rename(old.txt, moved/new.txt): got error %v, want nil", err)
		}
		assertMissing(t, filesystem, "old.txt")
		assertContent(t, filesystem, "moved/new.txt", "payload")
	})

	t.Run("RenameLeavesPrefixSiblings", func(t *testing.T) {
		mustWrite(t, filesystem, "pre/inner.txt", []byte("inner"))
		mustWrite(t, filesystem, "prefix.txt", []byte("sibling"))
		if err := filesystem.Rename("pre", "post"); err != nil {
			t.Fatalf("Rename(pre, post): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "post/inner.txt", "inner")
		assertContent(t, filesystem, "prefix.txt", "sibling")
		assertMissing(t, filesystem, "pre")
	})

	t.Run("RenameOverwritesFile", func(t *testing.T) {
		mustWrite(t, filesystem, "src.txt", []byte("new"))
		mustWrite(t, filesystem, "dst.txt", []byte("old"))
		if err := filesystem.Rename("src.txt", "dst.txt"); err != nil {
			t.Fatalf("Rename(src.txt, dst.txt): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "dst.txt", "new")
		assertMissing(t, filesystem, "src.txt")
	})
}

func assertMissing(t *testing.T, filesystem core.FS, name string) {
	t.Helper()
	ok, err := filesystem.Exists(name)
	if err != nil {
		t.Fatalf("Exists(%s): got error %v, want nil", name, err)
	}
	if ok {
		t.Errorf("Exists(%s) = true, want false", name)
	}
}
