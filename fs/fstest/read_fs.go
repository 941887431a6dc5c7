package fstest

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/xaviervia/fast/fs/core"
)

// TestReadFS tests Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	content := []byte("test file content")
	mustWrite(t, filesystem, "testdir/testfile.txt", content)
	mustWrite(t, filesystem, "testdir/b.txt", nil)
	if err := filesystem.MkdirAll("testdir/a", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/a): setup failed: %v", err)
	}

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat(testdir/testfile.txt): got error %v, want nil", err)
		}
		if info.IsDir() {
			t.Error("Stat(testdir/testfile.txt): IsDir() = true, want false")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(testdir/testfile.txt): Size() = %d, want %d", info.Size(), len(content))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat(testdir): got error %v, want nil", err)
		}
		if !info.IsDir() {
			t.Error("Stat(testdir): IsDir() = false, want true")
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		_, err := filesystem.Stat("missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDirSorted", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir(testdir): got error %v, want nil", err)
		}
		want := []string{"a", "b.txt", "testfile.txt"}
		if len(entries) != len(want) {
			t.Fatalf("ReadDir(testdir): got %d entries, want %d", len(entries), len(want))
		}
		for i, entry := range entries {
			if entry.Name() != want[i] {
				t.Errorf("ReadDir(testdir)[%d] = %q, want %q", i, entry.Name(), want[i])
			}
		}
		if !entries[0].IsDir() {
			t.Error("ReadDir(testdir): entry a should be a directory")
		}
	})

	t.Run("ReadDirNotExist", func(t *testing.T) {
		_, err := filesystem.ReadDir("missing")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile(testdir/testfile.txt): got error %v, want nil", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("ReadFile(testdir/testfile.txt) = %q, want %q", data, content)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"testdir":              true,
			"testdir/testfile.txt": true,
			"missing.txt":          false,
			"testdir/missing":      false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%s): got error %v, want nil", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%s) = %v, want %v", name, got, want)
			}
		}
	})
}
