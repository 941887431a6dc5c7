package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/xaviervia/fast/fs/core"
)

// TestWriteFS tests WriteFile, AppendFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	t.Run("WriteFileTruncates", func(t *testing.T) {
		mustWrite(t, filesystem, "write.txt", []byte("a much longer first version"))
		if err := filesystem.WriteFile("write.txt", []byte("short"), 0o644); err != nil {
			t.Fatalf("WriteFile(write.txt): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "write.txt", "short")
	})

	t.Run("AppendFileCreates", func(t *testing.T) {
		if err := filesystem.AppendFile("append.txt", []byte("one"), 0o644); err != nil {
			t.Fatalf("AppendFile(append.txt): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "append.txt", "one")
	})

	t.Run("AppendFileKeepsContent", func(t *testing.T) {
		mustWrite(t, filesystem, "keep.txt", []byte("first"))
		if err := filesystem.AppendFile("keep.txt", []byte(" second"), 0o644); err != nil {
			t.Fatalf("AppendFile(keep.txt): got error %v, want nil", err)
		}
		if err := filesystem.AppendFile("keep.txt", nil, 0o644); err != nil {
			t.Fatalf("AppendFile(keep.txt, nil): got error %v, want nil", err)
		}
		assertContent(t, filesystem, "keep.txt", "first second")
	})

	t.Run("Mkdir", func(t *testing.T) {
		if err := filesystem.Mkdir("single", 0o755); err != nil {
			t.Fatalf("Mkdir(single): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("single")
		if err != nil || !info.IsDir() {
			t.Fatalf("Stat(single): want directory, got %v, %v", info, err)
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		if err := filesystem.MkdirAll("existing", 0o755); err != nil {
			t.Fatalf("MkdirAll(existing): setup failed: %v", err)
		}
		err := filesystem.Mkdir("existing", 0o755)
		if !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(existing): got error %v, want fs.ErrExist", err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		err := filesystem.Mkdir("nope/child", 0o755)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(nope/child): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("WriteFileMissingParent", func(t *testing.T) {
		err := filesystem.WriteFile("absent/file.txt", []byte("x"), 0o644)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("WriteFile(absent/file.txt): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("MkdirAllThroughFile", func(t *testing.T) {
		mustWrite(t, filesystem, "blocker", []byte("x"))
		if err := filesystem.MkdirAll("blocker/a/b", 0o755); err == nil {
			t.Error("MkdirAll(blocker/a/b): got nil, want error")
		}
		if ok, _ := filesystem.Exists("blocker/a"); ok {
			t.Error("MkdirAll(blocker/a/b): created entries below a file")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Fatalf("MkdirAll(x/y/z): got error %v, want nil", err)
		}
		if err := filesystem.MkdirAll("x/y/z", 0o755); err != nil {
			t.Errorf("MkdirAll(x/y/z) again: got error %v, want nil", err)
		}
		for _, dir := range []string{"x", "x/y", "x/y/z"} {
			info, err := filesystem.Stat(dir)
			if err != nil || !info.IsDir() {
				t.Errorf("Stat(%s): want directory, got %v, %v", dir, info, err)
			}
		}
	})
}

func assertContent(t *testing.T, filesystem core.FS, name, want string) {
	t.Helper()
	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s): got error %v, want nil", name, err)
	}
	if string(data) != want {
		t.Errorf("ReadFile(%s) = %q, want %q", name, data, want)
	}
}
