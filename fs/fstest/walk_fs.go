package fstest

import (
	"io/fs"
	"testing"

	"github.com/xaviervia/fast/fs/core"
)

// TestWalkFS tests Walk ordering, SkipDir handling and path forms.
func TestWalkFS(t *testing.T, filesystem core.FS) {
	mustWrite(t, filesystem, "root/b.txt", []byte("b"))
	mustWrite(t, filesystem, "root/a/deep.txt", []byte("deep"))
	mustWrite(t, filesystem, "root/c/skipped.txt", []byte("c"))

	t.Run("LexicalOrder", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk("root", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, p)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(root): got error %v, want nil", err)
		}
		want := []string{"root", "root/a", "root/a/deep.txt", "root/b.txt", "root/c", "root/c/skipped.txt"}
		assertVisited(t, visited, want)
	})

	t.Run("SkipDir", func(t *testing.T) {
		var visited []string
		err := filesystem.Walk("root", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if p == "root/c" {
				return fs.SkipDir
			}
			visited = append(visited, p)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(root): got error %v, want nil", err)
		}
		assertVisited(t, visited, []string{"root", "root/a", "root/a/deep.txt", "root/b.txt"})
	})

	t.Run("MissingRoot", func(t *testing.T) {
		called := false
		_ = filesystem.Walk("nowhere", func(p string, d fs.DirEntry, err error) error {
			called = true
			if err == nil {
				t.Error("Walk(nowhere): walkFn got nil error for missing root")
			}
			return nil
		})
		if !called {
			t.Error("Walk(nowhere): walkFn was not called")
		}
	})
}

func assertVisited(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
