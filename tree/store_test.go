package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/billy"
)

func TestFileStore(t *testing.T) {
	for name, filesystem := range providers(t) {
		t.Run(name, func(t *testing.T) {
			store := NewFileStore(filesystem)

			require.NoError(t, store.WriteAll("a/b/file.txt", []byte("one")))
			require.NoError(t, store.Append("a/b/file.txt", []byte(" two")))
			data, err := store.ReadAll("a/b/file.txt")
			require.NoError(t, err)
			assert.Equal(t, "one two", string(data))

			ok, err := store.Exists("a/b/file.txt")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = store.Exists("a/b")
			require.NoError(t, err)
			assert.False(t, ok, "directories are not files")

			require.NoError(t, store.Touch("a/b/file.txt"))
			data, err = store.ReadAll("a/b/file.txt")
			require.NoError(t, err)
			assert.Equal(t, "one two", string(data), "touch never truncates")

			require.NoError(t, store.Touch("x/y/new.txt"))
			data, err = store.ReadAll("x/y/new.txt")
			require.NoError(t, err)
			assert.Empty(t, data)

			require.NoError(t, store.Append("c/appended.txt", []byte("fresh")))
			data, err = store.ReadAll("c/appended.txt")
			require.NoError(t, err)
			assert.Equal(t, "fresh", string(data))

			require.NoError(t, store.Delete("a/b/file.txt"))
			ok, err = store.Exists("a/b/file.txt")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileStore_Errors(t *testing.T) {
	store := NewFileStore(billy.NewMemory())
	require.NoError(t, store.WriteAll("dir/f", nil))

	_, err := store.ReadAll("missing")
	assertCode(t, err, errors.CodeNotFound)
	assertCode(t, store.Delete("missing"), errors.CodeNotFound)
	assertCode(t, store.Delete("dir"), errors.CodeInvalidArgument)
	assertCode(t, store.WriteAll("dir/f/below", nil), errors.CodeNotDirectory)

	ok, err := store.Exists("dir/f/below")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLister(t *testing.T) {
	for name, filesystem := range providers(t) {
		t.Run(name, func(t *testing.T) {
			m := New(filesystem)
			require.NoError(t, m.Materialize("d", Node{
				"zeta.txt": Leaf(""),
				"alpha":    Node{},
				"beta.md":  Leaf(""),
				"gamma":    Node{"inner": Leaf("")},
			}))
			lister := NewLister(filesystem)

			all, err := lister.List("d")
			require.NoError(t, err)
			assert.Equal(t, []string{"alpha", "beta.md", "gamma", "zeta.txt"}, all)

			files, err := lister.Files("d")
			require.NoError(t, err)
			assert.Equal(t, []string{"beta.md", "zeta.txt"}, files)

			dirs, err := lister.Dirs("d")
			require.NoError(t, err)
			assert.Equal(t, []string{"alpha", "gamma"}, dirs)
		})
	}
}

func TestLister_Errors(t *testing.T) {
	m := newMemoryMutator(t, Node{"f": Leaf("x")})

	_, err := m.Lister().List("missing")
	assertCode(t, err, errors.CodeNotFound)
	_, err = m.Lister().Files("f")
	assertCode(t, err, errors.CodeNotDirectory)
}

func TestLister_FilesAreRegular(t *testing.T) {
	root := t.TempDir()
	m := New(billy.NewLocal(billy.WithRoot(root)))
	require.NoError(t, m.Materialize("d", Node{"zeta.txt": Leaf("z"), "sub": Node{}}))
	require.NoError(t, os.Symlink("zeta.txt", filepath.Join(root, "d", "link")))

	all, err := m.Lister().List("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"link", "sub", "zeta.txt"}, all)

	files, err := m.Lister().Files("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta.txt"}, files)

	t.Run("rename carries symlinks", func(t *testing.T) {
		require.NoError(t, m.Rename("d", "e"))
		info, err := os.Lstat(filepath.Join(root, "e", "link"))
		require.NoError(t, err)
		assert.Equal(t, os.ModeSymlink, info.Mode().Type())
	})

	t.Run("delete removes symlinks", func(t *testing.T) {
		require.NoError(t, m.Delete("e"))
		assertMissing(t, m, "e")
	})
}
