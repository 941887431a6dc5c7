package tree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/billy"
	"github.com/xaviervia/fast/fs/core"
)

// providers returns a fresh memory and local filesystem for table tests.
func providers(t *testing.T) map[string]core.FS {
	t.Helper()
	return map[string]core.FS{
		"memory": billy.NewMemory(),
		"local":  billy.NewLocal(billy.WithRoot(t.TempDir())),
	}
}

func newMemoryMutator(t *testing.T, seed Node) *Mutator {
	t.Helper()
	m := New(billy.NewMemory())
	if seed != nil {
		require.NoError(t, m.Materialize(".", seed))
	}
	return m
}

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errors.GetCode(err), "unexpected error: %v", err)
}

func mustSnapshot(t *testing.T, m *Mutator, root string) Node {
	t.Helper()
	node, err := m.Snapshot(root)
	require.NoError(t, err)
	return node
}

func assertMissing(t *testing.T, m *Mutator, p string) {
	t.Helper()
	ok, err := m.FS().Exists(p)
	require.NoError(t, err)
	require.False(t, ok, "%s should not exist", p)
}

// failingStore injects err for every operation on path fail.
type failingStore struct {
	FileStore
	fail string
	err  error
}

func (s *failingStore) ReadAll(p string) ([]byte, error) {
	if p == s.fail {
		return nil, s.err
	}
	return s.FileStore.ReadAll(p)
}

func (s *failingStore) WriteAll(p string, data []byte) error {
	if p == s.fail {
		return s.err
	}
	return s.FileStore.WriteAll(p, data)
}

func (s *failingStore) Delete(p string) error {
	if p == s.fail {
		return s.err
	}
	return s.FileStore.Delete(p)
}

func permissionDenied(p string) error {
	return errors.WithContext(errors.New(errors.CodePermission, "permission denied"), "path", p)
}

// sampleTree is a small tree with files at several depths.
func sampleTree() Node {
	return Node{
		"a.txt": Leaf("alpha"),
		"sub": Node{
			"b.txt": Leaf("beta"),
			"deep": Node{
				"c.txt": Leaf("gamma"),
			},
		},
		"empty": Node{},
	}
}
