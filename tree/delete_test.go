package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/billy"
)

func TestDelete_InverseOfCreate(t *testing.T) {
	for name, filesystem := range providers(t) {
		t.Run(name, func(t *testing.T) {
			m := New(filesystem)
			require.NoError(t, m.Materialize("tree", sampleTree()))

			require.NoError(t, m.Delete("tree"))

			assertMissing(t, m, "tree")
			names, err := m.Lister().List(".")
			require.NoError(t, err)
			assert.Empty(t, names)
		})
	}
}

func TestDelete_InverseOfCreatePath(t *testing.T) {
	m := newMemoryMutator(t, nil)

	require.NoError(t, m.Create("only/nested/dirs"))
	require.NoError(t, m.Delete("only"))
	assertMissing(t, m, "only")
}

func TestDelete_NotFound(t *testing.T) {
	m := newMemoryMutator(t, Node{"file.txt": Leaf("x")})

	assertCode(t, m.Delete("missing"), errors.CodeNotFound)
	assertCode(t, m.Delete("file.txt"), errors.CodeNotFound)

	data, err := m.Files().ReadAll("file.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data), "a file is never deleted by a tree delete")
}

func TestDeleteForce(t *testing.T) {
	m := newMemoryMutator(t, sampleTree())

	require.NoError(t, m.DeleteForce("missing"))
	require.NoError(t, m.DeleteForce("sub"))
	require.NoError(t, m.DeleteForce("sub"))
	assertMissing(t, m, "sub")
}

func TestDeleteForce_PropagatesPermissionErrors(t *testing.T) {
	filesystem := billy.NewMemory()
	base := NewFileStore(filesystem)
	m := New(filesystem, WithFileStore(&failingStore{
		FileStore: base,
		fail:      "sub/deep/c.txt",
		err:       permissionDenied("sub/deep/c.txt"),
	}))
	require.NoError(t, m.Materialize(".", sampleTree()))

	assertCode(t, m.DeleteForce("sub"), errors.CodePermission)
	assertCode(t, m.Delete("sub"), errors.CodePermission)

	// No rollback: the blocked file remains along with its parents.
	ok, err := base.Exists("sub/deep/c.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete_ChildrenBeforeParents(t *testing.T) {
	filesystem := billy.NewMemory()
	var removed []string
	m := New(filesystem, WithFileStore(&recordingStore{FileStore: NewFileStore(filesystem), deleted: &removed}))
	require.NoError(t, m.Materialize(".", sampleTree()))

	require.NoError(t, m.Delete("sub"))
	assert.Equal(t, []string{"sub/deep/c.txt", "sub/b.txt"}, removed)
}

type recordingStore struct {
	FileStore
	deleted *[]string
}

func (s *recordingStore) Delete(p string) error {
	*s.deleted = append(*s.deleted, p)
	return s.FileStore.Delete(p)
}
