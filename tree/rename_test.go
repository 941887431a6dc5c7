package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
)

func TestRename_MovesContentSet(t *testing.T) {
	for name, filesystem := range providers(t) {
		t.Run(name, func(t *testing.T) {
			m := New(filesystem)
			require.NoError(t, m.Materialize("a", sampleTree()))
			before := mustSnapshot(t, m, "a")

			require.NoError(t, m.Rename("a", "b"))

			assertMissing(t, m, "a")
			assert.Equal(t, before, mustSnapshot(t, m, "b"))
		})
	}
}

func TestRename_Errors(t *testing.T) {
	m := newMemoryMutator(t, Node{
		"a":    Node{"f": Leaf("x")},
		"b":    Node{},
		"file": Leaf("x"),
	})

	assertCode(t, m.Rename("missing", "c"), errors.CodeNotFound)
	assertCode(t, m.Rename("a", "b"), errors.CodeAlreadyExists)
	assertCode(t, m.Rename("a", "file"), errors.CodeAlreadyExists)
	assertCode(t, m.Rename("a", "a/inside"), errors.CodeInvalidArgument)
	assertCode(t, m.Rename("a", "a"), errors.CodeInvalidArgument)

	// Nothing moved.
	assert.Equal(t, Node{"f": Leaf("x")}, mustSnapshot(t, m, "a"))
}

func TestRenameForce_ReplacesTarget(t *testing.T) {
	m := newMemoryMutator(t, Node{
		"a":    Node{"f": Leaf("new")},
		"b":    Node{"old": Leaf("old"), "nested": Node{"x": Leaf("x")}},
		"c":    Node{"g": Leaf("g")},
		"file": Leaf("x"),
	})

	require.NoError(t, m.RenameForce("a", "b"))
	assertMissing(t, m, "a")
	assert.Equal(t, Node{"f": Leaf("new")}, mustSnapshot(t, m, "b"))

	require.NoError(t, m.RenameForce("c", "file"))
	assert.Equal(t, Node{"g": Leaf("g")}, mustSnapshot(t, m, "file"))

	require.NoError(t, m.RenameForce("b", "fresh"))
	assert.Equal(t, Node{"f": Leaf("new")}, mustSnapshot(t, m, "fresh"))
}

func TestRenameForce_StillRequiresSource(t *testing.T) {
	m := newMemoryMutator(t, Node{"b": Node{"keep": Leaf("x")}})

	assertCode(t, m.RenameForce("missing", "b"), errors.CodeNotFound)
	assert.Equal(t, Node{"keep": Leaf("x")}, mustSnapshot(t, m, "b"), "target survives a failed precondition")
}
