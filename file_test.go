package fast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/tree"
)

func TestFile_WriteReadAppend(t *testing.T) {
	mem := memory(t, nil)
	f := NewFile(mem)
	assert.Equal(t, "", f.String())

	p, err := f.Write("hello", Text("deep/dir/greeting.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep/dir/greeting.txt", p)

	_, err = f.Append(", world")
	require.NoError(t, err)
	assert.Equal(t, "hello, world", f.String())

	content, err := FileAt("deep/dir/greeting.txt", mem).Read()
	require.NoError(t, err)
	assert.Equal(t, "hello, world", content)
}

func TestFile_StringIsPathUntilLoaded(t *testing.T) {
	mem := memory(t, tree.Node{"notes.txt": tree.Leaf("content")})
	f := FileAt("notes.txt", mem)
	assert.Equal(t, "notes.txt", f.String())

	_, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "content", f.String())

	ok, err := f.Exists(Text("other.txt"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "other.txt", f.String(), "binding another path drops loaded content")
}

func TestFile_AppendCreates(t *testing.T) {
	mem := memory(t, nil)

	_, err := NewFile(mem).Append("first", Text("log/app.log"))
	require.NoError(t, err)
	_, err = NewFile(mem).Append(" second", Text("log/app.log"))
	require.NoError(t, err)

	content, err := FileAt("log/app.log", mem).Read()
	require.NoError(t, err)
	assert.Equal(t, "first second", content)
}

func TestFile_TouchAndCreate(t *testing.T) {
	mem := memory(t, tree.Node{"existing.txt": tree.Leaf("keep")})

	_, err := NewFile(mem).Touch(Text("existing.txt"))
	require.NoError(t, err)
	content, err := FileAt("existing.txt", mem).Read()
	require.NoError(t, err)
	assert.Equal(t, "keep", content)

	_, err = NewFile(mem).Create(Text("existing.txt"))
	assertCode(t, err, errors.CodeAlreadyExists)

	p, err := NewFile(mem).Create(Text("a/b/new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a/b/new.txt", p)

	_, err = NewFile(mem).CreateForce(Text("a/b/new.txt"))
	require.NoError(t, err)

	ok, err := FileExists(Text("a/b/new.txt"), mem)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFile_Delete(t *testing.T) {
	mem := memory(t, tree.Node{"a.txt": tree.Leaf(""), "b.txt": tree.Leaf(""), "dir": tree.Node{}})

	p, err := FileAt("a.txt", mem).Delete()
	require.NoError(t, err)
	assert.Equal(t, "a.txt", p)

	_, err = FileAt("a.txt", mem).Remove()
	assertCode(t, err, errors.CodeNotFound)

	p, err = NewFile(mem).DeleteForce(Text("a.txt"))
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = NewFile(mem).Unlink(Text("b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b.txt", p)

	_, err = NewFile(mem).DeleteForce(Text("dir"))
	assertCode(t, err, errors.CodeInvalidArgument)
}

func TestFile_ArgumentErrors(t *testing.T) {
	mem := memory(t, nil)
	f := NewFile(mem)

	_, err := f.Read()
	assertCode(t, err, errors.CodeInvalidArgument)
	_, err = f.Read(Text("a"), Text("b"))
	assertCode(t, err, errors.CodeInvalidArgument)
	_, err = f.Expand()
	assertCode(t, err, errors.CodeInvalidArgument)
	_, err = f.ExistAll()
	assertCode(t, err, errors.CodeInvalidArgument)
	_, err = f.Read(Text("missing"))
	assertCode(t, err, errors.CodeNotFound)
}

func TestFile_ExpandAndExistence(t *testing.T) {
	mem := memory(t, tree.Node{"a": tree.Leaf(""), "b": tree.Leaf(""), "d": tree.Node{}})
	f := FileAt("a", mem)

	abs, err := f.Absolute()
	require.NoError(t, err)
	assert.Equal(t, "/a", abs)

	ok, err := f.ExistAll()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.ExistAll(Text("a"), Text("b"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.ExistAll(Text("a"), Text("d"))
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	ok, err = f.ExistAny(Text("x"), Text("b"))
	require.NoError(t, err)
	assert.True(t, ok)
}
