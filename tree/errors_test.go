package tree

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "stat", Path: "x", Err: fs.ErrNotExist}, errors.CodeNotFound},
		{"exist", fs.ErrExist, errors.CodeAlreadyExists},
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: syscall.EACCES}, errors.CodePermission},
		{"not dir", &fs.PathError{Op: "readdir", Path: "x", Err: core.ErrNotDir}, errors.CodeNotDirectory},
		{"enotdir", syscall.ENOTDIR, errors.CodeNotDirectory},
		{"other", stderrors.New("disk on fire"), errors.CodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err, "op", "some/path")
			assert.Equal(t, tt.want, errors.GetCode(err))
			assert.True(t, stderrors.Is(err, tt.err), "cause must stay reachable")
		})
	}
}

func TestClassify_KeepsPlatformErrors(t *testing.T) {
	original := errors.New(errors.CodePermission, "denied")
	wrapped := fmt.Errorf("outer: %w", original)

	assert.Same(t, original, classify(original, "op", "p"))
	assert.Equal(t, wrapped, classify(wrapped, "op", "p"))
	assert.Nil(t, classify(nil, "op", "p"))
}

func TestClassify_Context(t *testing.T) {
	err := classify(fs.ErrNotExist, "read", "a/b")
	ctx := errorContext(t, err)
	assert.Equal(t, "read", ctx["operation"])
	assert.Equal(t, "a/b", ctx["path"])
}

func TestIgnore(t *testing.T) {
	notFound := errors.New(errors.CodeNotFound, "gone")
	denied := errors.New(errors.CodePermission, "denied")

	assert.NoError(t, ignore(nil, errors.CodeNotFound))
	assert.NoError(t, ignore(notFound, errors.CodeNotFound))
	assert.Equal(t, denied, ignore(denied, errors.CodeNotFound))
	assert.Equal(t, notFound, ignore(notFound))
}

func TestClassification(t *testing.T) {
	assert.True(t, errors.IsRetryable(classify(stderrors.New("flaky"), "read", "p")))
	assert.False(t, errors.IsRetryable(classify(fs.ErrNotExist, "read", "p")))
}
