package fast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/billy"
)

func TestNormalize(t *testing.T) {
	mem := WithFilesystem(billy.NewMemory())
	var nilDir *Dir

	tests := []struct {
		name    string
		input   PathLike
		want    string
		wantSet bool
		code    errors.ErrorCode
	}{
		{"text", Text("a/b"), "a/b", true, ""},
		{"label", Label("demo"), "demo", true, ""},
		{"dir with path", DirAt("d", mem), "d", true, ""},
		{"dir without path", NewDir(mem), "", false, ""},
		{"file with path", FileAt("f.txt", mem), "f.txt", true, ""},
		{"file without path", NewFile(mem), "", false, ""},
		{"nil", nil, "", false, errors.CodeInvalidArgument},
		{"nil dir", nilDir, "", false, errors.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, set, err := Normalize(tt.input)
			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, tt.code, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSet, set)
		})
	}
}

func TestNormalize_UnsetHandleArgument(t *testing.T) {
	mem := WithFilesystem(billy.NewMemory())
	d := DirAt("x", mem)

	_, err := d.Create(NewDir(mem))
	assertCode(t, err, errors.CodeInvalidArgument)
}

func assertCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, errors.GetCode(err), "unexpected error: %v", err)
}
