package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/xaviervia/fast/fs/core"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match io/fs,
// directly and through a wrapper.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) {
				t.Errorf("errors.Is(%s, stdlib) = false, want true", tt.name)
			}
			wrapped := fmt.Errorf("wrapped: %w", tt.coreErr)
			if !errors.Is(wrapped, tt.stdlibErr) {
				t.Errorf("errors.Is(wrapped %s, stdlib) = false, want true", tt.name)
			}
		})
	}
}

// TestSentinelErrorsAreDistinct verifies the package sentinels do not alias.
func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		core.ErrNotExist,
		core.ErrExist,
		core.ErrPermission,
		core.ErrNotDir,
		core.ErrDirNotEmpty,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
