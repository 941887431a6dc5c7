// Package fstest provides a conformance test suite for core.FS providers.
//
// The tree engine relies on a handful of guarantees beyond the method
// signatures: sorted listings, Mkdir refusing existing paths and missing
// parents, Remove refusing non-empty directories, AppendFile preserving
// content. The suite checks each of them so a new provider can be trusted
// before any recursive operation runs on it.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/xaviervia/fast/fs/core"
)

// FSTestConfig configures the suite.
type FSTestConfig struct {
	// SkipTests lists test groups to skip (e.g. "WalkFS").
	SkipTests []string
}

// TestSuite runs all conformance tests. newFS must return a fresh, empty
// filesystem on every call.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs the conformance tests honoring config.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"ManageFS", TestManageFS},
		{"WalkFS", TestWalkFS},
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			if config.skips(group.name) {
				t.Skip("Skipped by provider configuration")
			}
			group.run(t, newFS())
		})
	}
}

func (c FSTestConfig) skips(name string) bool {
	for _, skip := range c.SkipTests {
		if skip == name {
			return true
		}
	}
	return false
}

// mustWrite creates name (and its parents) with data or fails the test.
func mustWrite(t *testing.T, filesystem core.FS, name string, data []byte) {
	t.Helper()
	if dir := parentOf(name); dir != "" {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("MkdirAll(%s): setup failed: %v", dir, err)
		}
	}
	if err := filesystem.WriteFile(name, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", name, err)
	}
}

func parentOf(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[:i]
		}
	}
	return ""
}
