package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrNotDir is returned when a directory operation meets a file.
	ErrNotDir = errors.New("not a directory")

	// ErrDirNotEmpty is returned when Remove meets a directory with children.
	ErrDirNotEmpty = errors.New("directory not empty")
)
