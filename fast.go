package fast

// OpenDir returns a handle bound to p with its listing cached.
func OpenDir(p PathLike, opts ...Option) (*Dir, error) {
	d := NewDir(opts...)
	if _, err := d.List(p); err != nil {
		return nil, err
	}
	return d, nil
}

// EnsureDir creates p and any missing parents when needed, then returns a
// handle bound to p with its listing cached.
func EnsureDir(p PathLike, opts ...Option) (*Dir, error) {
	d, err := NewDir(opts...).CreateForce(p)
	if err != nil {
		return nil, err
	}
	if _, err := d.List(); err != nil {
		return nil, err
	}
	return d, nil
}

// DirExists reports whether p is an existing directory.
func DirExists(p PathLike, opts ...Option) (bool, error) {
	return NewDir(opts...).Exists(p)
}

// OpenFile returns a handle bound to p with its content loaded.
func OpenFile(p PathLike, opts ...Option) (*File, error) {
	f := NewFile(opts...)
	if _, err := f.Read(p); err != nil {
		return nil, err
	}
	return f, nil
}

// EnsureFile creates p, and any missing parent directories, unless it
// already exists. Existing content is kept.
func EnsureFile(p PathLike, opts ...Option) (*File, error) {
	f := NewFile(opts...)
	if _, err := f.Touch(p); err != nil {
		return nil, err
	}
	return f, nil
}

// FileExists reports whether p is an existing file.
func FileExists(p PathLike, opts ...Option) (bool, error) {
	return NewFile(opts...).Exists(p)
}
