package fast

import (
	"github.com/xaviervia/fast/errors"
)

// PathLike is anything that can name a filesystem location: Text, Label,
// *Dir or *File.
type PathLike interface {
	pathLike()
}

// Text is a raw path.
type Text string

// Label is a symbolic name used as a path, typically an entry name
// without extension as returned by Entries.Symbols.
type Label string

func (Text) pathLike()  {}
func (Label) pathLike() {}
func (*Dir) pathLike()  {}
func (*File) pathLike() {}

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// Normalize reduces p to a plain path. For handles the result is the
// handle's own path, and set is false when the handle has none. Normalize
// never touches the filesystem.
func Normalize(p PathLike) (path string, set bool, err error) {
	switch v := p.(type) {
	case Text:
		return string(v), true, nil
	case Label:
		return string(v), true, nil
	case *Dir:
		if v == nil {
			break
		}
		path, set = v.Path()
		return path, set, nil
	case *File:
		if v == nil {
			break
		}
		path, set = v.Path()
		return path, set, nil
	}
	return "", false, errors.New(errors.CodeInvalidArgument, "path argument is required")
}

// normalizeAll normalizes every argument, failing on handles without a
// path.
func normalizeAll(op string, args []PathLike) ([]string, error) {
	paths := make([]string, 0, len(args))
	for i, arg := range args {
		p, set, err := Normalize(arg)
		if err != nil {
			return nil, errors.WithContext(err, "operation", op)
		}
		if !set {
			return nil, errors.WithContextMap(
				errors.Newf(errors.CodeInvalidArgument, "argument %d has no path set", i),
				map[string]interface{}{"operation": op},
			)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func noArguments(op string) error {
	return errors.WithContext(
		errors.New(errors.CodeInvalidArgument, "no arguments, at least one required"),
		"operation", op,
	)
}

func tooManyArguments(op string, max, got int) error {
	return errors.WithContext(
		errors.Newf(errors.CodeInvalidArgument, "expected at most %d arguments, got %d", max, got),
		"operation", op,
	)
}
