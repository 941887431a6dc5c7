package tree

import (
	stderrors "errors"
	"io/fs"
	"syscall"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/fs/core"
)

// Classify maps a host filesystem error onto a platform error code with
// the operation and path attached. Errors that already carry a code pass
// through unchanged.
func Classify(err error, op, p string) error {
	return classify(err, op, p)
}

// classify maps a host filesystem error onto a platform error code and
// attaches the operation and path. Errors that already carry a code pass
// through unchanged. Returns nil if err is nil.
func classify(err error, op, p string) error {
	if err == nil {
		return nil
	}

	var platformErr errors.PlatformError
	if stderrors.As(err, &platformErr) {
		return err
	}

	code := errors.CodeIO
	message := op + " failed"
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = errors.CodeNotFound
		message = "no such file or directory"
	case stderrors.Is(err, fs.ErrExist):
		code = errors.CodeAlreadyExists
		message = "path already exists"
	case stderrors.Is(err, fs.ErrPermission):
		code = errors.CodePermission
		message = "permission denied"
	case stderrors.Is(err, core.ErrNotDir), stderrors.Is(err, syscall.ENOTDIR):
		code = errors.CodeNotDirectory
		message = "not a directory"
	}

	return errors.WrapWithContext(err, code, message, makeContext(op, p))
}

// makeContext builds the context map attached to engine errors.
func makeContext(op, p string) map[string]interface{} {
	return map[string]interface{}{
		"operation": op,
		"path":      p,
	}
}

func notFound(op, p string) error {
	return errors.WithContextMap(
		errors.Newf(errors.CodeNotFound, "directory %q does not exist", p),
		makeContext(op, p),
	)
}

func alreadyExists(op, p string) error {
	return errors.WithContextMap(
		errors.Newf(errors.CodeAlreadyExists, "%q already exists", p),
		makeContext(op, p),
	)
}

func invalidArgument(op, format string, args ...interface{}) error {
	return errors.WithContext(errors.Newf(errors.CodeInvalidArgument, format, args...), "operation", op)
}

// ignore returns nil when the outermost code of err is one of codes.
func ignore(err error, codes ...errors.ErrorCode) error {
	if err == nil {
		return nil
	}
	code := errors.GetCode(err)
	for _, c := range codes {
		if code == c {
			return nil
		}
	}
	return err
}
