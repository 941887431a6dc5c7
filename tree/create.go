package tree

import (
	"strings"

	"github.com/xaviervia/fast/errors"
	"github.com/xaviervia/fast/internal/logging"
)

// Create creates the directory p along with every missing parent. It fails
// with CodeAlreadyExists if p already exists.
func (m *Mutator) Create(p string) (err error) {
	defer m.track(logging.OpCreate, &err, "path", p)()

	if p == "" {
		return invalidArgument("create", "empty path")
	}
	ok, err := m.exists(p)
	if err != nil {
		return err
	}
	if ok {
		return alreadyExists("create", p)
	}
	return m.mkdirs(p)
}

// CreateForce is Create without the existence check. Existing directories
// along p are left alone.
func (m *Mutator) CreateForce(p string) (err error) {
	defer m.track(logging.OpCreate, &err, "path", p, "force", true)()

	if p == "" {
		return invalidArgument("create", "empty path")
	}
	return ignore(m.mkdirs(p), errors.CodeAlreadyExists)
}

// mkdirs walks p segment by segment and creates each missing prefix with a
// single-level mkdir. A prefix occupied by a file fails with
// CodeNotDirectory.
func (m *Mutator) mkdirs(p string) error {
	prefix := ""
	if strings.HasPrefix(p, "/") {
		prefix = "/"
	}

	for _, segment := range strings.Split(p, "/") {
		if segment == "" {
			continue
		}
		switch prefix {
		case "", "/":
			prefix += segment
		default:
			prefix += "/" + segment
		}

		info, err := m.fs.Stat(prefix)
		if err == nil {
			if !info.IsDir() {
				return errors.WithContextMap(
					errors.Newf(errors.CodeNotDirectory, "%q is not a directory", prefix),
					makeContext("create", prefix),
				)
			}
			continue
		}
		if statErr := classify(err, "create", prefix); errors.GetCode(statErr) != errors.CodeNotFound {
			return statErr
		}
		if err := m.fs.Mkdir(prefix, dirPerm); err != nil {
			return classify(err, "create", prefix)
		}
	}
	return nil
}
