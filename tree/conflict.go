package tree

import (
	"github.com/xaviervia/fast/internal/logging"
)

// ConflictsWith reports whether merging target into current would drop
// content: a name present directly in both directories that is not a
// directory on both sides, or the same condition inside any pair of
// same-named subdirectories. It never mutates the filesystem. Both roots
// must be existing directories.
func (m *Mutator) ConflictsWith(current, target string) (conflict bool, err error) {
	defer m.track(logging.OpConflicts, &err, "current", current, "target", target)()

	if err := m.requireDir("conflicts", current); err != nil {
		return false, err
	}
	if err := m.requireDir("conflicts", target); err != nil {
		return false, err
	}
	return m.conflicts(current, target)
}

func (m *Mutator) conflicts(current, target string) (bool, error) {
	ours, err := m.split(current)
	if err != nil {
		return false, err
	}
	theirs, err := m.split(target)
	if err != nil {
		return false, err
	}
	if intersects(ours.leaves, theirs.leaves) || clashes(ours, theirs) != "" {
		return true, nil
	}

	for _, name := range shared(ours.dirs, theirs.dirs) {
		found, err := m.conflicts(child(current, name), child(target, name))
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}

// clash returns the first path below current whose name is a directory on
// one side and not on the other, or "" when the trees agree.
func (m *Mutator) clash(current, target string) (string, error) {
	ours, err := m.split(current)
	if err != nil {
		return "", err
	}
	theirs, err := m.split(target)
	if err != nil {
		return "", err
	}
	if name := clashes(ours, theirs); name != "" {
		return child(current, name), nil
	}

	for _, name := range shared(ours.dirs, theirs.dirs) {
		p, err := m.clash(child(current, name), child(target, name))
		if err != nil || p != "" {
			return p, err
		}
	}
	return "", nil
}

type listing struct {
	dirs   []string
	leaves []string
}

func (m *Mutator) split(p string) (listing, error) {
	dirs, err := m.lister.Dirs(p)
	if err != nil {
		return listing{}, err
	}
	leaves, err := m.leaves(p)
	if err != nil {
		return listing{}, err
	}
	return listing{dirs: dirs, leaves: leaves}, nil
}

func clashes(ours, theirs listing) string {
	if names := shared(ours.leaves, theirs.dirs); len(names) > 0 {
		return names[0]
	}
	if names := shared(ours.dirs, theirs.leaves); len(names) > 0 {
		return names[0]
	}
	return ""
}

// shared returns the names of b that also appear in a, in the order of b.
func shared(a, b []string) []string {
	set := make(map[string]struct{}, len(a))
	for _, name := range a {
		set[name] = struct{}{}
	}
	var out []string
	for _, name := range b {
		if _, ok := set[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func intersects(a, b []string) bool {
	return len(shared(a, b)) > 0
}
