package fast

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/xaviervia/fast/errors"
)

// Entries is a list of entry names that can be narrowed with filters. Each
// filter returns a new list and keeps the original order.
type Entries []string

var extensionPattern = regexp.MustCompile(`\.\w+?$`)

// Extension keeps the names ending in ext. The dot is not implied: use
// ".go" to match Go sources and "go" to match any name ending in "go".
func (e Entries) Extension(ext string) Entries {
	return e.keep(func(name string) bool {
		return strings.HasSuffix(name, ext)
	})
}

// StripExtension removes the last extension of every name.
func (e Entries) StripExtension() Entries {
	out := make(Entries, len(e))
	for i, name := range e {
		out[i] = extensionPattern.ReplaceAllString(name, "")
	}
	return out
}

// Match keeps the names matched by re.
func (e Entries) Match(re *regexp.Regexp) Entries {
	return e.keep(re.MatchString)
}

// Glob keeps the names matching the doublestar pattern.
func (e Entries) Glob(pattern string) (Entries, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "invalid glob pattern %q", pattern),
			"operation", "glob",
		)
	}
	return e.keep(func(name string) bool {
		ok, _ := doublestar.Match(pattern, name)
		return ok
	}), nil
}

// Symbols returns every name without its extension as a Label.
func (e Entries) Symbols() []Label {
	stripped := e.StripExtension()
	labels := make([]Label, len(stripped))
	for i, name := range stripped {
		labels[i] = Label(name)
	}
	return labels
}

func (e Entries) keep(match func(string) bool) Entries {
	out := Entries{}
	for _, name := range e {
		if match(name) {
			out = append(out, name)
		}
	}
	return out
}
