package copier

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnoredNames are entry names never copied: the reserved scripts
// folder plus version-control and dependency metadata.
var DefaultIgnoredNames = []string{"scripts", ".git", "node_modules"}

// IgnoreSet decides which source entries are skipped during a copy. Names
// match an entry's base name exactly; patterns are doublestar globs matched
// against the slash path relative to the source root.
type IgnoreSet struct {
	names    map[string]bool
	patterns []string
}

// NewIgnoreSet builds an IgnoreSet. Invalid patterns are rejected.
func NewIgnoreSet(names, patterns []string) (*IgnoreSet, error) {
	s := &IgnoreSet{names: make(map[string]bool, len(names))}
	for _, n := range names {
		s.names[n] = true
	}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = strings.ReplaceAll(p, `\`, "/")
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
		s.patterns = append(s.patterns, p)
	}
	return s, nil
}

// DefaultIgnoreSet returns an IgnoreSet holding DefaultIgnoredNames only.
func DefaultIgnoreSet() *IgnoreSet {
	s, _ := NewIgnoreSet(DefaultIgnoredNames, nil)
	return s
}

// Match reports whether the entry at rel should be skipped.
func (s *IgnoreSet) Match(rel string) bool {
	if s == nil {
		return false
	}
	if s.names[path.Base(rel)] {
		return true
	}
	for _, p := range s.patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Patterns returns the glob patterns in the set.
func (s *IgnoreSet) Patterns() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.patterns...)
}
