// Package pathspec validates the category paths accepted by --what. A path is
// a slash-separated relative path whose first segment names one of the fixed
// template categories (skills, rules, commands, agents).
package pathspec

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Category names, in default install order.
const (
	CategorySkills   = "skills"
	CategoryRules    = "rules"
	CategoryCommands = "commands"
	CategoryAgents   = "agents"
)

// Reserved is the folder name that is never distributed.
const Reserved = "scripts"

var (
	// ErrTraversal is returned for paths containing a ".." segment.
	ErrTraversal = errors.New(".. is not allowed")
	// ErrReserved is returned for paths naming a reserved folder.
	ErrReserved = errors.New("reserved folder")
	// ErrUnknownCategory is returned when the first segment is not a category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrMalformed is returned for empty paths and "." segments.
	ErrMalformed = errors.New("malformed path")
)

// Rules holds the allow-list of categories and the deny-list of segments.
type Rules struct {
	Categories []string
	Reserved   []string
}

// DefaultRules returns the four categories and the "scripts" deny-list.
func DefaultRules() Rules {
	return Rules{
		Categories: []string{CategorySkills, CategoryRules, CategoryCommands, CategoryAgents},
		Reserved:   []string{Reserved},
	}
}

// Path is a validated category path.
type Path struct {
	Category string
	Segments []string
}

// String returns the slash form, e.g. "skills/html".
func (p Path) String() string {
	return strings.Join(p.Segments, "/")
}

// FromSlash returns the path in OS separator form.
func (p Path) FromSlash() string {
	return filepath.FromSlash(p.String())
}

// Normalize converts backslashes to slashes, strips leading and trailing
// slashes and collapses repeated separators.
func Normalize(raw string) string {
	p := strings.ReplaceAll(strings.TrimSpace(raw), `\`, "/")
	parts := strings.Split(p, "/")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, "/")
}

// Validate normalizes raw and checks it against the rules.
func (r Rules) Validate(raw string) (Path, error) {
	p := Normalize(raw)
	if p == "" {
		return Path{}, fmt.Errorf("invalid path %q: %w", raw, ErrMalformed)
	}

	segments := strings.Split(p, "/")

	for _, seg := range segments {
		if seg == ".." {
			return Path{}, fmt.Errorf("invalid path %s: %w", p, ErrTraversal)
		}
	}

	for _, seg := range segments {
		if slices.Contains(r.Reserved, seg) {
			return Path{}, fmt.Errorf("cannot install %q folder (%s): %w", seg, p, ErrReserved)
		}
	}

	if !slices.Contains(r.Categories, segments[0]) {
		return Path{}, fmt.Errorf("invalid path %s, must start with one of: %s: %w",
			p, strings.Join(r.Categories, ", "), ErrUnknownCategory)
	}

	for _, seg := range segments {
		if seg == "." {
			return Path{}, fmt.Errorf("invalid path %s: %w", p, ErrMalformed)
		}
	}

	return Path{Category: segments[0], Segments: segments}, nil
}

// ValidateAll validates every item, failing on the first invalid one.
func (r Rules) ValidateAll(items []string) ([]Path, error) {
	paths := make([]Path, 0, len(items))
	for _, item := range items {
		p, err := r.Validate(item)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
