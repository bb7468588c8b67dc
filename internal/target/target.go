// Package target describes the assistant configuration directories aikit can
// install into.
package target

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Name identifies a supported install target.
type Name string

const (
	Claude Name = "claude"
	Cursor Name = "cursor"
)

// Target maps a target name to its directory inside a project.
type Target struct {
	Name Name
	// Dir is the configuration directory relative to the project root.
	Dir string
	// ListCommands enables the "Available commands" summary after install.
	ListCommands bool
}

// registry maps each target to its project directory.
var registry = map[Name]Target{
	Claude: {Name: Claude, Dir: ".claude", ListCommands: true},
	Cursor: {Name: Cursor, Dir: ".cursor"},
}

// All returns every target in display order.
func All() []Target {
	return []Target{registry[Claude], registry[Cursor]}
}

// Names returns the target names in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = string(t.Name)
	}
	return names
}

// Parse converts s to a Target, returning false if it is not supported.
// Matching is exact: "Claude" and ".claude" are rejected.
func Parse(s string) (Target, bool) {
	t, ok := registry[Name(s)]
	return t, ok
}

// Resolve picks the target from a positional argument and a --target flag
// value. Either may be empty; when both are set they must agree.
func Resolve(positional, flag string) (Target, error) {
	name := positional
	switch {
	case positional == "" && flag == "":
		return Target{}, fmt.Errorf("no target specified, expected one of: %s", strings.Join(Names(), ", "))
	case positional == "":
		name = flag
	case flag != "" && flag != positional:
		return Target{}, fmt.Errorf("conflicting targets %q and --target=%q", positional, flag)
	}

	t, ok := Parse(name)
	if !ok {
		return Target{}, fmt.Errorf("invalid target %q, available targets: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Path returns the absolute destination directory for projectDir.
func (t Target) Path(projectDir string) string {
	return filepath.Join(projectDir, t.Dir)
}

// DisplayDir returns the directory with a trailing slash, e.g. ".claude/".
func (t Target) DisplayDir() string {
	return t.Dir + "/"
}
