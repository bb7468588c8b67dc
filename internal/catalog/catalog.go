// Package catalog discovers the installable entries in a template tree and
// checks their frontmatter.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"

	"github.com/artche/aikit/internal/manifest"
	"github.com/artche/aikit/internal/pathspec"
)

// SkillFile is the file that describes a skill directory.
const SkillFile = "SKILL.md"

// Entry is one installable item: a skill directory or a markdown file
// directly under a category.
type Entry struct {
	Path        string `json:"path"`
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	IsDir       bool   `json:"is_dir"`
	// File holds the frontmatter; empty for a directory without SKILL.md.
	File string `json:"-"`
}

// Problem is a frontmatter or layout issue found by Check.
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return p.Path + ": " + p.Message
}

// Discover lists the entries of the given categories in fsys, in category
// order and then by path. Missing categories are skipped. Entries named in
// reserved (for example "scripts") are never listed.
func Discover(fsys fs.FS, rules pathspec.Rules) ([]Entry, error) {
	var entries []Entry

	for _, category := range rules.Categories {
		children, err := fs.ReadDir(fsys, category)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", category, err)
		}

		var found []Entry
		for _, child := range children {
			if slices.Contains(rules.Reserved, child.Name()) {
				continue
			}
			rel := path.Join(category, child.Name())

			switch {
			case child.IsDir():
				e := Entry{Path: rel, Category: category, Name: child.Name(), IsDir: true}
				skill := path.Join(rel, SkillFile)
				if _, err := fs.Stat(fsys, skill); err == nil {
					e.File = skill
				}
				found = append(found, e)
			case child.Type().IsRegular() && strings.HasSuffix(child.Name(), ".md"):
				found = append(found, Entry{
					Path:     rel,
					Category: category,
					Name:     strings.TrimSuffix(child.Name(), ".md"),
					File:     rel,
				})
			}
		}

		for i := range found {
			describe(fsys, &found[i])
		}
		sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
		entries = append(entries, found...)
	}

	return entries, nil
}

// describe fills name, description and version from the entry's frontmatter.
// Unreadable frontmatter leaves the defaults in place; Check reports it.
func describe(fsys fs.FS, e *Entry) {
	if e.File == "" {
		return
	}
	fm, err := manifest.ParseFile(fsys, e.File)
	if err != nil {
		log.Debug().Err(err).Str("file", e.File).Msg("no usable frontmatter")
		return
	}
	if fm.Name != "" {
		e.Name = fm.Name
	}
	e.Description = fm.Description
	e.Version = fm.Version
}

// Filter returns the entries whose category is category. An empty category
// returns all entries.
func Filter(entries []Entry, category string) []Entry {
	if category == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Check validates the frontmatter of every entry. A skill directory must hold
// a SKILL.md whose name matches the directory; directories in other
// categories are not checked. Unreadable files and YAML syntax errors are
// reported as problems.
func Check(fsys fs.FS, entries []Entry) []Problem {
	var problems []Problem

	for _, e := range entries {
		if e.File == "" {
			if e.Category == pathspec.CategorySkills {
				problems = append(problems, Problem{Path: e.Path, Message: "missing " + SkillFile})
			}
			continue
		}

		result, err := manifest.ValidateFile(fsys, e.File)
		if err != nil {
			problems = append(problems, Problem{Path: e.File, Message: err.Error()})
			continue
		}
		for _, issue := range result.Issues {
			problems = append(problems, Problem{Path: e.File, Message: issue.String()})
		}

		if e.IsDir && result.Valid && e.Name != path.Base(e.Path) {
			problems = append(problems, Problem{
				Path:    e.File,
				Message: fmt.Sprintf("name %q does not match directory %q", e.Name, path.Base(e.Path)),
			})
		}
	}

	return problems
}

// NewestVersion returns the highest semantic version among entries, or nil
// when none carries a valid version.
func NewestVersion(entries []Entry) *semver.Version {
	var newest *semver.Version
	for _, e := range entries {
		v, err := semver.NewVersion(e.Version)
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	return newest
}

// CommandNames returns "/<stem>" for every markdown file directly under the
// commands folder of fsys, sorted. A missing folder yields nil.
func CommandNames(fsys fs.FS) ([]string, error) {
	children, err := fs.ReadDir(fsys, pathspec.CategoryCommands)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading commands: %w", err)
	}

	var names []string
	for _, child := range children {
		if !child.Type().IsRegular() || !strings.HasSuffix(child.Name(), ".md") {
			continue
		}
		names = append(names, "/"+strings.TrimSuffix(child.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}
