package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artche/aikit/internal/assets"
	"github.com/artche/aikit/internal/pathspec"
)

func front(name, desc, version string) []byte {
	s := "---\nname: " + name + "\ndescription: " + desc + "\n"
	if version != "" {
		s += "version: " + version + "\n"
	}
	return []byte(s + "---\nbody\n")
}

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"skills/html/SKILL.md":     {Data: front("html", "HTML.", "1.2.0")},
		"skills/html/scripts/x.sh": {Data: []byte("#!/bin/sh")},
		"skills/broken/README.md":  {Data: []byte("no skill file")},
		"skills/mismatch/SKILL.md": {Data: front("other", "Wrong name.", "")},
		"skills/scripts/SKILL.md":  {Data: front("scripts", "Reserved.", "")},
		"rules/general.md":         {Data: front("general", "General.", "1.0.0")},
		"rules/notes.txt":          {Data: []byte("ignored")},
		"commands/review.md":       {Data: front("review", "Review.", "0.3.0")},
		"commands/plain.md":        {Data: []byte("# no frontmatter")},
		"commands/nested/deep.md":  {Data: front("deep", "Deep.", "")},
	}
}

func TestDiscover(t *testing.T) {
	entries, err := Discover(testTree(), pathspec.DefaultRules())
	require.NoError(t, err)

	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		"skills/broken",
		"skills/html",
		"skills/mismatch",
		"rules/general.md",
		"commands/nested",
		"commands/plain.md",
		"commands/review.md",
	}, paths)
}

func TestDiscoverReadsFrontmatter(t *testing.T) {
	entries, err := Discover(testTree(), pathspec.DefaultRules())
	require.NoError(t, err)

	byPath := map[string]Entry{}
	for _, e := range entries {
		byPath[e.Path] = e
	}

	html := byPath["skills/html"]
	assert.Equal(t, "html", html.Name)
	assert.Equal(t, "HTML.", html.Description)
	assert.Equal(t, "1.2.0", html.Version)
	assert.True(t, html.IsDir)
	assert.Equal(t, "skills/html/SKILL.md", html.File)

	broken := byPath["skills/broken"]
	assert.Equal(t, "broken", broken.Name)
	assert.Empty(t, broken.File)

	plain := byPath["commands/plain.md"]
	assert.Equal(t, "plain", plain.Name, "falls back to the file stem")
	assert.Empty(t, plain.Description)
}

func TestDiscoverSkipsMissingCategories(t *testing.T) {
	fsys := fstest.MapFS{"agents/a.md": {Data: front("a", "A.", "")}}
	entries, err := Discover(fsys, pathspec.DefaultRules())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, pathspec.CategoryAgents, entries[0].Category)
}

func TestFilter(t *testing.T) {
	entries, err := Discover(testTree(), pathspec.DefaultRules())
	require.NoError(t, err)

	rules := Filter(entries, pathspec.CategoryRules)
	require.Len(t, rules, 1)
	assert.Equal(t, "rules/general.md", rules[0].Path)

	assert.Len(t, Filter(entries, ""), len(entries))
	assert.Empty(t, Filter(entries, pathspec.CategoryAgents))
}

func TestCheck(t *testing.T) {
	fsys := testTree()
	entries, err := Discover(fsys, pathspec.DefaultRules())
	require.NoError(t, err)

	problems := Check(fsys, entries)

	got := map[string]string{}
	for _, p := range problems {
		got[p.Path] = p.Message
	}

	assert.Equal(t, "missing SKILL.md", got["skills/broken"])
	assert.Contains(t, got["skills/mismatch/SKILL.md"], `name "other" does not match directory "mismatch"`)
	assert.Contains(t, got["commands/plain.md"], "missing frontmatter")
	assert.NotContains(t, got, "skills/html/SKILL.md")
	assert.NotContains(t, got, "commands/nested", "non-skill directories are not checked")
	assert.Len(t, problems, 3)
}

func TestCheckBundledTemplates(t *testing.T) {
	src := assets.Embedded()
	entries, err := Discover(src, pathspec.DefaultRules())
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	assert.Empty(t, Check(src, entries))
}

func TestNewestVersion(t *testing.T) {
	entries := []Entry{{Version: "1.0.0"}, {Version: "1.10.0"}, {Version: "1.9.3"}, {Version: "garbage"}, {}}
	v := NewestVersion(entries)
	require.NotNil(t, v)
	assert.Equal(t, "1.10.0", v.String())

	assert.Nil(t, NewestVersion([]Entry{{Version: ""}}))
}

func TestCommandNames(t *testing.T) {
	dest := t.TempDir()
	commands := filepath.Join(dest, "commands")
	require.NoError(t, os.MkdirAll(filepath.Join(commands, "nested"), 0755))
	for _, name := range []string{"review.md", "commit.md", "notes.txt", filepath.Join("nested", "deep.md")} {
		require.NoError(t, os.WriteFile(filepath.Join(commands, name), []byte("x"), 0644))
	}

	names, err := CommandNames(os.DirFS(dest))
	require.NoError(t, err)
	assert.Equal(t, []string{"/commit", "/review"}, names)
}

func TestCommandNamesMissingFolder(t *testing.T) {
	names, err := CommandNames(os.DirFS(t.TempDir()))
	require.NoError(t, err)
	assert.Nil(t, names)
}
