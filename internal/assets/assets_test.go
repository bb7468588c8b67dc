package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedHasEveryCategory(t *testing.T) {
	src := Embedded()
	for _, category := range []string{"skills", "rules", "commands", "agents"} {
		info, err := fs.Stat(src, category)
		require.NoError(t, err, category)
		assert.True(t, info.IsDir(), category)
	}
}

func TestEmbeddedSkillsHaveSkillFile(t *testing.T) {
	src := Embedded()
	entries, err := fs.ReadDir(src, "skills")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		_, err := fs.Stat(src, "skills/"+e.Name()+"/SKILL.md")
		assert.NoError(t, err, e.Name())
	}
}

func TestEmbeddedReadsFiles(t *testing.T) {
	src := Embedded()
	data, err := fs.ReadFile(src, "commands/review.md")
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: review")
}

func TestResolveEmbedded(t *testing.T) {
	s := Resolve("")
	assert.Equal(t, EmbeddedLocation, s.Location)

	_, err := fs.Stat(s.FS, "skills")
	assert.NoError(t, err)
}

func TestResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "rules"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules", "local.md"), []byte("local"), 0644))

	s := Resolve(dir)
	assert.Equal(t, dir, s.Location)

	data, err := fs.ReadFile(s.FS, "rules/local.md")
	require.NoError(t, err)
	assert.Equal(t, "local", string(data))
}

func TestResolveMissingDirectoryIsLazy(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	s := Resolve(missing)

	_, err := fs.Stat(s.FS, ".")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
