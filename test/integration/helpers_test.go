//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/artche/aikit/internal/assets"
	"github.com/artche/aikit/internal/copier"
	"github.com/artche/aikit/internal/installer"
	"github.com/artche/aikit/internal/pathspec"
	"github.com/artche/aikit/internal/target"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds .aikit/config.yaml
	SourceDir  string // AIKIT_SOURCE, an on-disk template tree
	ProjectDir string // A mock project directory
}

// setupTestEnv creates isolated temp directories and points HOME and
// AIKIT_SOURCE at them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		SourceDir:  t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("AIKIT_SOURCE", env.SourceDir)

	return env
}

// setupSource writes a synthetic template tree with every category plus the
// folders that must never be distributed.
func setupSource(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "skills/html/SKILL.md"), `---
name: html
description: Semantic HTML.
version: 1.0.0
---
# HTML
`)
	writeFile(t, filepath.Join(dir, "skills/html/examples/page.html"), "<!doctype html>\n")
	writeFile(t, filepath.Join(dir, "skills/html/scripts/lint.sh"), "#!/bin/sh\n")
	writeFile(t, filepath.Join(dir, "skills/html/node_modules/dep/index.js"), "module.exports = {}\n")

	writeFile(t, filepath.Join(dir, "skills/css/SKILL.md"), `---
name: css
description: Maintainable CSS.
version: 1.1.0
---
# CSS
`)
	writeFile(t, filepath.Join(dir, "skills/css/.git/HEAD"), "ref: refs/heads/main\n")

	writeFile(t, filepath.Join(dir, "rules/general.md"), `---
name: general
description: General rules.
---
`)
	writeFile(t, filepath.Join(dir, "commands/review.md"), `---
name: review
description: Review the diff.
---
`)
	writeFile(t, filepath.Join(dir, "commands/ship.md"), `---
name: ship
description: Ship it.
---
`)
	writeFile(t, filepath.Join(dir, "agents/reviewer.md"), `---
name: reviewer
description: Reviews code.
---
`)
	writeFile(t, filepath.Join(dir, "scripts/sync.sh"), "#!/bin/sh\n")
}

// newInstaller returns an Installer reading the on-disk source.
func newInstaller(env *testEnv) *installer.Installer {
	src := assets.Resolve(env.SourceDir)
	return &installer.Installer{
		Source:     src.FS,
		Location:   src.Location,
		ProjectDir: env.ProjectDir,
		Rules:      pathspec.DefaultRules(),
		Ignore:     copier.DefaultIgnoreSet(),
	}
}

func mustTarget(t *testing.T, name string) target.Target {
	t.Helper()
	tg, ok := target.Parse(name)
	if !ok {
		t.Fatalf("unknown target %q", name)
	}
	return tg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected %q to contain %q", s, substr)
	}
}
