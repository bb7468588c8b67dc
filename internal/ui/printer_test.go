package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/artche/aikit/internal/installer"
	"github.com/artche/aikit/internal/target"
)

func plain(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestReporterLines(t *testing.T) {
	plain(t)
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var r installer.Reporter = p
	r.Step(2, 3, "Copying to .claude/ (merge mode)...")
	r.Success("Copied skills/ (3 files)")
	r.Error("Failed to copy rules: boom")
	r.Info("Skipping (not found): agents")

	assert.Equal(t, "[2/3] Copying to .claude/ (merge mode)...\n"+
		"✓ Copied skills/ (3 files)\n"+
		"✗ Failed to copy rules: boom\n"+
		"→ Skipping (not found): agents\n", buf.String())
}

func TestColorEnabled(t *testing.T) {
	plain(t)
	SetColor(true)
	var buf bytes.Buffer
	NewPrinter(&buf).Success("done")
	assert.Contains(t, buf.String(), "\x1b[32m")

	SetColor(false)
	buf.Reset()
	NewPrinter(&buf).Success("done")
	assert.Equal(t, "✓ done\n", buf.String())
}

func TestSummaryClaude(t *testing.T) {
	plain(t)
	claude, _ := target.Parse("claude")
	var buf bytes.Buffer

	NewPrinter(&buf).Summary(&installer.Result{
		Target: claude,
		Installed: []installer.Item{
			{Path: "skills", IsDir: true, Files: 4},
			{Path: "rules/general.md"},
		},
		Commands: []string{"/commit", "/review"},
	})

	assert.Equal(t, "\n"+
		"✓ AI skills installed to .claude/\n"+
		"\n"+
		"Installed:\n"+
		"  📁 skills/ (4 files)\n"+
		"  📄 rules/general.md\n"+
		"\n"+
		"Your existing files were preserved (merge mode).\n"+
		"\n"+
		"Available commands:\n"+
		"  /commit\n"+
		"  /review\n"+
		"\n", buf.String())
}

func TestSummaryShowsFailures(t *testing.T) {
	plain(t)
	cursor, _ := target.Parse("cursor")
	var buf bytes.Buffer

	NewPrinter(&buf).Summary(&installer.Result{
		Target:    cursor,
		Installed: []installer.Item{{Path: "agents", IsDir: true, Files: 1}},
		Failed:    []installer.Failure{{Path: "rules", Err: errors.New("permission denied")}},
	})

	out := buf.String()
	assert.Contains(t, out, "installed to .cursor/")
	assert.Contains(t, out, "✗ rules: permission denied")
	assert.NotContains(t, out, "Available commands")
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	Fatal(&buf, errors.New("no valid paths to install"))
	assert.Equal(t, "❌ Error: no valid paths to install\n", buf.String())
}
