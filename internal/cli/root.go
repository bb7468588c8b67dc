package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artche/aikit/internal/assets"
	"github.com/artche/aikit/internal/branding"
	"github.com/artche/aikit/internal/config"
	"github.com/artche/aikit/internal/logging"
	"github.com/artche/aikit/internal/pathspec"
	"github.com/artche/aikit/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	projectDir string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <claude|cursor>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies skills, rules, commands and agents into a project's
.claude/ or .cursor/ directory. Files with the same name are overwritten;
everything else already in the directory is left alone.

Targets:
  claude    Install to .claude/
  cursor    Install to .cursor/

Available paths for --what:
  skills            All skills
  skills/<name>     Specific skill (e.g., skills/html)
  commands          All commands
  rules             All rules
  agents            All agents`,
	Example: `  aikit claude                      # Install everything
  aikit cursor                      # Install for Cursor
  aikit claude --what=skills        # Only skills/
  aikit claude --what=skills/html   # Only skills/html/
  aikit claude --what=skills,rules  # skills/ and rules/`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runInstall,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "Project directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// setup loads configuration and prepares logging and colour for every command.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(); err != nil {
		return err
	}

	useColor := config.Color() && !noColor
	ui.SetColor(useColor)

	return logging.Setup(cmd.ErrOrStderr(), config.LogLevel(), verbose, !useColor)
}

// source returns the configured template tree.
func source() assets.Source {
	return assets.Resolve(config.Source())
}

// rules returns the category allow-list and reserved names.
func rules() pathspec.Rules {
	return pathspec.DefaultRules()
}

// resolveProjectDir returns the absolute project directory selected by -C.
func resolveProjectDir() (string, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project directory %s is not a directory", abs)
	}
	return abs, nil
}

// Execute runs the root command with build info injected via ldflags. The
// error, if any, has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		ui.Fatal(rootCmd.ErrOrStderr(), err)
	}
	return err
}
