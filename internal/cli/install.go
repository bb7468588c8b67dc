package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/artche/aikit/internal/config"
	"github.com/artche/aikit/internal/copier"
	"github.com/artche/aikit/internal/installer"
	"github.com/artche/aikit/internal/target"
	"github.com/artche/aikit/internal/ui"
)

var (
	installWhat   string
	installTarget string
)

func init() {
	rootCmd.Flags().StringVar(&installWhat, "what", "", "Install specific paths (comma-separated, e.g. skills/html,rules)")
	rootCmd.Flags().StringVar(&installTarget, "target", "", "Target to install into (claude or cursor)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	positional := ""
	if len(args) > 0 {
		positional = args[0]
	}
	if positional == "" && installTarget == "" {
		_ = cmd.Help()
	}

	t, err := target.Resolve(positional, installTarget)
	if err != nil {
		return err
	}

	req := installer.Request{Target: t, Items: installer.ParseItems(installWhat)}
	if _, err := rules().ValidateAll(req.Items); err != nil {
		return err
	}

	dir, err := resolveProjectDir()
	if err != nil {
		return err
	}

	ignore, err := copier.NewIgnoreSet(copier.DefaultIgnoredNames, config.IgnorePatterns())
	if err != nil {
		return fmt.Errorf("config %s: %w", config.KeyIgnore, err)
	}

	src := source()
	log.Debug().
		Str("source", src.Location).
		Str("project", dir).
		Str("target", string(t.Name)).
		Strs("ignore", ignore.Patterns()).
		Msg("installing")

	p := ui.NewPrinter(cmd.OutOrStdout())
	in := &installer.Installer{
		Source:     src.FS,
		Location:   src.Location,
		ProjectDir: dir,
		Rules:      rules(),
		Ignore:     ignore,
		Reporter:   p,
	}

	p.Blank()
	res, err := in.Install(req)
	if err != nil {
		return err
	}

	p.Summary(res)
	return nil
}
