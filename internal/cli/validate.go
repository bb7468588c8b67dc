package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artche/aikit/internal/catalog"
	"github.com/artche/aikit/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the frontmatter of every template",
	Long: `Validate the YAML frontmatter of every skill, rule, command and agent in
the template source. Each skill directory needs a SKILL.md whose name matches
the directory; versions must be semantic versions.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	src := source()
	entries, err := catalog.Discover(src.FS, rules())
	if err != nil {
		return fmt.Errorf("discovering templates in %s: %w", src.Location, err)
	}

	problems := catalog.Check(src.FS, entries)

	p := ui.NewPrinter(cmd.OutOrStdout())
	if len(problems) == 0 {
		p.Success(fmt.Sprintf("%d entries valid (%s)", len(entries), src.Location))
		return nil
	}

	for _, problem := range problems {
		p.Error(problem.String())
	}
	return fmt.Errorf("%d problem(s) found in %s", len(problems), src.Location)
}
