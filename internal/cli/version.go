package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artche/aikit/internal/assets"
	"github.com/artche/aikit/internal/branding"
	"github.com/artche/aikit/internal/catalog"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		templates := bundledTemplatesVersion()

		if versionJSON {
			info := map[string]string{
				"version":   buildVersion,
				"commit":    buildCommit,
				"date":      buildDate,
				"templates": templates,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		fmt.Fprintf(out, "bundled templates: %s\n", templates)
		return nil
	},
}

// bundledTemplatesVersion returns the newest frontmatter version among the
// embedded templates, or "unknown".
func bundledTemplatesVersion() string {
	entries, err := catalog.Discover(assets.Embedded(), rules())
	if err != nil {
		return "unknown"
	}
	if v := catalog.NewestVersion(entries); v != nil {
		return v.String()
	}
	return "unknown"
}
