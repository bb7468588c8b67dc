package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artche/aikit/internal/catalog"
)

var (
	listCategory string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installable skills, rules, commands and agents",
	Long: `List every entry in the template source with the name, version and
description read from its frontmatter. The entry paths are valid --what values.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (skills, rules, commands, agents)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := discover(listCategory)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		if listCategory != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No entries matching --category=%s\n", listCategory)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
		}
		return nil
	}

	if listJSON {
		return printEntriesJSON(cmd, entries)
	}
	return printEntriesTable(cmd, entries)
}

// discover lists the source entries, optionally restricted to one category.
func discover(category string) ([]catalog.Entry, error) {
	r := rules()
	if category != "" && !slices.Contains(r.Categories, category) {
		return nil, fmt.Errorf("invalid category %q, must be one of: %s", category, strings.Join(r.Categories, ", "))
	}

	entries, err := catalog.Discover(source().FS, r)
	if err != nil {
		return nil, fmt.Errorf("discovering templates: %w", err)
	}
	return catalog.Filter(entries, category), nil
}

func printEntriesTable(cmd *cobra.Command, entries []catalog.Entry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Path, e.Name, version, e.Description)
	}
	return w.Flush()
}

func printEntriesJSON(cmd *cobra.Command, entries []catalog.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
