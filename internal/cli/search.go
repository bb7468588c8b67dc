package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artche/aikit/internal/catalog"
)

var (
	searchCategory string
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the templates by name, path or description",
	Long: `Search the template source. The query matches entry names, paths and
descriptions (case-insensitive substring). Use --category to narrow the results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Filter by category (skills, rules, commands, agents)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	entries, err := discover(searchCategory)
	if err != nil {
		return err
	}

	var matched []catalog.Entry
	for _, e := range entries {
		if matchesSearch(e, query) {
			matched = append(matched, e)
		}
	}

	if len(matched) == 0 {
		msg := "No entries found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if searchCategory != "" {
			msg += fmt.Sprintf(" with --category=%s", searchCategory)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		return printEntriesJSON(cmd, matched)
	}
	return printEntriesTable(cmd, matched)
}

// matchesSearch reports whether the entry's name, path or description
// contains query, ignoring case. An empty query matches everything.
func matchesSearch(e catalog.Entry, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Path), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}
