package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

var (
	searchRegex         bool
	searchCaseSensitive bool
	searchWholeWord     bool
	searchContextChars  int
	searchJSON          bool
	searchExportPath    string
)

var searchCmd = &cobra.Command{
	Use:   "search [pattern] [file...]",
	Short: "Search documents for a pattern",
	Long: `Loads the named files into an in-memory corpus and reports every
occurrence of the pattern with its page, line and surrounding context.

The pattern is matched literally unless --regex is given. Matching is
case-insensitive by default and never overlaps.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVarP(&searchRegex, "regex", "e", false, "treat the pattern as a regular expression")
	searchCmd.Flags().BoolVarP(&searchCaseSensitive, "case-sensitive", "c", false, "match case exactly")
	searchCmd.Flags().BoolVarP(&searchWholeWord, "word", "w", false, "match whole words only")
	searchCmd.Flags().IntVar(&searchContextChars, "context", 0, "context characters around each match (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVarP(&searchExportPath, "export", "o", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	session := newSession(settings)
	if err := ingestPaths(cmd, session, args[1:]); err != nil {
		return err
	}

	opts := domain.SearchOptions{
		CaseSensitive: searchCaseSensitive,
		IsRegex:       searchRegex,
		WholeWord:     searchWholeWord,
		ContextChars:  searchContextChars,
	}

	report, err := session.Search(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	format := driving.ExportText
	if searchJSON {
		format = driving.ExportJSON
	}
	data, err := session.ExportSearch(report, format)
	if err != nil {
		return err
	}

	if searchExportPath != "" {
		if err := os.WriteFile(searchExportPath, data, 0600); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		cmd.Printf("Report written to %s\n", searchExportPath)
		return nil
	}

	cmd.Println(string(data))
	return nil
}
