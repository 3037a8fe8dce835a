package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

var (
	viewStartLine int
	viewPageSize  int
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "View a document's extracted text, one page at a time",
	Long: `Loads one file and prints a window of its sanitised text with stable
1-based line numbers. PDF lines carry their page number.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().IntVarP(&viewStartLine, "start", "s", 1, "first line to show (1-based)")
	viewCmd.Flags().IntVarP(&viewPageSize, "lines", "l", 0, "lines per page (default from config)")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	session := newSession(settings)
	if err := ingestPaths(cmd, session, args); err != nil {
		return err
	}

	docs, err := session.Documents(cmd.Context())
	if err != nil {
		return err
	}
	doc := docs[0]

	page, err := session.View(cmd.Context(), doc.ID, viewStartLine, viewPageSize)
	if err != nil {
		return fmt.Errorf("view failed: %w", err)
	}

	for _, line := range page.Lines {
		if doc.Kind == domain.KindPDF {
			cmd.Printf("%4d (p%d)  %s\n", line.Number, line.Page, line.Text)
		} else {
			cmd.Printf("%4d  %s\n", line.Number, line.Text)
		}
	}
	if page.HasMore {
		next := viewStartLine + len(page.Lines)
		cmd.Printf("\n... more lines follow (continue with --start %d)\n", next)
	}
	return nil
}
