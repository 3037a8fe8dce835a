package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var inspectExportPath string

var inspectCmd = &cobra.Command{
	Use:   "inspect [file...]",
	Short: "Show how documents load: kind, size and extraction warnings",
	Long: `Loads the named files and reports what the engine extracted from
each: detected kind, normalised size and any non-fatal extraction
warnings (such as an unreadable PDF page).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectExportPath, "export-text", "o", "", "also write the first document's extracted text to a file")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
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

	for _, doc := range docs {
		cmd.Printf("%s\n", doc.ID)
		cmd.Printf("  Kind:   %s\n", doc.Kind)
		cmd.Printf("  Size:   %d bytes (original), %d chars (extracted)\n", doc.SizeBytes, doc.CharCount())
		cmd.Printf("  Lines:  %d\n", doc.LineCount())
		for _, w := range doc.Warnings {
			cmd.Printf("  Warning: %s\n", w)
		}
		cmd.Println()
	}
	cmd.Printf("Total: %d documents\n", len(docs))

	if inspectExportPath != "" {
		data, err := session.ExportDocument(cmd.Context(), docs[0].ID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(inspectExportPath, data, 0600); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
		cmd.Printf("Extracted text written to %s\n", inspectExportPath)
	}
	return nil
}
