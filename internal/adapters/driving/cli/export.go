package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/loaders/markdown"
)

var (
	exportDoc      string
	exportOut      string
	exportRendered bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file...]",
	Short: "Export a document's extracted text",
	Long: `Load the named files and export the normalised text of one document.

The document is selected with --doc by its ID (the sanitised filename,
disambiguated on collision). Without --doc the first loaded document is
exported. Output goes to stdout unless --out names a file.

Markdown documents export as written; --rendered strips the markup
instead, with its own line numbering.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDoc, "doc", "d", "", "document ID to export (default: first loaded)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportRendered, "rendered", false, "strip Markdown markup from the export")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	docID := exportDoc
	if docID == "" {
		docID = docs[0].ID
	}

	text, err := session.ExportDocument(cmd.Context(), docID)
	if err != nil {
		return err
	}

	if exportRendered {
		doc, err := findDocument(docs, docID)
		if err != nil {
			return err
		}
		if doc.Kind != domain.KindMarkdown {
			return fmt.Errorf("--rendered applies to markdown documents, %s is %s", docID, doc.Kind)
		}
		text = []byte(markdown.StripMarkup(text))
	}

	if exportOut != "" {
		if err := os.WriteFile(exportOut, text, 0600); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		cmd.Printf("exported %s to %s\n", docID, exportOut)
		return nil
	}

	cmd.Print(string(text))
	return nil
}

func findDocument(docs []*domain.Document, id string) (*domain.Document, error) {
	for _, doc := range docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
}
