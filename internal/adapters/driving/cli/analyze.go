package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

var (
	analyzeTopN      int
	analyzeStopwords []string
	analyzeStopLang  string
	analyzeCaseSens  bool
	analyzeJSON      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file...]",
	Short: "Compute word frequencies and document statistics",
	Long: `Loads the named files into an in-memory corpus and reports word
frequencies plus per-document character, word and line counts.

All tokens count by default; stopword filtering is opt-in via
--stopwords or --stopword-lang.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeTopN, "top", "n", 0, "number of top tokens to report (default 25)")
	analyzeCmd.Flags().StringSliceVar(&analyzeStopwords, "stopwords", nil, "explicit tokens to exclude")
	analyzeCmd.Flags().StringVar(&analyzeStopLang, "stopword-lang", "", "exclude built-in stopwords for a language code (e.g. en)")
	analyzeCmd.Flags().BoolVarP(&analyzeCaseSens, "case-sensitive", "c", false, "do not fold token case")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if analyzeStopLang == "" {
		analyzeStopLang = settings.StopwordLang
	}

	session := newSession(settings)
	if err := ingestPaths(cmd, session, args); err != nil {
		return err
	}

	report, err := session.Analyze(cmd.Context(), driving.AnalyzeOptions{
		TopN:          analyzeTopN,
		Stopwords:     analyzeStopwords,
		StopwordLang:  analyzeStopLang,
		CaseSensitive: analyzeCaseSens,
	})
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if analyzeJSON {
		return outputAnalyzeJSON(cmd, report)
	}
	return outputAnalyzeTable(cmd, report)
}

func outputAnalyzeJSON(cmd *cobra.Command, report *driving.AnalyzeReport) error {
	type tokenOut struct {
		Token string `json:"token"`
		Count int    `json:"count"`
	}
	type docOut struct {
		DocumentID string `json:"document_id"`
		CharCount  int    `json:"char_count"`
		WordCount  int    `json:"word_count"`
		LineCount  int    `json:"line_count"`
	}
	out := struct {
		Top       []tokenOut `json:"top"`
		Documents []docOut   `json:"documents"`
		CharCount int        `json:"char_count"`
		WordCount int        `json:"word_count"`
		LineCount int        `json:"line_count"`
	}{
		CharCount: report.Aggregate.CharCount,
		WordCount: report.Aggregate.WordCount,
		LineCount: report.Aggregate.LineCount,
	}
	for _, tc := range report.Top {
		out.Top = append(out.Top, tokenOut{Token: tc.Token, Count: tc.Count})
	}
	for _, d := range report.PerDocument {
		out.Documents = append(out.Documents, docOut{
			DocumentID: d.DocumentID,
			CharCount:  d.Stats.CharCount,
			WordCount:  d.Stats.WordCount,
			LineCount:  d.Stats.LineCount,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnalyzeTable(cmd *cobra.Command, report *driving.AnalyzeReport) error {
	cmd.Println("Documents:")
	for _, d := range report.PerDocument {
		cmd.Printf("  %-30s %8d chars %8d words %6d lines\n",
			d.DocumentID, d.Stats.CharCount, d.Stats.WordCount, d.Stats.LineCount)
	}
	cmd.Printf("  %-30s %8d chars %8d words %6d lines\n",
		"TOTAL", report.Aggregate.CharCount, report.Aggregate.WordCount, report.Aggregate.LineCount)

	if len(report.Top) > 0 {
		cmd.Println("\nTop tokens:")
		for i, tc := range report.Top {
			cmd.Printf("  %3d. %-20s %d\n", i+1, tc.Token, tc.Count)
		}
	}
	return nil
}
