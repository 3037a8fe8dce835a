// Package cli implements the docsift command line interface.
//
// The corpus is strictly in-memory, so every invocation names the files
// it works over: the command reads them, hands the bytes to the engine,
// runs its query and exits. Nothing is written to disk except explicit
// exports and the TOML settings file.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/adapters/driven/config/file"
	"github.com/docsift/docsift-cli/internal/adapters/driven/storage/memory"
	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
	"github.com/docsift/docsift-cli/internal/core/services"
	"github.com/docsift/docsift-cli/internal/loaders"
	"github.com/docsift/docsift-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Search and analyze documents without indexing them",
	Long: `docsift loads PDF, text, Markdown, CSV and JSON documents into an
in-memory corpus and answers pattern searches, word frequency analyses
and paginated views against it. Document content never touches disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output on stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.docsift)")
}

// Execute runs the CLI. It is the only entry point main calls.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SetVersion overrides the reported version (set from main via ldflags).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// loadSettings resolves session settings from the config file.
func loadSettings() (domain.Settings, error) {
	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("open config: %w", err)
	}
	return store.Settings(), nil
}

// newSession builds a fresh session over an empty corpus.
func newSession(settings domain.Settings) *services.Session {
	return services.NewSession(loaders.DefaultRegistry(), memory.NewCorpusStore(), settings)
}

// ingestPaths reads the named files and loads them into the session.
// Per-file failures are reported on stderr; the command proceeds with
// whatever loaded. Only a batch with zero survivors is fatal.
func ingestPaths(cmd *cobra.Command, session *services.Session, paths []string) error {
	uploads := make([]driving.Upload, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", path, err)
			continue
		}
		uploads = append(uploads, driving.Upload{Filename: path, Content: raw})
	}

	report := session.IngestBatch(cmd.Context(), uploads)
	for _, f := range report.Failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", f.Filename, f.Err)
	}
	if len(report.Loaded) == 0 {
		return fmt.Errorf("no documents could be loaded")
	}
	return nil
}
