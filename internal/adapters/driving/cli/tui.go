package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docsift/docsift-cli/internal/adapters/driving/tui"
)

var tuiWatch bool

var tuiCmd = &cobra.Command{
	Use:   "tui [file...]",
	Short: "Browse the corpus interactively",
	Long: `Open the interactive terminal interface over the named files.

The TUI loads the files into an in-memory corpus and offers incremental
pattern search, corpus analysis and a paginated document reader. With
--watch the files are reloaded whenever they change on disk.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "reload files when they change on disk")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the TUI requires an interactive terminal")
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Session: newSession(settings)}, args, tuiWatch)
	if err != nil {
		return err
	}

	program := tea.NewProgram(app.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
