// Package tui implements the interactive terminal interface.
//
// The interface is a single bubbletea model with three screens: the
// search screen (query input over a result list), the analyze screen
// (token frequencies and corpus statistics), and the document reader
// (paginated line view). All corpus access goes through the session
// service; the TUI reads files from disk only to hand their bytes to
// the engine.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/docsift/docsift-cli/internal/adapters/driving/tui/keymap"
	"github.com/docsift/docsift-cli/internal/adapters/driving/tui/messages"
	"github.com/docsift/docsift-cli/internal/adapters/driving/tui/styles"
	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

// chromeHeight is the number of terminal rows taken by the title, the
// input box, the status bar and the help line.
const chromeHeight = 6

// App is the root bubbletea model.
type App struct {
	ports   *Ports
	ctx     context.Context
	paths   []string
	watcher *watcher

	keys   keymap.KeyMap
	styles styles.Styles
	input  textinput.Model
	body   viewport.Model
	help   help.Model

	current  messages.ViewType
	opts     domain.SearchOptions
	report   *driving.SearchReport
	analysis *driving.AnalyzeReport
	page     *domain.ViewPage

	selected  int
	viewDoc   string
	pageStart int
	docCount  int

	status string
	err    error

	width  int
	height int
	ready  bool
}

var _ tea.Model = (*App)(nil)

// NewApp creates the root model. When watch is true, the named files
// are watched for changes and the corpus is reloaded when they change.
func NewApp(ports *Ports, paths []string, watch bool) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "pattern"
	input.Prompt = "/ "
	input.Focus()

	app := &App{
		ports:  ports,
		ctx:    context.Background(),
		paths:  paths,
		keys:   keymap.DefaultKeyMap(),
		styles: styles.DefaultStyles(),
		input:  input,
		help:   help.New(),
		status: "loading corpus",
	}

	if watch && len(paths) > 0 {
		w, err := newWatcher(paths)
		if err != nil {
			return nil, fmt.Errorf("watching files: %w", err)
		}
		app.watcher = w
	}

	return app, nil
}

// WithContext sets the context used for session calls issued by the TUI.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the corpus load and, when watching, the change listener.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("docsift"),
		textinput.Blink,
		a.loadCorpusCmd(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.watcher.waitCmd())
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the active screen.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.input.Width = max(10, msg.Width-8)
		bodyHeight := max(3, msg.Height-chromeHeight)
		if !a.ready {
			a.body = viewport.New(msg.Width, bodyHeight)
			a.ready = true
		} else {
			a.body.Width = msg.Width
			a.body.Height = bodyHeight
		}
		a.refreshBody()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.CorpusLoaded:
		return a.handleCorpusLoaded(msg)

	case messages.SearchCompleted:
		a.err = msg.Err
		if msg.Err == nil {
			a.report = msg.Report
			a.selected = 0
			a.status = fmt.Sprintf("%d matches in %d documents",
				len(msg.Report.Matches), msg.Report.DocumentsSearched)
			if len(msg.Report.Failures) > 0 {
				a.status += fmt.Sprintf(" (%d documents timed out)", len(msg.Report.Failures))
			}
		}
		a.refreshBody()
		return a, nil

	case messages.AnalyzeCompleted:
		a.err = msg.Err
		if msg.Err == nil {
			a.analysis = msg.Report
			a.current = messages.ViewAnalyze
			a.status = fmt.Sprintf("%d distinct tokens", len(msg.Report.Table))
		}
		a.refreshBody()
		return a, nil

	case messages.PageLoaded:
		a.err = msg.Err
		if msg.Err == nil {
			a.page = msg.Page
			a.current = messages.ViewDocument
			a.status = fmt.Sprintf("viewing %s from line %d", msg.Page.DocumentID, a.pageStart)
		}
		a.refreshBody()
		return a, nil

	case messages.FileChanged:
		a.status = fmt.Sprintf("%s changed, reloading", msg.Path)
		if a.watcher == nil {
			return a, a.reloadCorpusCmd()
		}
		return a, tea.Batch(a.reloadCorpusCmd(), a.watcher.waitCmd())

	case messages.WatchClosed:
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg, a.keys.Quit):
		if a.watcher != nil {
			a.watcher.Close()
		}
		return a, tea.Quit

	case keymap.Matches(msg, a.keys.Help):
		if a.current == messages.ViewHelp {
			a.current = messages.ViewSearch
		} else {
			a.current = messages.ViewHelp
		}
		a.help.ShowAll = a.current == messages.ViewHelp
		return a, nil

	case keymap.Matches(msg, a.keys.Back):
		if a.current != messages.ViewSearch {
			a.current = messages.ViewSearch
			a.help.ShowAll = false
			a.refreshBody()
		}
		return a, nil
	}

	switch a.current {
	case messages.ViewSearch:
		return a.handleSearchKey(msg)
	case messages.ViewAnalyze, messages.ViewDocument:
		return a.handleReaderKey(msg)
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg, a.keys.Submit):
		pattern := strings.TrimSpace(a.input.Value())
		if pattern == "" {
			return a, nil
		}
		a.err = nil
		a.status = "searching"
		return a, a.searchCmd(pattern, a.opts)

	case keymap.Matches(msg, a.keys.Up):
		if a.report != nil && a.selected > 0 {
			a.selected--
			a.refreshBody()
		}
		return a, nil

	case keymap.Matches(msg, a.keys.Down):
		if a.report != nil && a.selected < len(a.report.Matches)-1 {
			a.selected++
			a.refreshBody()
		}
		return a, nil

	case keymap.Matches(msg, a.keys.Open):
		if a.report == nil || len(a.report.Matches) == 0 {
			return a, nil
		}
		m := a.report.Matches[a.selected]
		a.viewDoc = m.DocumentID
		a.pageStart = max(1, m.Line)
		return a, a.pageCmd(a.viewDoc, a.pageStart)

	case keymap.Matches(msg, a.keys.Analyze):
		a.err = nil
		a.status = "analyzing"
		return a, a.analyzeCmd()

	case keymap.Matches(msg, a.keys.ToggleRe):
		a.opts.IsRegex = !a.opts.IsRegex
		return a, nil

	case keymap.Matches(msg, a.keys.ToggleWord):
		a.opts.WholeWord = !a.opts.WholeWord
		return a, nil

	case keymap.Matches(msg, a.keys.ToggleCase):
		a.opts.CaseSensitive = !a.opts.CaseSensitive
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.current == messages.ViewDocument {
		switch {
		case keymap.Matches(msg, a.keys.NextPage):
			if a.page != nil && a.page.HasMore {
				a.pageStart += a.pageSize()
				return a, a.pageCmd(a.viewDoc, a.pageStart)
			}
			return a, nil

		case keymap.Matches(msg, a.keys.PrevPage):
			if a.pageStart > 1 {
				a.pageStart = max(1, a.pageStart-a.pageSize())
				return a, a.pageCmd(a.viewDoc, a.pageStart)
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.body, cmd = a.body.Update(msg)
	return a, cmd
}

func (a *App) handleCorpusLoaded(msg messages.CorpusLoaded) (tea.Model, tea.Cmd) {
	a.err = msg.Err
	if msg.Err != nil {
		return a, nil
	}

	a.docCount = len(msg.Report.Loaded)
	a.status = fmt.Sprintf("%d documents loaded", a.docCount)
	if n := len(msg.Report.Failures); n > 0 {
		a.status += fmt.Sprintf(", %d failed", n)
	}

	// A reload invalidates previous query output.
	a.report = nil
	a.analysis = nil
	a.page = nil
	a.selected = 0
	a.refreshBody()
	return a, nil
}

// View renders the active screen.
func (a *App) View() string {
	if !a.ready {
		return "starting docsift..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("docsift"))
	b.WriteString(a.styles.Muted.Render("  " + a.modeLine()))
	b.WriteString("\n")

	if a.current == messages.ViewSearch {
		b.WriteString(a.styles.Input.Render(a.input.View()))
		b.WriteString("\n")
	}

	b.WriteString(a.body.View())
	b.WriteString("\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render("error: " + a.err.Error()))
	} else {
		b.WriteString(a.styles.StatusBar.Width(a.width).Render(a.statusLine()))
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.help.View(a.keys)))

	return b.String()
}

// modeLine summarises the active search option toggles.
func (a *App) modeLine() string {
	parts := []string{a.current.String()}
	if a.opts.IsRegex {
		parts = append(parts, "regex")
	} else {
		parts = append(parts, "literal")
	}
	if a.opts.WholeWord {
		parts = append(parts, "word")
	}
	if a.opts.CaseSensitive {
		parts = append(parts, "case")
	}
	return strings.Join(parts, " | ")
}

func (a *App) statusLine() string {
	return fmt.Sprintf("%d documents | %s", a.docCount, a.status)
}

// refreshBody re-renders the body viewport for the active screen.
func (a *App) refreshBody() {
	if !a.ready {
		return
	}

	switch a.current {
	case messages.ViewSearch:
		a.body.SetContent(a.renderResults())
	case messages.ViewAnalyze:
		a.body.SetContent(a.renderAnalysis())
	case messages.ViewDocument:
		a.body.SetContent(a.renderPage())
	case messages.ViewHelp:
		a.body.SetContent("")
	}
}

func (a *App) renderResults() string {
	if a.report == nil {
		return a.styles.Muted.Render("type a pattern and press enter")
	}
	if len(a.report.Matches) == 0 {
		return a.styles.Muted.Render("no matches for " + a.report.Pattern)
	}

	var b strings.Builder
	for i, m := range a.report.Matches {
		location := fmt.Sprintf("%s:%d", m.DocumentID, m.Line)
		snippet := flatten(m.Before) + a.styles.Match.Render(flatten(m.Text)) + flatten(m.After)

		line := a.styles.Muted.Render(location) + "  " + snippet
		if i == a.selected {
			line = a.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderAnalysis() string {
	r := a.analysis
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("top tokens"))
	b.WriteString("\n")
	for i, tc := range r.Top {
		b.WriteString(fmt.Sprintf("%3d. %-24s %6d\n", i+1, tc.Token, tc.Count))
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Title.Render("documents"))
	b.WriteString("\n")
	for _, da := range r.PerDocument {
		b.WriteString(fmt.Sprintf("%-30s %8d chars %8d words %6d lines\n",
			da.DocumentID, da.Stats.CharCount, da.Stats.WordCount, da.Stats.LineCount))
	}
	b.WriteString(fmt.Sprintf("%-30s %8d chars %8d words %6d lines\n",
		"TOTAL", r.Aggregate.CharCount, r.Aggregate.WordCount, r.Aggregate.LineCount))
	return b.String()
}

func (a *App) renderPage() string {
	if a.page == nil {
		return ""
	}

	var b strings.Builder
	for _, line := range a.page.Lines {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("%4d  ", line.Number)))
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	if a.page.HasMore {
		b.WriteString(a.styles.Muted.Render("..."))
	}
	return b.String()
}

// pageSize is the number of document lines per reader page.
func (a *App) pageSize() int {
	return max(1, a.body.Height-1)
}

// flatten collapses newlines so a snippet stays on one result row.
func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

func (a *App) loadCorpusCmd() tea.Cmd {
	return func() tea.Msg {
		return messages.CorpusLoaded{Report: a.readAndIngest()}
	}
}

func (a *App) reloadCorpusCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.ports.Session.Reset(a.ctx); err != nil {
			return messages.CorpusLoaded{Err: err}
		}
		return messages.CorpusLoaded{Report: a.readAndIngest()}
	}
}

// readAndIngest reads the configured paths and loads them as one batch.
// Unreadable files join the loader failures instead of aborting.
func (a *App) readAndIngest() *driving.BatchReport {
	uploads := make([]driving.Upload, 0, len(a.paths))
	var unreadable []driving.UploadFailure

	for _, path := range a.paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			unreadable = append(unreadable, driving.UploadFailure{Filename: path, Err: err})
			continue
		}
		uploads = append(uploads, driving.Upload{Filename: path, Content: raw})
	}

	report := a.ports.Session.IngestBatch(a.ctx, uploads)
	report.Failures = append(report.Failures, unreadable...)
	return report
}

func (a *App) searchCmd(pattern string, opts domain.SearchOptions) tea.Cmd {
	return func() tea.Msg {
		report, err := a.ports.Session.Search(a.ctx, pattern, opts)
		return messages.SearchCompleted{Report: report, Err: err}
	}
}

func (a *App) analyzeCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := a.ports.Session.Analyze(a.ctx, driving.AnalyzeOptions{})
		return messages.AnalyzeCompleted{Report: report, Err: err}
	}
}

func (a *App) pageCmd(docID string, startLine int) tea.Cmd {
	pageSize := a.pageSize()
	return func() tea.Msg {
		page, err := a.ports.Session.View(a.ctx, docID, startLine, pageSize)
		return messages.PageLoaded{Page: page, Err: err}
	}
}
