package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift-cli/internal/adapters/driven/storage/memory"
	"github.com/docsift/docsift-cli/internal/adapters/driving/tui/messages"
	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/services"
	"github.com/docsift/docsift-cli/internal/loaders"
)

// newTestApp builds an app over a fresh in-memory session, sized and
// ready to render.
func newTestApp(t *testing.T, paths ...string) (*App, *services.Session) {
	t.Helper()

	session := services.NewSession(loaders.DefaultRegistry(), memory.NewCorpusStore(), domain.DefaultSettings())
	app, err := NewApp(&Ports{Session: session}, paths, false)
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App), session
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: k})
}

func TestNewApp(t *testing.T) {
	t.Run("nil session returns error", func(t *testing.T) {
		app, err := NewApp(&Ports{}, nil, false)
		require.Error(t, err)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("valid ports creates app", func(t *testing.T) {
		app, _ := newTestApp(t)
		assert.NotNil(t, app)
		assert.Equal(t, messages.ViewSearch, app.current)
	})
}

func TestApp_LoadsCorpusOnInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("the cat sat"), 0600))

	app, _ := newTestApp(t, path, filepath.Join(dir, "missing.txt"))

	msg := app.loadCorpusCmd()()
	loaded, ok := msg.(messages.CorpusLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Len(t, loaded.Report.Loaded, 1)
	assert.Len(t, loaded.Report.Failures, 1)

	model, _ := app.Update(msg)
	app = model.(*App)
	assert.Equal(t, 1, app.docCount)
	assert.Contains(t, app.statusLine(), "1 documents loaded, 1 failed")
}

func TestApp_SearchFlow(t *testing.T) {
	app, session := newTestApp(t)
	_, err := session.Ingest(context.Background(), []byte("the cat sat on the mat"), "doc1.txt")
	require.NoError(t, err)

	app.input.SetValue("sat")
	_, cmd := app.handleSearchKey(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)

	model, _ := app.Update(cmd())
	app = model.(*App)

	require.NotNil(t, app.report)
	assert.Len(t, app.report.Matches, 1)
	assert.Contains(t, app.statusLine(), "1 matches in 1 documents")
	assert.Contains(t, app.View(), "doc1.txt:1")
}

func TestApp_SearchErrorIsShown(t *testing.T) {
	app, session := newTestApp(t)
	_, err := session.Ingest(context.Background(), []byte("content"), "doc1.txt")
	require.NoError(t, err)

	app.opts.IsRegex = true
	app.input.SetValue("[x")
	_, cmd := app.handleSearchKey(keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)

	model, _ := app.Update(cmd())
	app = model.(*App)

	require.Error(t, app.err)
	assert.Contains(t, app.View(), "error:")
}

func TestApp_ResultNavigation(t *testing.T) {
	app, session := newTestApp(t)
	_, err := session.Ingest(context.Background(), []byte("cat\ncat\ncat"), "doc1.txt")
	require.NoError(t, err)

	report, err := session.Search(context.Background(), "cat", domain.SearchOptions{})
	require.NoError(t, err)
	model, _ := app.Update(messages.SearchCompleted{Report: report})
	app = model.(*App)

	assert.Equal(t, 0, app.selected)

	model, _ = app.handleSearchKey(keyPress(tea.KeyDown))
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.handleSearchKey(keyPress(tea.KeyUp))
	app = model.(*App)
	assert.Equal(t, 0, app.selected)
}

func TestApp_OpenSelectedMatch(t *testing.T) {
	app, session := newTestApp(t)
	_, err := session.Ingest(context.Background(), []byte("one\ntwo\nthree"), "doc1.txt")
	require.NoError(t, err)

	report, err := session.Search(context.Background(), "two", domain.SearchOptions{})
	require.NoError(t, err)
	model, _ := app.Update(messages.SearchCompleted{Report: report})
	app = model.(*App)

	_, cmd := app.handleSearchKey(keyPress(tea.KeyCtrlO))
	require.NotNil(t, cmd)

	model, _ = app.Update(cmd())
	app = model.(*App)

	assert.Equal(t, messages.ViewDocument, app.current)
	require.NotNil(t, app.page)
	assert.Equal(t, "doc1.txt", app.page.DocumentID)
	assert.Equal(t, 2, app.page.Lines[0].Number)
}

func TestApp_AnalyzeScreen(t *testing.T) {
	app, session := newTestApp(t)
	_, err := session.Ingest(context.Background(), []byte("the cat sat on the mat"), "doc1.txt")
	require.NoError(t, err)

	_, cmd := app.handleSearchKey(keyPress(tea.KeyCtrlA))
	require.NotNil(t, cmd)

	model, _ := app.Update(cmd())
	app = model.(*App)

	assert.Equal(t, messages.ViewAnalyze, app.current)
	view := app.View()
	assert.Contains(t, view, "top tokens")
	assert.Contains(t, view, "the")
	assert.Contains(t, view, "TOTAL")

	// esc returns to the search screen.
	model, _ = app.Update(keyPress(tea.KeyEsc))
	app = model.(*App)
	assert.Equal(t, messages.ViewSearch, app.current)
}

func TestApp_OptionToggles(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(keyPress(tea.KeyCtrlR))
	app = model.(*App)
	assert.True(t, app.opts.IsRegex)
	assert.Contains(t, app.modeLine(), "regex")

	model, _ = app.Update(keyPress(tea.KeyCtrlW))
	app = model.(*App)
	assert.True(t, app.opts.WholeWord)

	model, _ = app.Update(keyPress(tea.KeyCtrlY))
	app = model.(*App)
	assert.True(t, app.opts.CaseSensitive)
}

func TestApp_QuitReturnsQuitCmd(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_FileChangedReloadsCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0600))

	app, session := newTestApp(t, path)
	model, _ := app.Update(app.loadCorpusCmd()())
	app = model.(*App)
	require.Equal(t, 1, app.docCount)

	require.NoError(t, os.WriteFile(path, []byte("after edit"), 0600))

	_, cmd := app.Update(messages.FileChanged{Path: path})
	require.NotNil(t, cmd)
	model, _ = app.Update(cmd()) // CorpusLoaded from the reload
	app = model.(*App)

	docs, err := session.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "after edit", docs[0].Text)
}
