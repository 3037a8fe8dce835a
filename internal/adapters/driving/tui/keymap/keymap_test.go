package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Equal(t, []string{"ctrl+c"}, keys.Quit.Keys())
	assert.Equal(t, []string{"enter"}, keys.Submit.Keys())
	assert.Equal(t, []string{"esc"}, keys.Back.Keys())
}

func TestMatches(t *testing.T) {
	keys := DefaultKeyMap()

	enter := tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	assert.True(t, Matches(enter, keys.Submit))
	assert.False(t, Matches(enter, keys.Quit))
	assert.True(t, Matches(enter, keys.Quit, keys.Submit))
}

func TestHelpGroups(t *testing.T) {
	keys := DefaultKeyMap()

	assert.NotEmpty(t, keys.ShortHelp())
	for _, group := range keys.FullHelp() {
		assert.NotEmpty(t, group)
	}
}
