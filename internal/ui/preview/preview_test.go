package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RendersMarkdown(t *testing.T) {
	m, err := New("README.md", "# Title\n\nsome text\n", 100, 40)
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "README.md")
	assert.Contains(t, view, "Title")
}

func TestUpdate_EscCloses(t *testing.T) {
	m, err := New("doc.md", "hello\n", 100, 40)
	require.NoError(t, err)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CloseMsg)
	assert.True(t, ok)
}

func TestUpdate_ScrollKeysDoNotClose(t *testing.T) {
	m, err := New("doc.md", "hello\n", 100, 40)
	require.NoError(t, err)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Nil(t, cmd)
	_ = m
}
