package themepicker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/internal/ui/styles"
)

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		require.NoError(t, styles.ApplyTheme(styles.ThemeConfig{}))
	})
}

func TestNew_CursorStartsOnCurrentPreset(t *testing.T) {
	m := New("midnight")
	assert.Equal(t, "midnight", m.Selected())
}

func TestUpdate_NavigationPreviewsPreset(t *testing.T) {
	resetTheme(t)

	m := New(styles.PresetNames()[0])
	before := styles.SyntaxKeywordColor

	m, _ = m.Update(key("j"))

	selected := m.Selected()
	want := styles.Presets[selected].Colors[styles.TokenSyntaxKeyword]
	assert.Equal(t, want, styles.SyntaxKeywordColor.Dark)
	assert.NotEqual(t, before, styles.SyntaxKeywordColor)
}

func TestUpdate_EnterEmitsApply(t *testing.T) {
	resetTheme(t)

	m := New("default")
	m, _ = m.Update(key("j"))
	selected := m.Selected()

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	msg := cmd()
	apply, ok := msg.(ApplyMsg)
	require.True(t, ok)
	assert.Equal(t, selected, apply.Preset)
}

func TestUpdate_EscRestoresPrevious(t *testing.T) {
	resetTheme(t)

	m := New("default")
	m, _ = m.Update(key("j"))

	_, cmd := m.Update(key("esc"))
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelMsg)
	assert.True(t, ok)

	want := styles.Presets["default"].Colors[styles.TokenSyntaxKeyword]
	assert.Equal(t, want, styles.SyntaxKeywordColor.Dark)
}

func TestUpdate_CursorClampsAtEnds(t *testing.T) {
	resetTheme(t)

	m := New(styles.PresetNames()[0])
	m, _ = m.Update(key("k"))
	assert.Equal(t, styles.PresetNames()[0], m.Selected())

	for range 20 {
		m, _ = m.Update(key("j"))
	}
	names := styles.PresetNames()
	assert.Equal(t, names[len(names)-1], m.Selected())
}

func TestView_ListsAllPresets(t *testing.T) {
	m := New("default")
	view := m.View()

	for _, name := range styles.PresetNames() {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "Theme")
}
