package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate/internal/buffer"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func newFocused(text string) Model {
	m := New(nil)
	m.SetBuffer(buffer.FromText(text))
	m.SetSize(80, 24)
	m.Focus()
	return m
}

func TestEditor_TypeText(t *testing.T) {
	m := newFocused("")
	m = typeString(m, "x = 1")

	assert.Equal(t, "x = 1", m.Buffer().Text())
	row, col := m.CursorPosition()
	assert.Equal(t, 0, row)
	assert.Equal(t, 5, col)
}

func TestEditor_EnterAutoIndents(t *testing.T) {
	m := newFocused("")
	m = typeString(m, "def foo():")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, 2, m.Buffer().LineCount())
	assert.Equal(t, "    ", m.Buffer().Line(1))
	row, col := m.CursorPosition()
	assert.Equal(t, 1, row)
	assert.Equal(t, 4, col)
}

func TestEditor_TabIndentsLine(t *testing.T) {
	m := newFocused("x = 1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "    x = 1", m.Buffer().Line(0))
	_, col := m.CursorPosition()
	assert.Equal(t, 4, col)
}

func TestEditor_ShiftTabOutdents(t *testing.T) {
	m := newFocused("    x = 1")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "x = 1", m.Buffer().Line(0))

	// Below one indent level it is a no-op
	m.SetBuffer(buffer.FromText("  y"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "  y", m.Buffer().Line(0))
}

func TestEditor_BackspaceJoinsLines(t *testing.T) {
	m := newFocused("foo\nbar")
	require.NoError(t, m.GotoLine(2))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "foobar", m.Buffer().Line(0))
	row, col := m.CursorPosition()
	assert.Equal(t, 0, row)
	assert.Equal(t, 3, col)
}

func TestEditor_BackspaceDeletesGrapheme(t *testing.T) {
	m := newFocused("")
	m = typeString(m, "héllo")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Equal(t, "hél", m.Buffer().Line(0))
	_, col := m.CursorPosition()
	assert.Equal(t, 3, col)
}

func TestEditor_GotoLine(t *testing.T) {
	m := newFocused(strings.Repeat("line\n", 9) + "line")

	require.NoError(t, m.GotoLine(10))
	row, col := m.CursorPosition()
	assert.Equal(t, 9, row)
	assert.Equal(t, 0, col)

	var oor *buffer.OutOfRangeError
	require.ErrorAs(t, m.GotoLine(11), &oor)
	require.ErrorAs(t, m.GotoLine(0), &oor)
}

func TestEditor_UndoRedoKeys(t *testing.T) {
	m := newFocused("")
	m = typeString(m, "ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, "a", m.Buffer().Text())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "ab", m.Buffer().Text())
}

func TestEditor_IgnoresInputWhenBlurred(t *testing.T) {
	m := newFocused("keep")
	m.Blur()
	m = typeString(m, "nope")

	assert.Equal(t, "keep", m.Buffer().Text())
}

func TestEditor_CursorClampsOnShorterLine(t *testing.T) {
	m := newFocused("longer line\nhi")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	row, col := m.CursorPosition()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
}

func TestEditor_ViewShowsLineNumbers(t *testing.T) {
	m := newFocused("alpha\nbeta")
	view := m.View()

	assert.Contains(t, view, "1 ")
	assert.Contains(t, view, "2 ")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "beta")
}

func TestEditor_ViewWithoutLineNumbers(t *testing.T) {
	m := newFocused("alpha")
	m.SetShowLineNumbers(false)
	lines := strings.Split(m.View(), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "alpha") ||
		strings.HasPrefix(lines[0], cursorOn))
}

func TestEditor_ScrollFollowsCursor(t *testing.T) {
	m := newFocused(strings.Repeat("x\n", 49) + "x")
	m.SetSize(20, 10)

	require.NoError(t, m.GotoLine(50))
	view := m.View()
	assert.Contains(t, view, "50 ")
	assert.NotContains(t, view, " 1 x")
}

func TestGraphemeWidths_WideAndNarrow(t *testing.T) {
	assert.Equal(t, []int{1, 1, 1}, graphemeWidths("abc"))
	assert.Equal(t, []int{2, 2, 2}, graphemeWidths("日本語"))
	assert.Nil(t, graphemeWidths(""))
}

func TestEditor_WideLineKeepsCursorVisible(t *testing.T) {
	m := newFocused("日日日日日日日日")
	m.SetSize(10, 3)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	// Eight double-width clusters overflow the pane; the view scrolls
	// left so the end-of-line cursor cell survives truncation.
	view := m.View()
	assert.Contains(t, view, cursorOn+" "+cursorOff)
}
