package gotoline

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeDigits(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSubmit_ValidLine(t *testing.T) {
	m := typeDigits(New(100), "42")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	assert.Equal(t, 42, msg.Line)
}

func TestSubmit_OutOfRangeShowsError(t *testing.T) {
	m := typeDigits(New(10), "11")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "between 1 and 10")
}

func TestSubmit_ZeroIsRejected(t *testing.T) {
	m := typeDigits(New(10), "0")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "between 1 and 10")
}

func TestSubmit_NonNumericShowsError(t *testing.T) {
	m := typeDigits(New(10), "abc")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "enter a line number")
}

func TestEsc_Cancels(t *testing.T) {
	m := New(10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	_, ok := cmd().(CancelMsg)
	assert.True(t, ok)
}

func TestTyping_ClearsPreviousError(t *testing.T) {
	m := typeDigits(New(10), "99")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Contains(t, m.View(), "between")

	m = typeDigits(m, "5")
	assert.NotContains(t, m.View(), "between")
}

func TestView_ShowsTitleAndRange(t *testing.T) {
	view := New(25).View()
	assert.Contains(t, view, "Go to line")
	assert.Contains(t, view, "1-25")
}
