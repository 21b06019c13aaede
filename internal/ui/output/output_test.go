package output

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSized() Model {
	return New().SetSize(40, 5)
}

func TestAppend_ShowsChunks(t *testing.T) {
	m := newSized()
	m = m.Append([]byte("hello "))
	m = m.Append([]byte("world\n"))

	assert.Contains(t, m.View(), "hello world")
	assert.False(t, m.Empty())
}

func TestEmptyPane_ShowsPlaceholder(t *testing.T) {
	m := newSized()
	assert.Contains(t, m.View(), "no output yet")
	assert.True(t, m.Empty())
}

func TestClear_DropsContent(t *testing.T) {
	m := newSized()
	m = m.Append([]byte("stale\n"))
	m = m.SetStatus("run completed (exit code 0)", false)
	m = m.Clear()

	assert.True(t, m.Empty())
	assert.NotContains(t, m.View(), "stale")
}

func TestSetStatus_AppendsAfterOutput(t *testing.T) {
	m := newSized()
	m = m.Append([]byte("result\n"))
	m = m.SetStatus("run failed (exit code 2)", true)

	view := m.View()
	assert.Contains(t, view, "run failed (exit code 2)")
}

func TestFollowsTailByDefault(t *testing.T) {
	m := newSized()
	for i := range 30 {
		m = m.Append(fmt.Appendf(nil, "line %d\n", i))
	}

	view := m.View()
	assert.Contains(t, view, "line 29")
	assert.NotContains(t, view, "line 0\n")
}

func TestScrollUp_StopsFollowing(t *testing.T) {
	m := newSized()
	m.Focus()
	for i := range 30 {
		m = m.Append(fmt.Appendf(nil, "line %d\n", i))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	m = m.Append([]byte("line 30\n"))

	assert.True(t, m.HasNewOutput())
	assert.NotContains(t, m.View(), "line 30")
}

func TestGotoBottom_ResumesFollowing(t *testing.T) {
	m := newSized()
	m.Focus()
	for i := range 30 {
		m = m.Append(fmt.Appendf(nil, "line %d\n", i))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	m = m.Append([]byte("line 30\n"))

	assert.False(t, m.HasNewOutput())
	assert.Contains(t, m.View(), "line 30")
}

func TestIgnoresKeysWhenBlurred(t *testing.T) {
	m := newSized()
	for i := range 30 {
		m = m.Append(fmt.Appendf(nil, "line %d\n", i))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Contains(t, m.View(), "line 29")
}

func TestLongLinesWrapToWidth(t *testing.T) {
	m := newSized()
	m = m.Append([]byte(strings.Repeat("abc ", 30) + "\n"))

	for _, line := range strings.Split(m.View(), "\n") {
		require.LessOrEqual(t, len(line), 40)
	}
}
