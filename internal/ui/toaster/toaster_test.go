package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_MakesVisible(t *testing.T) {
	m, cmd := New().Show("saved main.py", LevelSuccess)

	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "saved main.py")
	assert.Contains(t, m.View(), "✅")
}

func TestHide_ClearsToast(t *testing.T) {
	m, _ := New().Show("oops", LevelError)
	m = m.Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestView_IconsPerLevel(t *testing.T) {
	cases := []struct {
		level Level
		icon  string
	}{
		{LevelSuccess, "✅"},
		{LevelError, "❌"},
		{LevelInfo, "ℹ️"},
		{LevelWarn, "⚠️"},
	}

	for _, tc := range cases {
		m, _ := New().Show("msg", tc.level)
		assert.Contains(t, m.View(), tc.icon)
	}
}

func TestUpdate_DismissesOnMatchingGen(t *testing.T) {
	m, _ := New().Show("bye", LevelInfo)
	m = m.Update(DismissMsg{gen: 1})

	assert.False(t, m.Visible())
}

func TestUpdate_IgnoresStaleDismiss(t *testing.T) {
	m, _ := New().Show("first", LevelInfo)
	m, _ = m.Show("second", LevelInfo)

	// Dismiss scheduled by the first Show must not hide the second toast.
	m = m.Update(DismissMsg{gen: 1})
	assert.True(t, m.Visible())

	m = m.Update(DismissMsg{gen: 2})
	assert.False(t, m.Visible())
}

func TestOverlay_PlacesToastNearBottom(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")

	m, _ := New().Show("hello", LevelSuccess)
	m = m.SetSize(40, 10)

	out := m.Overlay(bg)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, out, "hello")
	// Top rows stay untouched.
	assert.Equal(t, strings.Repeat(".", 40), lines[0])
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	bg := "unchanged"
	assert.Equal(t, bg, New().Overlay(bg))
}
