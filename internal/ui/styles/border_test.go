package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWithTitleBorder_Dimensions(t *testing.T) {
	out := RenderWithTitleBorder("hello", "Editor", 20, 5, false, OverlayTitleColor, BorderFocusColor)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
}

func TestRenderWithTitleBorder_ContainsTitle(t *testing.T) {
	out := RenderWithTitleBorder("body", "Output", 30, 4, true, OverlayTitleColor, BorderFocusColor)
	assert.Contains(t, out, "Output")
	assert.Contains(t, out, "body")
}

func TestRenderWithTitleBorder_TruncatesLongTitle(t *testing.T) {
	out := RenderWithTitleBorder("x", strings.Repeat("a", 50), 16, 3, false, OverlayTitleColor, BorderFocusColor)

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, 16, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[0], "...")
}

func TestRenderWithTitleBorder_TinyDimensions(t *testing.T) {
	// Must not panic or produce negative repeats
	out := RenderWithTitleBorder("content", "T", 2, 1, false, OverlayTitleColor, BorderFocusColor)
	assert.NotEmpty(t, out)
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "hello", TruncateString("hello", 10))
	assert.Equal(t, "he...", TruncateString("hello world", 5))
	assert.Equal(t, "..", TruncateString("hello", 2))
	assert.Equal(t, "", TruncateString("hello", 0))
}
