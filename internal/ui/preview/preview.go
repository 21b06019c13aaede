// Package preview provides a rendered-markdown overlay for the active
// file.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slate/internal/ui/markdown"
	"slate/internal/ui/overlay"
	"slate/internal/ui/styles"
)

const (
	boxMaxWidth  = 100
	boxMinWidth  = 40
	chromeHeight = 6
)

// CloseMsg is sent when the preview should be closed.
type CloseMsg struct{}

// Model is the markdown preview overlay state.
type Model struct {
	title    string
	width    int
	height   int
	viewport viewport.Model
}

// New renders source as markdown and returns a preview sized for the
// given window.
func New(title, source string, width, height int) (Model, error) {
	m := Model{title: title, width: width, height: height}

	boxWidth := m.boxWidth()
	renderer, err := markdown.New(boxWidth - 2)
	if err != nil {
		return m, err
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return m, err
	}

	vpHeight := max(height-chromeHeight, 5)
	m.viewport = viewport.New(boxWidth-2, vpHeight)
	m.viewport.SetContent(strings.TrimRight(rendered, "\n"))
	return m, nil
}

// SetSize updates the window size used for overlay centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles scroll and close keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.viewport.ScrollDown(1)
	case "k", "up":
		m.viewport.ScrollUp(1)
	case "pgdown":
		m.viewport.PageDown()
	case "pgup":
		m.viewport.PageUp()
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	case "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

// View renders the preview box.
func (m Model) View() string {
	boxWidth := m.boxWidth()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))
	footer := styles.MutedStyle.Render(" j/k scroll · esc close")

	var result strings.Builder
	result.WriteString(titleStyle.Render(m.title))
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(m.viewport.View())
	result.WriteString("\n")
	result.WriteString(divider)
	result.WriteString("\n")
	result.WriteString(footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(result.String())
}

// Overlay renders the preview centered on the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
