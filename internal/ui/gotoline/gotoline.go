// Package gotoline provides the jump-to-line input overlay.
package gotoline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slate/internal/ui/overlay"
	"slate/internal/ui/styles"
)

// SubmitMsg is sent when the user confirms a line number. The number
// is already validated against the buffer's line count.
type SubmitMsg struct {
	Line int
}

// CancelMsg is sent when the user dismisses the overlay.
type CancelMsg struct{}

// Model holds the goto-line input state.
type Model struct {
	input     textinput.Model
	lineCount int
	errText   string
	width     int
	height    int
}

// New creates the overlay for a buffer with the given line count.
func New(lineCount int) Model {
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("1-%d", lineCount)
	input.CharLimit = 7
	input.Width = 12
	input.Prompt = ""
	input.Focus()

	return Model{input: input, lineCount: lineCount}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles input and confirmation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, func() tea.Msg { return CancelMsg{} }
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errText = ""
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	line, err := strconv.Atoi(raw)
	if err != nil {
		m.errText = "enter a line number"
		return m, nil
	}
	if line < 1 || line > m.lineCount {
		m.errText = fmt.Sprintf("line must be between 1 and %d", m.lineCount)
		return m, nil
	}
	return m, func() tea.Msg { return SubmitMsg{Line: line} }
}

// View renders the input box.
func (m Model) View() string {
	title := styles.OverlayTitleStyle.Render("Go to line")

	var body strings.Builder
	body.WriteString(title)
	body.WriteString("\n")
	body.WriteString(m.input.View())
	if m.errText != "" {
		body.WriteString("\n")
		body.WriteString(styles.StatusFailureStyle.Render(m.errText))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(0, 1)

	return box.Render(body.String())
}

// Overlay renders the input centered on top of the background view.
func (m Model) Overlay(background string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), background)
}
