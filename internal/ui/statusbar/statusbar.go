// Package statusbar renders the single-line footer with file, cursor,
// and run state.
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slate/internal/ui/styles"
)

// Model holds the pieces of the footer line. All fields are optional;
// empty sections collapse.
type Model struct {
	FilePath    string
	Modified    bool
	Line        int
	Col         int
	LineCount   int
	Interpreter string
	ThemeName   string
	Running     bool
	width       int
}

// New creates an empty status bar.
func New() Model {
	return Model{}
}

// SetWidth sets the render width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// View renders the footer: file info on the left, position and
// environment on the right.
func (m Model) View() string {
	left := m.renderFile()
	right := m.renderMeta()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return styles.StatusBarStyle.Width(m.width).Render(line)
}

func (m Model) renderFile() string {
	if m.FilePath == "" {
		return styles.MutedStyle.Render("[no file]")
	}

	name := filepath.Base(m.FilePath)
	if m.Modified {
		name += " ●"
	}
	return name
}

func (m Model) renderMeta() string {
	var parts []string

	if m.Running {
		parts = append(parts, styles.StatusSuccessStyle.Render("▶ running"))
	}
	if m.LineCount > 0 {
		parts = append(parts, fmt.Sprintf("%d:%d/%d", m.Line, m.Col, m.LineCount))
	}
	if m.Interpreter != "" {
		parts = append(parts, m.Interpreter)
	}
	if m.ThemeName != "" {
		parts = append(parts, styles.MutedStyle.Render(m.ThemeName))
	}

	return strings.Join(parts, "  ")
}
