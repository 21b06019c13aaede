// Package toaster renders transient notification toasts over the main view.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slate/internal/ui/overlay"
	"slate/internal/ui/styles"
)

// Level selects the toast's icon and border color.
type Level int

const (
	// LevelSuccess shows ✅ with the success border color.
	LevelSuccess Level = iota
	// LevelError shows ❌ with the error border color.
	LevelError
	// LevelInfo shows ℹ️ with the info border color.
	LevelInfo
	// LevelWarn shows ⚠️ with the warning border color.
	LevelWarn
)

// DefaultDuration is how long a toast stays up before auto-dismissing.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state. A zero Model is hidden.
type Model struct {
	message string
	level   Level
	visible bool
	width   int
	height  int
	gen     int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays a toast and schedules its dismissal. The returned
// command must be run for the toast to auto-dismiss.
func (m Model) Show(message string, level Level) (Model, tea.Cmd) {
	m.message = message
	m.level = level
	m.visible = true
	m.gen++
	gen := m.gen
	return m, tea.Tick(DefaultDuration, func(_ time.Time) tea.Msg {
		return DismissMsg{gen: gen}
	})
}

// Hide dismisses the toast immediately.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// SetSize records the viewport dimensions for overlay positioning.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles dismiss timing. A DismissMsg from a superseded Show
// is ignored so a newer toast keeps its full duration.
func (m Model) Update(msg tea.Msg) Model {
	if dm, ok := msg.(DismissMsg); ok && dm.gen == m.gen {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	icon, border := m.decor()
	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)

	return box.Render(icon + " " + m.message)
}

func (m Model) decor() (string, lipgloss.AdaptiveColor) {
	switch m.level {
	case LevelError:
		return "❌", styles.ToastBorderErrorColor
	case LevelInfo:
		return "ℹ️", styles.ToastBorderInfoColor
	case LevelWarn:
		return "⚠️", styles.ToastBorderWarnColor
	default:
		return "✅", styles.ToastBorderSuccessColor
	}
}

// Overlay places the toast bottom-center on top of the background view.
func (m Model) Overlay(bg string) string {
	if !m.visible || m.message == "" {
		return bg
	}

	cfg := overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Bottom,
		PadY:     1,
	}
	return overlay.Place(cfg, m.View(), bg)
}

// DismissMsg signals that the toast's display time elapsed.
type DismissMsg struct {
	gen int
}
