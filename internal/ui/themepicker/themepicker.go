// Package themepicker provides the theme selection overlay with live
// preview: moving the cursor applies the highlighted preset
// immediately, and cancelling restores the previous one.
package themepicker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slate/internal/log"
	"slate/internal/ui/overlay"
	"slate/internal/ui/styles"
)

// ApplyMsg is sent when the user confirms a preset.
type ApplyMsg struct {
	Preset string
}

// CancelMsg is sent when the user backs out. The previous preset has
// already been re-applied.
type CancelMsg struct{}

// Model holds the picker state.
type Model struct {
	presets        []string
	cursor         int
	previous       string
	viewportWidth  int
	viewportHeight int
}

// New creates a picker listing every preset, with the cursor on the
// currently active one.
func New(current string) Model {
	presets := styles.PresetNames()
	m := Model{presets: presets, previous: current}
	for i, name := range presets {
		if name == current {
			m.cursor = i
		}
	}
	return m
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// Selected returns the preset under the cursor.
func (m Model) Selected() string {
	if m.cursor >= 0 && m.cursor < len(m.presets) {
		return m.presets[m.cursor]
	}
	return ""
}

// Update handles navigation, confirmation, and cancellation. Cursor
// movement previews the highlighted preset right away.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down", "ctrl+n":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
			m.preview()
		}
	case "k", "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			m.preview()
		}
	case "enter":
		preset := m.Selected()
		return m, func() tea.Msg { return ApplyMsg{Preset: preset} }
	case "esc", "q":
		m.applyPreset(m.previous)
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, nil
}

func (m Model) preview() {
	m.applyPreset(m.Selected())
}

func (m Model) applyPreset(preset string) {
	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: preset}); err != nil {
		log.ErrorErr(log.CatUI, "failed to apply theme preset", err, "preset", preset)
	}
}

// View renders the picker box.
func (m Model) View() string {
	const boxWidth = 28

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)

	var options strings.Builder
	for i, name := range m.presets {
		desc := ""
		if preset, ok := styles.Presets[name]; ok {
			desc = preset.Description
		}

		if i == m.cursor {
			label := lipgloss.NewStyle().Bold(true).Render(name)
			options.WriteString("> " + label)
		} else {
			options.WriteString("  " + name)
		}
		if desc != "" {
			options.WriteString(styles.MutedStyle.Render(" · " + desc))
		}
		if i < len(m.presets)-1 {
			options.WriteString("\n")
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth)

	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	content := titleStyle.Render("Theme") + "\n" +
		divider + "\n" +
		options.String()

	return boxStyle.Render(content)
}

// Overlay renders the picker centered on top of the background view.
func (m Model) Overlay(background string) string {
	if background == "" {
		return lipgloss.Place(
			m.viewportWidth, m.viewportHeight,
			lipgloss.Center, lipgloss.Center,
			m.View(),
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.viewportWidth,
		Height:   m.viewportHeight,
		Position: overlay.Center,
	}, m.View(), background)
}
