// Package help contains the keybinding reference overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"slate/internal/keys"
	"slate/internal/ui/overlay"
	"slate/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.SidebarForegroundColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// Model holds the help view state.
type Model struct {
	width  int
	height int
}

// New creates a help view.
func New() Model {
	return Model{}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay standalone.
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var fileCol strings.Builder
	fileCol.WriteString(sectionStyle.Render("Files"))
	fileCol.WriteString("\n")
	fileCol.WriteString(renderBinding(keys.Global.Save))
	fileCol.WriteString(renderBinding(keys.Global.NewFile))
	fileCol.WriteString(renderBinding(keys.Global.NextTab))
	fileCol.WriteString(renderBinding(keys.Global.PrevTab))
	fileCol.WriteString(renderBinding(keys.Global.CloseTab))
	fileCol.WriteString(renderBinding(keys.Global.Encrypt))
	fileCol.WriteString(renderBinding(keys.Global.Preview))

	var runCol strings.Builder
	runCol.WriteString(sectionStyle.Render("Run"))
	runCol.WriteString("\n")
	runCol.WriteString(renderBinding(keys.Global.Run))
	runCol.WriteString(renderBinding(keys.Global.CancelRun))
	runCol.WriteString(renderBinding(keys.Global.CheckSyntax))

	var editCol strings.Builder
	editCol.WriteString(sectionStyle.Render("Editor"))
	editCol.WriteString("\n")
	editCol.WriteString(renderKeyDesc("tab", "indent line"))
	editCol.WriteString(renderKeyDesc("shift+tab", "outdent line"))
	editCol.WriteString(renderKeyDesc("ctrl+z", "undo"))
	editCol.WriteString(renderKeyDesc("ctrl+y", "redo"))
	editCol.WriteString(renderBinding(keys.Global.GotoLine))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(keys.Global.CyclePane))
	generalCol.WriteString(renderBinding(keys.Global.ToggleSidebar))
	generalCol.WriteString(renderBinding(keys.Global.ToggleHidden))
	generalCol.WriteString(renderBinding(keys.Global.ThemePicker))
	generalCol.WriteString(renderBinding(keys.Global.ToggleLogs))
	generalCol.WriteString(renderBinding(keys.Global.Help))
	generalCol.WriteString(renderBinding(keys.Global.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(fileCol.String()),
		columnStyle.Render(runCol.String()),
		columnStyle.Render(editCol.String()),
		generalCol.String(),
	)

	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press F1 or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
