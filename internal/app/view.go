package app

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"slate/internal/ui/styles"
)

const (
	sidebarWidth    = 30
	minOutputHeight = 5
)

// layoutPanes recomputes pane sizes from the window size and sidebar
// visibility.
func (m *Model) layoutPanes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	mainWidth := m.width
	if m.showSidebar && m.tree != nil {
		mainWidth -= sidebarWidth
	}

	// status bar takes one row, the tab bar another
	bodyHeight := m.height - 1
	outputHeight := max(bodyHeight/4, minOutputHeight)
	editorHeight := bodyHeight - outputHeight - 1

	if m.tree != nil {
		m.tree.SetSize(sidebarWidth-2, bodyHeight-2)
	}
	m.editor.SetSize(mainWidth-2, editorHeight-2)
	m.out = m.out.SetSize(mainWidth-2, outputHeight-2)
}

// View renders the full application frame.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	bodyHeight := m.height - 1
	outputHeight := max(bodyHeight/4, minOutputHeight)
	editorHeight := bodyHeight - outputHeight - 1

	mainWidth := m.width
	var columns []string
	if m.showSidebar && m.tree != nil {
		mainWidth -= sidebarWidth
		sidebar := styles.RenderWithTitleBorder(
			m.tree.View(), "Files", sidebarWidth, bodyHeight,
			m.focus == focusSidebar, styles.OverlayTitleColor, styles.BorderFocusColor)
		columns = append(columns, sidebar)
	}

	editorPane := styles.RenderWithTitleBorder(
		m.editor.View(), m.activeTab().name(), mainWidth, editorHeight,
		m.focus == focusEditor, styles.OverlayTitleColor, styles.BorderFocusColor)

	outputTitle := "Output"
	if m.out.HasNewOutput() {
		outputTitle = "Output ●"
	}
	outputPane := styles.RenderWithTitleBorder(
		m.out.View(), outputTitle, mainWidth, outputHeight,
		m.focus == focusOutput, styles.OverlayTitleColor, styles.BorderFocusColor)

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabBar(mainWidth), editorPane, outputPane)
	columns = append(columns, main)

	frame := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		m.status.View())

	frame = m.toast.Overlay(frame)
	frame = m.logs.Overlay(frame)

	switch m.overlay {
	case overlayGoto:
		frame = m.gotoOverlay.Overlay(frame)
	case overlayTheme:
		frame = m.themeOverlay.Overlay(frame)
	case overlayHelp:
		frame = m.helpOverlay.Overlay(frame)
	case overlayConfirm, overlayNewFile:
		frame = m.modalOverlay.Overlay(frame)
	case overlayPreview:
		frame = m.previewOverlay.Overlay(frame)
	}

	return zone.Scan(frame)
}

// renderTabBar draws one clickable label per open tab.
func (m *Model) renderTabBar(width int) string {
	var parts []string
	for i, t := range m.tabs {
		label := t.name()
		if t.buf.Modified() {
			label += " ●"
		}
		style := styles.TabInactiveStyle
		if i == m.active {
			style = styles.TabActiveStyle
		}
		parts = append(parts, zone.Mark(tabZoneID(i), style.Render(label)))
	}

	bar := strings.Join(parts, styles.MutedStyle.Render("│"))
	return lipgloss.NewStyle().Width(width).Render(bar)
}

func tabZoneID(i int) string {
	return "tab-" + strconv.Itoa(i)
}

// handleMouse activates tabs on left click.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if m.overlay != overlayNone || m.logs.Visible() {
		return m, nil
	}

	for i := range m.tabs {
		if z := zone.Get(tabZoneID(i)); z != nil && z.InBounds(msg) {
			m.activateTab(i)
			return m, nil
		}
	}
	return m, nil
}
