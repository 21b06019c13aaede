// Package filetree renders the project explorer sidebar: a lazily
// loaded directory tree with cursor navigation and expand/collapse.
package filetree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"slate/internal/log"
	"slate/internal/ui/styles"
)

// Model holds the file tree state. The parent component drives it
// through method calls rather than tea messages.
type Model struct {
	root       *Node
	nodes      []*Node
	cursor     int
	showHidden bool
	width      int
	height     int
	scrollTop  int
}

// New builds a tree rooted at dir with the root expanded one level.
func New(dir string, showHidden bool) (*Model, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	m := &Model{
		root: &Node{
			Name:     filepath.Base(abs),
			Path:     abs,
			IsDir:    true,
			expanded: true,
		},
		showHidden: showHidden,
	}
	if err := m.root.loadChildren(showHidden); err != nil {
		return nil, err
	}
	m.refreshNodes()
	return m, nil
}

// Root returns the absolute path of the tree root.
func (m *Model) Root() string {
	return m.root.Path
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShowHidden reports whether dotfiles are listed.
func (m *Model) ShowHidden() bool {
	return m.showHidden
}

// SetShowHidden toggles dotfile visibility and reloads the tree.
func (m *Model) SetShowHidden(show bool) {
	m.showHidden = show
	m.Refresh()
}

// MoveCursor moves the selection by delta, clamped to the node list.
func (m *Model) MoveCursor(delta int) {
	pos := m.cursor + delta
	pos = min(pos, len(m.nodes)-1)
	pos = max(pos, 0)
	m.cursor = pos
	m.ensureCursorVisible()
}

// SelectedNode returns the node under the cursor, or nil when empty.
func (m *Model) SelectedNode() *Node {
	if m.cursor >= 0 && m.cursor < len(m.nodes) {
		return m.nodes[m.cursor]
	}
	return nil
}

// Activate opens the selected entry. Directories toggle their
// expansion and return an empty path; files return their path for the
// caller to open.
func (m *Model) Activate() (filePath string, err error) {
	node := m.SelectedNode()
	if node == nil {
		return "", nil
	}

	if !node.IsDir {
		return node.Path, nil
	}

	if !node.expanded && !node.loaded {
		if err := node.loadChildren(m.showHidden); err != nil {
			log.ErrorErr(log.CatUI, "failed to read directory", err, "path", node.Path)
			return "", err
		}
	}
	node.expanded = !node.expanded
	m.refreshNodes()
	return "", nil
}

// Collapse closes the selected directory, or moves to the parent when
// the selection is a file or an already-closed directory.
func (m *Model) Collapse() {
	node := m.SelectedNode()
	if node == nil {
		return
	}

	if node.IsDir && node.expanded && node != m.root {
		node.expanded = false
		m.refreshNodes()
		return
	}
	if node.Parent != nil {
		m.SelectPath(node.Parent.Path)
	}
}

// SelectPath moves the cursor to the node with the given path.
// Returns false when the path is not currently visible.
func (m *Model) SelectPath(path string) bool {
	for i, node := range m.nodes {
		if node.Path == path {
			m.cursor = i
			m.ensureCursorVisible()
			return true
		}
	}
	return false
}

// Refresh re-reads every loaded directory from disk, preserving the
// expansion state and cursor position where possible.
func (m *Model) Refresh() {
	selected := ""
	if node := m.SelectedNode(); node != nil {
		selected = node.Path
	}

	m.reload(m.root)
	m.refreshNodes()

	if selected == "" || !m.SelectPath(selected) {
		m.cursor = min(m.cursor, max(len(m.nodes)-1, 0))
	}
}

// reload re-reads node's children and re-applies expansion to
// directories that survived the reload.
func (m *Model) reload(node *Node) {
	if !node.IsDir || !node.loaded {
		return
	}

	expanded := make(map[string]bool, len(node.Children))
	loaded := make(map[string]bool, len(node.Children))
	for _, child := range node.Children {
		expanded[child.Path] = child.expanded
		loaded[child.Path] = child.loaded
	}

	if err := node.loadChildren(m.showHidden); err != nil {
		log.ErrorErr(log.CatUI, "failed to refresh directory", err, "path", node.Path)
		return
	}

	for _, child := range node.Children {
		if child.IsDir && loaded[child.Path] {
			child.expanded = expanded[child.Path]
			m.reload(child)
		}
	}
}

func (m *Model) refreshNodes() {
	m.nodes = m.root.flatten(nil)
	if m.cursor >= len(m.nodes) {
		m.cursor = max(len(m.nodes)-1, 0)
	}
	m.ensureCursorVisible()
}

func (m *Model) viewportHeight() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}

func (m *Model) ensureCursorVisible() {
	vh := m.viewportHeight()
	if vh <= 0 {
		return
	}
	if m.cursor >= m.scrollTop+vh {
		m.scrollTop = m.cursor - vh + 1
	}
	if m.cursor < m.scrollTop {
		m.scrollTop = m.cursor
	}
	maxScroll := max(len(m.nodes)-vh, 0)
	m.scrollTop = min(m.scrollTop, maxScroll)
	m.scrollTop = max(m.scrollTop, 0)
}

// View renders the visible window of the tree.
func (m *Model) View() string {
	if len(m.nodes) == 0 {
		return styles.MutedStyle.Render("empty directory")
	}

	var sb strings.Builder

	vh := m.viewportHeight()
	endIdx := min(m.scrollTop+vh, len(m.nodes))

	if m.scrollTop > 0 {
		sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  ↑ %d more", m.scrollTop)))
		sb.WriteString("\n")
	}

	for i := m.scrollTop; i < endIdx; i++ {
		sb.WriteString(m.renderNode(m.nodes[i], i == m.cursor))
		sb.WriteString("\n")
	}

	if remaining := len(m.nodes) - endIdx; remaining > 0 {
		sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  ↓ %d more", remaining)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m *Model) renderNode(node *Node, selected bool) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("  ", node.Depth))

	switch {
	case node.IsDir && node.expanded:
		sb.WriteString("▾ ")
	case node.IsDir:
		sb.WriteString("▸ ")
	default:
		sb.WriteString("  ")
	}
	sb.WriteString(node.Name)
	if node.IsDir {
		sb.WriteString("/")
	}

	line := sb.String()
	if m.width > 0 && lipgloss.Width(line) > m.width {
		line = styles.TruncateString(line, m.width)
	}

	if selected {
		return styles.SidebarSelectedStyle.Render(line)
	}
	return styles.SidebarStyle.Render(line)
}
