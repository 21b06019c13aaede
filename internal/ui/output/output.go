// Package output renders the terminal pane that shows interpreter
// output streamed from a run.
package output

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"slate/internal/ui/styles"
)

// KeyMap defines the scroll bindings for the output pane.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the standard output pane bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end")),
	}
}

// Model accumulates raw run output and renders it through a viewport.
// The pane follows the tail until the user scrolls up; fresh output
// while scrolled up shows a "new output" marker instead of yanking
// the view back down.
type Model struct {
	vp      viewport.Model
	keys    KeyMap
	raw     strings.Builder
	status  string
	failed  bool
	focused bool
	follow  bool
	hasNew  bool
	width   int
	height  int
}

// New creates an empty output pane.
func New() Model {
	return Model{
		vp:     viewport.New(0, 0),
		keys:   DefaultKeyMap(),
		follow: true,
	}
}

// SetSize resizes the viewport and rewraps the accumulated content.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.vp.Width = max(width, 1)
	m.vp.Height = max(height, 1)
	m.refresh()
	return m
}

// Focus enables scroll key handling.
func (m *Model) Focus() { m.focused = true }

// Blur disables scroll key handling.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the pane handles keys.
func (m Model) Focused() bool { return m.focused }

// Clear drops all content, typically at the start of a new run.
func (m Model) Clear() Model {
	m.raw.Reset()
	m.status = ""
	m.failed = false
	m.follow = true
	m.hasNew = false
	m.refresh()
	return m
}

// Append adds a raw chunk of interpreter output. Chunks arrive in
// arbitrary sizes and are stored verbatim; wrapping happens at render.
func (m Model) Append(chunk []byte) Model {
	m.raw.Write(chunk)
	if !m.follow {
		m.hasNew = true
	}
	m.refresh()
	return m
}

// SetStatus records the final run status line shown after the output.
func (m Model) SetStatus(message string, failed bool) Model {
	m.status = message
	m.failed = failed
	m.refresh()
	return m
}

// Empty reports whether the pane has no content at all.
func (m Model) Empty() bool {
	return m.raw.Len() == 0 && m.status == ""
}

// Update handles scroll keys when focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.vp.ScrollUp(1)
		m.follow = false
	case key.Matches(keyMsg, m.keys.Down):
		m.vp.ScrollDown(1)
		if m.vp.AtBottom() {
			m.follow = true
			m.hasNew = false
		}
	case key.Matches(keyMsg, m.keys.PageUp):
		m.vp.PageUp()
		m.follow = false
	case key.Matches(keyMsg, m.keys.PageDown):
		m.vp.PageDown()
		if m.vp.AtBottom() {
			m.follow = true
			m.hasNew = false
		}
	case key.Matches(keyMsg, m.keys.Bottom):
		m.vp.GotoBottom()
		m.follow = true
		m.hasNew = false
	}
	return m, nil
}

// HasNewOutput reports whether output arrived while scrolled up.
func (m Model) HasNewOutput() bool {
	return m.hasNew
}

// refresh rebuilds the viewport content from the raw stream.
func (m *Model) refresh() {
	m.vp.SetContent(m.content())
	if m.follow {
		m.vp.GotoBottom()
	}
}

func (m *Model) content() string {
	var sb strings.Builder

	if m.raw.Len() == 0 && m.status == "" {
		return styles.MutedStyle.Render("no output yet, press run to execute the current file")
	}

	text := m.raw.String()
	if m.vp.Width > 1 {
		text = wordwrap.String(text, m.vp.Width)
	}
	sb.WriteString(text)

	if m.status != "" {
		if !strings.HasSuffix(sb.String(), "\n") && sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if m.failed {
			sb.WriteString(styles.StatusFailureStyle.Render(m.status))
		} else {
			sb.WriteString(styles.StatusSuccessStyle.Render(m.status))
		}
	}
	return sb.String()
}

// View renders the pane.
func (m Model) View() string {
	return m.vp.View()
}
