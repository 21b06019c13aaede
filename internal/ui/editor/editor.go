package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/buffer"
)

// KeyMap defines the keybindings handled inside the editing area.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	LineStart key.Binding
	LineEnd   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding

	Indent    key.Binding
	Outdent   key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Enter     key.Binding
	Undo      key.Binding
	Redo      key.Binding
}

// DefaultKeyMap returns the default editing keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		LineStart: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("home", "line start"),
		),
		LineEnd: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("end", "line end"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Indent: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "indent"),
		),
		Outdent: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "outdent"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete left"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new line"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "redo"),
		),
	}
}

// Model is a line-numbered, syntax-highlighted text editing component.
// The cursor column is a grapheme index into the current line.
type Model struct {
	buf   *buffer.Buffer
	lexer SyntaxLexer
	keys  KeyMap

	cursorRow int
	cursorCol int

	width  int
	height int
	scroll int

	focused         bool
	showLineNumbers bool
}

// New creates an editor over an empty buffer. lexer may be nil for
// plain-text editing.
func New(lexer SyntaxLexer) Model {
	return Model{
		buf:             buffer.New(),
		lexer:           lexer,
		keys:            DefaultKeyMap(),
		showLineNumbers: true,
	}
}

// SetBuffer swaps the underlying buffer and resets the cursor.
func (m *Model) SetBuffer(b *buffer.Buffer) {
	m.buf = b
	m.cursorRow = 0
	m.cursorCol = 0
	m.scroll = 0
}

// Buffer returns the underlying buffer.
func (m Model) Buffer() *buffer.Buffer {
	return m.buf
}

// SetLexer swaps the syntax lexer (theme changes rebuild lexer styles).
func (m *Model) SetLexer(lexer SyntaxLexer) {
	m.lexer = lexer
}

// SetSize sets the visible dimensions in terminal cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// SetShowLineNumbers toggles the gutter.
func (m *Model) SetShowLineNumbers(show bool) {
	m.showLineNumbers = show
}

// Focus enables key handling and cursor display.
func (m *Model) Focus() {
	m.focused = true
}

// Blur disables key handling and cursor display.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the editor has focus.
func (m Model) Focused() bool {
	return m.focused
}

// CursorPosition returns the cursor as (row, grapheme column), both
// 0-indexed.
func (m Model) CursorPosition() (int, int) {
	return m.cursorRow, m.cursorCol
}

// GotoLine moves the cursor to the start of 1-indexed line n.
// Out-of-range lines return buffer.OutOfRangeError.
func (m *Model) GotoLine(n int) error {
	pos, err := m.buf.GotoLine(n)
	if err != nil {
		return err
	}
	m.cursorRow = pos.Row
	m.cursorCol = 0
	m.ensureCursorVisible()
	return nil
}

// bytePos converts the cursor to the buffer's byte-offset position.
func (m Model) bytePos() buffer.Position {
	line := m.buf.Line(m.cursorRow)
	return buffer.Position{
		Row: m.cursorRow,
		Col: byteOffsetOfGrapheme(line, m.cursorCol),
	}
}

// Update handles key input. Non-key messages are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursorRow(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursorRow(1)
	case key.Matches(keyMsg, m.keys.Left):
		m.moveCursorLeft()
	case key.Matches(keyMsg, m.keys.Right):
		m.moveCursorRight()
	case key.Matches(keyMsg, m.keys.LineStart):
		m.cursorCol = 0
	case key.Matches(keyMsg, m.keys.LineEnd):
		m.cursorCol = graphemeCount(m.buf.Line(m.cursorRow))
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorRow(-m.pageSize())
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorRow(m.pageSize())
	case key.Matches(keyMsg, m.keys.Enter):
		pos := m.buf.InsertNewline(m.bytePos())
		m.cursorRow = pos.Row
		m.cursorCol = graphemeIndexAtByte(m.buf.Line(pos.Row), pos.Col)
	case key.Matches(keyMsg, m.keys.Indent):
		m.buf.IndentLine(m.cursorRow)
		m.cursorCol += buffer.IndentWidth
	case key.Matches(keyMsg, m.keys.Outdent):
		if m.buf.OutdentLine(m.cursorRow) {
			m.cursorCol = max(0, m.cursorCol-buffer.IndentWidth)
		}
	case key.Matches(keyMsg, m.keys.Backspace):
		m.deleteBackward()
	case key.Matches(keyMsg, m.keys.Delete):
		m.deleteForward()
	case key.Matches(keyMsg, m.keys.Undo):
		if m.buf.Undo() {
			m.clampCursor()
		}
	case key.Matches(keyMsg, m.keys.Redo):
		if m.buf.Redo() {
			m.clampCursor()
		}
	default:
		if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt {
			m.insertRunes(keyMsg.Runes)
		} else if keyMsg.Type == tea.KeySpace {
			m.insertRunes([]rune{' '})
		}
	}

	m.ensureCursorVisible()
	return m, nil
}

func (m *Model) insertRunes(runes []rune) {
	text := string(runes)
	if strings.ContainsRune(text, '\n') {
		// Pasted multi-line text arrives as runes; split on newlines so
		// each segment lands on its own line.
		parts := strings.Split(text, "\n")
		for i, part := range parts {
			if i > 0 {
				pos := m.buf.InsertNewline(m.bytePos())
				m.cursorRow = pos.Row
				m.cursorCol = graphemeIndexAtByte(m.buf.Line(pos.Row), pos.Col)
			}
			if part != "" {
				m.buf.Insert(m.bytePos(), part)
				m.cursorCol += graphemeCount(part)
			}
		}
		return
	}

	m.buf.Insert(m.bytePos(), text)
	m.cursorCol += graphemeCount(text)
}

func (m *Model) deleteBackward() {
	if m.cursorCol > 0 {
		line := m.buf.Line(m.cursorRow)
		start := byteOffsetOfGrapheme(line, m.cursorCol-1)
		end := byteOffsetOfGrapheme(line, m.cursorCol)
		m.buf.DeleteRange(buffer.Position{Row: m.cursorRow, Col: start}, end-start)
		m.cursorCol--
		return
	}
	if m.cursorRow > 0 {
		pos := m.buf.JoinWithPrevious(m.cursorRow)
		m.cursorRow = pos.Row
		m.cursorCol = graphemeIndexAtByte(m.buf.Line(pos.Row), pos.Col)
	}
}

func (m *Model) deleteForward() {
	line := m.buf.Line(m.cursorRow)
	if m.cursorCol < graphemeCount(line) {
		start := byteOffsetOfGrapheme(line, m.cursorCol)
		end := byteOffsetOfGrapheme(line, m.cursorCol+1)
		m.buf.DeleteRange(buffer.Position{Row: m.cursorRow, Col: start}, end-start)
		return
	}
	if m.cursorRow < m.buf.LineCount()-1 {
		m.buf.JoinWithPrevious(m.cursorRow + 1)
	}
}

func (m *Model) moveCursorRow(delta int) {
	m.cursorRow = clamp(m.cursorRow+delta, 0, m.buf.LineCount()-1)
	m.cursorCol = min(m.cursorCol, graphemeCount(m.buf.Line(m.cursorRow)))
}

func (m *Model) moveCursorLeft() {
	if m.cursorCol > 0 {
		m.cursorCol--
		return
	}
	if m.cursorRow > 0 {
		m.cursorRow--
		m.cursorCol = graphemeCount(m.buf.Line(m.cursorRow))
	}
}

func (m *Model) moveCursorRight() {
	if m.cursorCol < graphemeCount(m.buf.Line(m.cursorRow)) {
		m.cursorCol++
		return
	}
	if m.cursorRow < m.buf.LineCount()-1 {
		m.cursorRow++
		m.cursorCol = 0
	}
}

func (m *Model) clampCursor() {
	m.cursorRow = clamp(m.cursorRow, 0, m.buf.LineCount()-1)
	m.cursorCol = clamp(m.cursorCol, 0, graphemeCount(m.buf.Line(m.cursorRow)))
}

func (m *Model) pageSize() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}

func (m *Model) ensureCursorVisible() {
	if m.height <= 0 {
		return
	}
	if m.cursorRow < m.scroll {
		m.scroll = m.cursorRow
	}
	if m.cursorRow >= m.scroll+m.height {
		m.scroll = m.cursorRow - m.height + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxScroll := m.buf.LineCount() - 1
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.scroll = clamp(m.scroll, 0, maxScroll)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
