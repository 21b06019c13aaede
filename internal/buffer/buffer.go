// Package buffer holds the line-oriented document model edited by the
// TUI. A buffer always contains at least one line; an empty document is
// a single empty line. All mutation happens on the Bubble Tea event
// loop, so the type is not synchronized.
package buffer

import (
	"fmt"
	"strings"
)

// IndentWidth is the number of spaces one indent level inserts.
const IndentWidth = 4

// maxHistory bounds the undo stack depth.
const maxHistory = 200

// Position addresses a point in the buffer. Row is 0-indexed, Col is a
// byte offset within the line.
type Position struct {
	Row int
	Col int
}

// OutOfRangeError reports a goto-line request outside the buffer.
type OutOfRangeError struct {
	Line  int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("line %d out of range [1, %d]", e.Line, e.Count)
}

// Buffer is an ordered sequence of text lines with snapshot undo/redo.
type Buffer struct {
	lines    []string
	undo     [][]string
	redo     [][]string
	modified bool
}

// New returns an empty buffer containing a single empty line.
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromText returns a buffer holding the given text split on newlines.
func FromText(text string) *Buffer {
	b := New()
	b.setText(text)
	b.modified = false
	return b
}

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at row, or the empty string when row is out of
// bounds.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// SetLine replaces the line at row. Out-of-bounds rows are ignored.
func (b *Buffer) SetLine(row int, text string) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.checkpoint()
	b.lines[row] = text
	b.modified = true
}

// Text returns the full buffer contents joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// SetText replaces the entire contents, recording an undo snapshot.
func (b *Buffer) SetText(text string) {
	b.checkpoint()
	b.setText(text)
	b.modified = true
}

func (b *Buffer) setText(text string) {
	b.lines = strings.Split(text, "\n")
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
}

// Modified reports whether the buffer changed since the last save.
func (b *Buffer) Modified() bool {
	return b.modified
}

// SetModified marks the buffer clean or dirty (saves call this).
func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

// Insert places text (which must not contain newlines) into the line at
// pos. Out-of-bounds positions are clamped to the line.
func (b *Buffer) Insert(pos Position, text string) {
	if pos.Row < 0 || pos.Row >= len(b.lines) || text == "" {
		return
	}
	b.checkpoint()
	line := b.lines[pos.Row]
	col := clamp(pos.Col, 0, len(line))
	b.lines[pos.Row] = line[:col] + text + line[col:]
	b.modified = true
}

// DeleteRange removes n bytes starting at pos within a single line.
func (b *Buffer) DeleteRange(pos Position, n int) {
	if pos.Row < 0 || pos.Row >= len(b.lines) || n <= 0 {
		return
	}
	line := b.lines[pos.Row]
	start := clamp(pos.Col, 0, len(line))
	end := clamp(start+n, start, len(line))
	if start == end {
		return
	}
	b.checkpoint()
	b.lines[pos.Row] = line[:start] + line[end:]
	b.modified = true
}

// JoinWithPrevious appends the line at row to the line above it and
// removes it. Returns the cursor position at the join point.
func (b *Buffer) JoinWithPrevious(row int) Position {
	if row <= 0 || row >= len(b.lines) {
		return Position{Row: clamp(row, 0, len(b.lines)-1)}
	}
	b.checkpoint()
	col := len(b.lines[row-1])
	b.lines[row-1] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.modified = true
	return Position{Row: row - 1, Col: col}
}

// InsertNewline splits the line at pos and auto-indents the new line:
// the current line's leading spaces carry over, plus one extra indent
// level when the right-trimmed line ends with a colon. The returned
// position sits at the end of the inserted indentation. The heuristic
// is whitespace-count based, not semantic; bracket continuations are
// not detected.
func (b *Buffer) InsertNewline(pos Position) Position {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return pos
	}
	b.checkpoint()
	line := b.lines[pos.Row]
	col := clamp(pos.Col, 0, len(line))

	indent := leadingSpaces(line)
	if strings.HasSuffix(strings.TrimRight(line, " \t"), ":") {
		indent += IndentWidth
	}

	left, right := line[:col], line[col:]
	newLine := strings.Repeat(" ", indent) + right

	b.lines[pos.Row] = left
	b.lines = append(b.lines[:pos.Row+1],
		append([]string{newLine}, b.lines[pos.Row+1:]...)...)
	b.modified = true

	return Position{Row: pos.Row + 1, Col: indent}
}

// IndentLine prepends one indent level of spaces to the line at row.
func (b *Buffer) IndentLine(row int) {
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.checkpoint()
	b.lines[row] = strings.Repeat(" ", IndentWidth) + b.lines[row]
	b.modified = true
}

// OutdentLine removes one indent level from the line at row. Lines with
// fewer leading spaces than an indent level are left unchanged; returns
// whether the line changed.
func (b *Buffer) OutdentLine(row int) bool {
	if row < 0 || row >= len(b.lines) {
		return false
	}
	if leadingSpaces(b.lines[row]) < IndentWidth {
		return false
	}
	b.checkpoint()
	b.lines[row] = b.lines[row][IndentWidth:]
	b.modified = true
	return true
}

// GotoLine returns the position at the start of 1-indexed line n, or an
// OutOfRangeError when n falls outside [1, LineCount].
func (b *Buffer) GotoLine(n int) (Position, error) {
	if n < 1 || n > len(b.lines) {
		return Position{}, &OutOfRangeError{Line: n, Count: len(b.lines)}
	}
	return Position{Row: n - 1, Col: 0}, nil
}

// Undo restores the previous snapshot. Returns false when there is
// nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	b.redo = append(b.redo, snapshot(b.lines))
	b.lines = b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.modified = true
	return true
}

// Redo reapplies the last undone snapshot. Returns false when there is
// nothing to redo.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	b.undo = append(b.undo, snapshot(b.lines))
	b.lines = b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.modified = true
	return true
}

// checkpoint records the current lines for undo and clears redo.
func (b *Buffer) checkpoint() {
	b.undo = append(b.undo, snapshot(b.lines))
	if len(b.undo) > maxHistory {
		b.undo = b.undo[len(b.undo)-maxHistory:]
	}
	b.redo = nil
}

func snapshot(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
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
