package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"slate/internal/ui/styles"
)

// Cursor uses reverse video so it stays visible on any theme.
const (
	cursorOn  = "\x1b[7m"
	cursorOff = "\x1b[27m"
)

// View renders the visible window of the buffer with the line number
// gutter, syntax highlighting, and cursor.
func (m Model) View() string {
	lineCount := m.buf.LineCount()
	gutterWidth := 0
	if m.showLineNumbers {
		gutterWidth = len(fmt.Sprintf("%d", lineCount)) + 1
	}

	textWidth := m.width - gutterWidth
	if m.width <= 0 {
		textWidth = 0
	}

	height := m.height
	if height <= 0 {
		height = lineCount
	}

	var out []string
	for i := 0; i < height; i++ {
		row := m.scroll + i
		if row >= lineCount {
			out = append(out, "")
			continue
		}

		var sb strings.Builder
		if m.showLineNumbers {
			num := fmt.Sprintf("%*d ", gutterWidth-1, row+1)
			if m.focused && row == m.cursorRow {
				sb.WriteString(styles.TabActiveStyle.UnsetPadding().Render(num))
			} else {
				sb.WriteString(styles.GutterStyle.Render(num))
			}
		}

		rendered := m.renderLine(row, textWidth)
		if textWidth > 0 {
			rendered = ansi.Truncate(rendered, textWidth, "")
		}
		sb.WriteString(rendered)
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

// renderLine applies syntax styling to one line, layering the cursor
// on top when it sits on this row.
func (m Model) renderLine(row, textWidth int) string {
	line := m.buf.Line(row)

	var tokens []SyntaxToken
	if m.lexer != nil {
		tokens = m.lexer.Tokenize(line)
	}

	cursorHere := m.focused && row == m.cursorRow
	if !cursorHere {
		return renderSegments(line, tokens)
	}
	return m.renderLineWithCursor(line, tokens, textWidth)
}

// renderSegments styles a line from its token list. Gaps between
// tokens render as plain text.
func renderSegments(line string, tokens []SyntaxToken) string {
	if len(tokens) == 0 {
		return line
	}

	var sb strings.Builder
	prev := 0
	for _, tok := range tokens {
		start := clamp(tok.Start, 0, len(line))
		end := clamp(tok.End, start, len(line))
		if start > prev {
			sb.WriteString(line[prev:start])
		}
		sb.WriteString(tok.Style.Render(line[start:end]))
		prev = end
	}
	if prev < len(line) {
		sb.WriteString(line[prev:])
	}
	return sb.String()
}

// renderLineWithCursor walks the line grapheme by grapheme so the
// cursor cluster can be wrapped in reverse video without breaking the
// surrounding token styles. Cell widths come from runewidth, so wide
// clusters count as two cells and the leading edge scrolls off by
// whole graphemes until the cursor cell fits the visible width.
func (m Model) renderLineWithCursor(line string, tokens []SyntaxToken, textWidth int) string {
	widths := graphemeWidths(line)

	// Cells from line start through the right edge of the cursor. A
	// cursor past the last grapheme occupies one extra cell.
	cursorEnd := 0
	for i := 0; i < len(widths) && i <= m.cursorCol; i++ {
		cursorEnd += widths[i]
	}
	if m.cursorCol >= len(widths) {
		cursorEnd++
	}

	skip := 0
	if textWidth > 0 {
		for skip < len(widths) && cursorEnd > textWidth {
			cursorEnd -= widths[skip]
			skip++
		}
	}

	var sb strings.Builder
	idx := 0
	offset := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.StepString(rest, state)

		if idx >= skip {
			styled := cluster
			if tok := tokenAt(tokens, offset); tok != nil {
				styled = tok.Style.Render(cluster)
			}
			if idx == m.cursorCol {
				styled = cursorOn + cluster + cursorOff
			}
			sb.WriteString(styled)
		}

		offset += len(cluster)
		idx++
		rest = next
		state = newState
	}

	// Cursor past the last grapheme renders as a reverse-video space.
	if m.cursorCol >= idx {
		sb.WriteString(cursorOn + " " + cursorOff)
	}
	return sb.String()
}

// tokenAt returns the token covering the given byte offset, or nil.
func tokenAt(tokens []SyntaxToken, offset int) *SyntaxToken {
	for i := range tokens {
		if offset >= tokens[i].Start && offset < tokens[i].End {
			return &tokens[i]
		}
	}
	return nil
}
