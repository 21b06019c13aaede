package editor

import "github.com/charmbracelet/lipgloss"

// SyntaxToken is one styled byte range within a line. Start is
// inclusive and End exclusive, both byte offsets into the line text.
type SyntaxToken struct {
	Start int
	End   int
	Style lipgloss.Style
}

// SyntaxLexer supplies per-line highlighting during rendering. Tokens
// must be sorted by Start and non-overlapping; gaps between them
// render as plain text. For `x = 'hi'  # note` a Python lexer emits a
// string token covering 'hi' and a comment token from # to end of
// line, leaving the rest unstyled. Nil or empty output leaves the
// whole line plain.
type SyntaxLexer interface {
	Tokenize(line string) []SyntaxToken
}
