package syntax

import (
	"github.com/charmbracelet/lipgloss"

	"slate/internal/cache"
	"slate/internal/ui/editor"
	"slate/internal/ui/styles"
)

// Highlighter adapts a Classifier to the editor's SyntaxLexer
// interface, mapping span categories to the active theme's styles.
// Classification results are memoized per line text; spans are
// theme-independent, so theme changes need no invalidation.
type Highlighter struct {
	classifier *Classifier
	spans      *cache.Cache[[]Span]

	keyword lipgloss.Style
	str     lipgloss.Style
	comment lipgloss.Style
}

// NewHighlighter creates a theme-aware lexer over the given classifier.
// It registers a rebuild hook so theme changes refresh the styles.
func NewHighlighter(classifier *Classifier) *Highlighter {
	h := &Highlighter{
		classifier: classifier,
		spans:      cache.New[[]Span]("highlight", cache.DefaultExpiration, cache.DefaultCleanupInterval),
	}
	h.rebuild()
	styles.RegisterStyleRebuilder(h.rebuild)
	return h
}

func (h *Highlighter) rebuild() {
	h.keyword = styles.KeywordStyle
	h.str = styles.StringStyle
	h.comment = styles.CommentStyle
}

// Tokenize implements editor.SyntaxLexer.
func (h *Highlighter) Tokenize(line string) []editor.SyntaxToken {
	spans := h.spans.GetOrCompute(line, cache.DefaultExpiration, func() []Span {
		return h.classifier.Classify(line)
	})
	if len(spans) == 0 {
		return nil
	}

	tokens := make([]editor.SyntaxToken, 0, len(spans))
	for _, s := range spans {
		var style lipgloss.Style
		switch s.Category {
		case CategoryKeyword:
			style = h.keyword
		case CategoryString:
			style = h.str
		case CategoryComment:
			style = h.comment
		default:
			continue
		}
		tokens = append(tokens, editor.SyntaxToken{Start: s.Start, End: s.End, Style: style})
	}
	return tokens
}

// Ensure Highlighter implements editor.SyntaxLexer at compile time.
var _ editor.SyntaxLexer = (*Highlighter)(nil)
