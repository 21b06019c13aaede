package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"slate/internal/cache"
)

func TestHighlighter_TokenizeMapsCategories(t *testing.T) {
	h := NewHighlighter(NewClassifier(DefaultKeywordSet()))

	toks := h.Tokenize("def foo():  # start")

	require.Len(t, toks, 2)
	require.Equal(t, 0, toks[0].Start)
	require.Equal(t, 3, toks[0].End)
}

func TestHighlighter_PlainLineYieldsNoTokens(t *testing.T) {
	h := NewHighlighter(NewClassifier(DefaultKeywordSet()))
	require.Empty(t, h.Tokenize("x = y + 1"))
}

func TestHighlighter_MemoizesClassification(t *testing.T) {
	h := NewHighlighter(NewClassifier(DefaultKeywordSet()))
	line := "return 1  # done"

	_ = h.Tokenize(line)
	_, ok := h.spans.Get(line)
	require.True(t, ok, "tokenize should populate the span cache")

	// Later calls serve spans from the cache instead of reclassifying:
	// planting a different entry changes the tokens.
	h.spans.Set(line, []Span{{Start: 0, End: 6, Category: CategoryComment}}, cache.DefaultExpiration)
	toks := h.Tokenize(line)
	require.Len(t, toks, 1)
	require.Equal(t, 0, toks[0].Start)
	require.Equal(t, 6, toks[0].End)
}
