package syntax

import (
	"regexp"
)

// defaultKeywords is the built-in Python reserved word list used when
// the config does not provide one.
var defaultKeywords = []string{
	"import", "from", "class", "def", "if", "elif", "else", "for", "while",
	"return", "in", "and", "or", "not", "with", "as", "try", "except", "finally",
	"pass", "break", "continue", "yield", "assert", "async", "await",
	"global", "nonlocal", "del", "raise", "is", "lambda",
}

// KeywordSet is an ordered, immutable set of reserved words with their
// compiled whole-word match patterns. Build one at startup and share it;
// it is safe for concurrent use.
type KeywordSet struct {
	words    []string
	patterns []*regexp.Regexp
}

// NewKeywordSet compiles whole-word patterns for the given words,
// preserving order. Empty words are skipped.
func NewKeywordSet(words []string) *KeywordSet {
	ks := &KeywordSet{}
	for _, w := range words {
		if w == "" {
			continue
		}
		ks.words = append(ks.words, w)
		ks.patterns = append(ks.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return ks
}

// DefaultKeywordSet returns the built-in Python keyword set.
func DefaultKeywordSet() *KeywordSet {
	return NewKeywordSet(defaultKeywords)
}

// Words returns a copy of the keyword list in order.
func (ks *KeywordSet) Words() []string {
	out := make([]string, len(ks.words))
	copy(out, ks.words)
	return out
}

// Len returns the number of keywords in the set.
func (ks *KeywordSet) Len() int {
	return len(ks.words)
}
