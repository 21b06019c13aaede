package syntax

import (
	"regexp"
	"sort"
)

// stringPattern matches a closed single-line quoted string. Go's regexp
// has no backreferences, so single and double quotes are separate
// alternatives. Unterminated quotes deliberately do not match: an
// unclosed string stays unhighlighted on that line, consistent with the
// absence of cross-line state.
var stringPattern = regexp.MustCompile(`'[^']*'|"[^"]*"`)

// commentPattern matches a # through end of line.
var commentPattern = regexp.MustCompile(`#.*`)

// Classifier turns lines of Python source into classified spans.
// It is safe for use from a single goroutine; the TUI event loop owns
// it. Classification is deterministic and uncached here; Highlighter
// memoizes per-line results for the render path.
type Classifier struct {
	keywords *KeywordSet
}

// NewClassifier creates a classifier over the given keyword set.
// A nil set means no keyword spans are ever produced.
func NewClassifier(keywords *KeywordSet) *Classifier {
	if keywords == nil {
		keywords = NewKeywordSet(nil)
	}
	return &Classifier{keywords: keywords}
}

// Keywords returns the classifier's keyword set.
func (c *Classifier) Keywords() *KeywordSet {
	return c.keywords
}

// Classify returns the spans for one line, sorted by start offset and
// non-overlapping. String spans are found first, then the comment span,
// then keyword matches; a keyword match is discarded when its start
// offset falls inside a string or comment span. Classify never fails:
// a line with nothing to classify yields an empty result.
func (c *Classifier) Classify(line string) []Span {
	if line == "" {
		return nil
	}

	var spans []Span

	// Strings first; they mask everything that starts inside them.
	for _, m := range stringPattern.FindAllStringIndex(line, -1) {
		spans = append(spans, Span{Start: m[0], End: m[1], Category: CategoryString})
	}

	// The comment starts at the first # outside any string span and runs
	// to end of line. String spans that begin inside the comment are
	// dropped so the result stays non-overlapping.
	if m := commentStart(line, spans); m >= 0 {
		kept := spans[:0]
		for _, s := range spans {
			if s.Start < m {
				kept = append(kept, s)
			}
		}
		spans = append(kept, Span{Start: m, End: len(line), Category: CategoryComment})
	}

	// Keywords last; a match is kept only when its start offset is plain.
	masked := make([]Span, len(spans))
	copy(masked, spans)
	for _, pat := range c.keywords.patterns {
		for _, m := range pat.FindAllStringIndex(line, -1) {
			if insideAny(masked, m[0]) {
				continue
			}
			spans = append(spans, Span{Start: m[0], End: m[1], Category: CategoryKeyword})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// commentStart returns the offset of the first # that is not inside a
// string span, or -1 when the line has no comment. The regex match
// anchors the search; because `#.*` consumes to end of line, each
// candidate # past the match start is probed individually.
func commentStart(line string, stringSpans []Span) int {
	m := commentPattern.FindStringIndex(line)
	if m == nil {
		return -1
	}
	for i := m[0]; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if !insideAny(stringSpans, i) {
			return i
		}
	}
	return -1
}

func insideAny(spans []Span, pos int) bool {
	for _, s := range spans {
		if s.Contains(pos) {
			return true
		}
	}
	return false
}
