// Package syntax implements per-line token classification for Python
// source. Each line is classified independently; there is no cross-line
// state, so multi-line strings are not tracked (documented limitation).
package syntax

// Category identifies the kind of a classified span.
type Category int

const (
	// CategoryPlain marks unclassified text. The classifier never emits
	// plain spans; gaps between spans are implicitly plain.
	CategoryPlain Category = iota
	// CategoryKeyword marks a reserved word match.
	CategoryKeyword
	// CategoryString marks a single-line quoted string.
	CategoryString
	// CategoryComment marks a # comment through end of line.
	CategoryComment
)

func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategoryString:
		return "string"
	case CategoryComment:
		return "comment"
	default:
		return "plain"
	}
}

// Span is a classified region of a single line.
// Start and End are byte offsets; End is exclusive, like Go slices.
type Span struct {
	Start    int
	End      int
	Category Category
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the byte offset pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}
