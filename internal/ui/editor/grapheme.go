// Package editor provides the syntax-highlighted editing component.
//
// Cursor columns are grapheme indices, not byte offsets: a grapheme
// cluster is what users perceive as one character, and may span many
// bytes. The buffer stores byte offsets, so the helpers in this file
// convert between the two units.
package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCount returns the number of grapheme clusters in a string.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// byteOffsetOfGrapheme returns the byte offset where the nth grapheme
// (0-indexed) starts. n past the end returns len(s).
func byteOffsetOfGrapheme(s string, n int) int {
	if n <= 0 {
		return 0
	}

	idx := 0
	offset := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		if idx == n {
			return offset
		}
		offset += len(cluster)
		idx++
		s = rest
		state = newState
	}
	return offset
}

// graphemeWidths returns the display width in terminal cells of each
// grapheme cluster in s, in order. Wide clusters (CJK, many emoji)
// occupy two cells; grapheme index and cell column diverge on lines
// containing them.
func graphemeWidths(s string) []int {
	var widths []int
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		widths = append(widths, runewidth.StringWidth(cluster))
		s = rest
		state = newState
	}
	return widths
}

// graphemeIndexAtByte returns the grapheme index containing the given
// byte offset. Offsets past the end map to the grapheme count.
func graphemeIndexAtByte(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}

	idx := 0
	offset := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		if offset+len(cluster) > byteOffset {
			return idx
		}
		offset += len(cluster)
		idx++
		s = rest
		state = newState
	}
	return idx
}
