package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew_HasOneEmptyLine(t *testing.T) {
	b := New()
	require.Equal(t, 1, b.LineCount())
	require.Equal(t, "", b.Line(0))
	require.False(t, b.Modified())
}

func TestFromText_SplitsLines(t *testing.T) {
	b := FromText("a\nb\nc")
	require.Equal(t, 3, b.LineCount())
	require.Equal(t, "b", b.Line(1))
	require.Equal(t, "a\nb\nc", b.Text())
	require.False(t, b.Modified())
}

func TestSetText_EmptyKeepsOneLine(t *testing.T) {
	b := New()
	b.SetText("")
	require.Equal(t, 1, b.LineCount())
}

func TestInsert_MidLine(t *testing.T) {
	b := FromText("held")
	b.Insert(Position{Row: 0, Col: 2}, "llo wor")
	require.Equal(t, "hello world", b.Line(0))
	require.True(t, b.Modified())
}

func TestDeleteRange(t *testing.T) {
	b := FromText("hello world")
	b.DeleteRange(Position{Row: 0, Col: 5}, 6)
	require.Equal(t, "hello", b.Line(0))
}

func TestInsertNewline_PlainLine(t *testing.T) {
	b := FromText("x = 1")
	pos := b.InsertNewline(Position{Row: 0, Col: 5})

	require.Equal(t, 2, b.LineCount())
	require.Equal(t, "x = 1", b.Line(0))
	require.Equal(t, "", b.Line(1))
	require.Equal(t, Position{Row: 1, Col: 0}, pos)
}

func TestInsertNewline_CarriesIndent(t *testing.T) {
	b := FromText("    x = 1")
	pos := b.InsertNewline(Position{Row: 0, Col: 9})

	require.Equal(t, "    ", b.Line(1))
	require.Equal(t, Position{Row: 1, Col: 4}, pos)
}

func TestInsertNewline_ColonAddsLevel(t *testing.T) {
	b := FromText("def foo():")
	pos := b.InsertNewline(Position{Row: 0, Col: 10})

	require.Equal(t, "    ", b.Line(1))
	require.Equal(t, Position{Row: 1, Col: 4}, pos)
}

func TestInsertNewline_ColonWithTrailingSpaces(t *testing.T) {
	b := FromText("    if x:   ")
	b.InsertNewline(Position{Row: 0, Col: 12})
	require.Equal(t, "        ", b.Line(1))
}

func TestInsertNewline_MidLineSplits(t *testing.T) {
	b := FromText("    foo(bar)")
	pos := b.InsertNewline(Position{Row: 0, Col: 8})

	require.Equal(t, "    foo(", b.Line(0))
	require.Equal(t, "    bar)", b.Line(1))
	require.Equal(t, Position{Row: 1, Col: 4}, pos)
}

func TestIndentOutdent_RoundTrip(t *testing.T) {
	b := FromText("  x = 1")
	b.IndentLine(0)
	require.Equal(t, "      x = 1", b.Line(0))
	require.True(t, b.OutdentLine(0))
	require.Equal(t, "  x = 1", b.Line(0))
}

func TestOutdent_FewerThanFourSpacesIsNoop(t *testing.T) {
	b := FromText("  x")
	require.False(t, b.OutdentLine(0))
	require.Equal(t, "  x", b.Line(0))
}

func TestGotoLine_Bounds(t *testing.T) {
	b := FromText(strings.Repeat("line\n", 9) + "line") // 10 lines

	_, err := b.GotoLine(0)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 0, oor.Line)
	assert.Equal(t, 10, oor.Count)

	_, err = b.GotoLine(11)
	require.ErrorAs(t, err, &oor)

	pos, err := b.GotoLine(10)
	require.NoError(t, err)
	require.Equal(t, Position{Row: 9, Col: 0}, pos)
}

func TestJoinWithPrevious(t *testing.T) {
	b := FromText("foo\nbar")
	pos := b.JoinWithPrevious(1)
	require.Equal(t, 1, b.LineCount())
	require.Equal(t, "foobar", b.Line(0))
	require.Equal(t, Position{Row: 0, Col: 3}, pos)
}

func TestUndoRedo(t *testing.T) {
	b := FromText("one")
	b.SetLine(0, "two")
	b.SetLine(0, "three")

	require.True(t, b.Undo())
	require.Equal(t, "two", b.Line(0))
	require.True(t, b.Undo())
	require.Equal(t, "one", b.Line(0))
	require.False(t, b.Undo())

	require.True(t, b.Redo())
	require.Equal(t, "two", b.Line(0))
	require.True(t, b.Redo())
	require.Equal(t, "three", b.Line(0))
	require.False(t, b.Redo())
}

func TestUndo_ClearedByNewEdit(t *testing.T) {
	b := FromText("one")
	b.SetLine(0, "two")
	require.True(t, b.Undo())
	b.SetLine(0, "fork")
	require.False(t, b.Redo(), "redo history clears after a new edit")
}

func TestBuffer_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringOf(rapid.RuneFrom([]rune("ax :"))).Draw(t, "line")
		b := FromText(line)

		// Indent then outdent restores the original content.
		b.IndentLine(0)
		require.True(t, b.OutdentLine(0))
		require.Equal(t, line, b.Line(0))

		// Line count never drops below one.
		b.SetText("")
		require.GreaterOrEqual(t, b.LineCount(), 1)
	})
}
