package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDualCursor(t *testing.T) {
	str := newStream("abc")

	assert.Equal(t, 'a', str.currentChar())
	assert.Equal(t, 'a', str.currentPeek())

	assert.Equal(t, 'b', str.peek())
	assert.Equal(t, 'c', str.peek())
	assert.Equal(t, EOF, str.peek())

	// Peeking never moves the commit cursor
	assert.Equal(t, 'a', str.currentChar())

	str.resetPeek(0)
	assert.Equal(t, 'a', str.currentPeek())

	str.peek()
	str.skipToPeek()
	assert.Equal(t, 'b', str.currentChar())
	assert.Equal(t, 0, str.peekOffset)

	// Advancing resets the peek offset
	str.peek()
	assert.Equal(t, 'c', str.next())
	assert.Equal(t, 0, str.peekOffset)
}

func TestStreamCRLFFolding(t *testing.T) {
	str := newStream("a\r\nb")

	assert.Equal(t, 'a', str.currentChar())
	assert.Equal(t, EOL, str.next())
	assert.Equal(t, 1, str.index)

	// The CRLF pair is one logical character of two bytes
	assert.Equal(t, 'b', str.next())
	assert.Equal(t, 3, str.index)
	assert.Equal(t, EOF, str.next())
}

func TestStreamCRLFPeek(t *testing.T) {
	str := newStream("a\r\nb")

	assert.Equal(t, EOL, str.peek())
	assert.Equal(t, 'b', str.peek())
	str.skipToPeek()
	assert.Equal(t, 'b', str.currentChar())
}

func TestStreamLoneCarriageReturn(t *testing.T) {
	str := newStream("a\rb")

	// A CR not followed by LF is not a line ending
	assert.Equal(t, '\r', str.peek())
}

func TestPeekBlankInline(t *testing.T) {
	str := newStream("   x")
	assert.Equal(t, "   ", str.peekBlankInline())
	assert.Equal(t, 'x', str.currentPeek())

	// Peeking does not commit
	assert.Equal(t, ' ', str.currentChar())

	str.resetPeek(0)
	assert.Equal(t, "   ", str.skipBlankInline())
	assert.Equal(t, 'x', str.currentChar())
}

func TestPeekBlankBlock(t *testing.T) {
	str := newStream("  \n\n   \nnext")
	assert.Equal(t, "\n\n\n", str.peekBlankBlock())

	// The peek cursor rests at the first column of the non-blank line
	assert.Equal(t, 'n', str.currentPeek())

	str.skipToPeek()
	assert.Equal(t, 'n', str.currentChar())
}

func TestPeekBlankBlockAtEOF(t *testing.T) {
	str := newStream("   ")
	assert.Equal(t, "", str.peekBlankBlock())

	// The partial blank line before EOF counts as blank
	str.skipToPeek()
	assert.Equal(t, EOF, str.currentChar())
}

func TestIsValueContinuation(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"\n    next", true},
		{"\n{", true},
		{"\nnext", false},
		{"\n    [key]", false},
		{"\n    *[key]", false},
		{"\n    .attr", false},
		{"\n    }", false},
		{"\n", false},
	}

	for _, tc := range cases {
		str := newStream(tc.source)
		str.peekBlankBlock()
		assert.Equal(t, tc.want, str.isValueContinuation(), "source: %q", tc.source)
	}
}

func TestIsNextLineComment(t *testing.T) {
	str := newStream("\n# ok")
	assert.True(t, str.isNextLineComment(-1))
	assert.True(t, str.isNextLineComment(0))
	assert.False(t, str.isNextLineComment(1))

	str = newStream("\n## ok")
	assert.True(t, str.isNextLineComment(-1))
	assert.False(t, str.isNextLineComment(0))
	assert.True(t, str.isNextLineComment(1))

	// The sigils have to be followed by a space or line ending
	str = newStream("\n#bad")
	assert.False(t, str.isNextLineComment(-1))

	str = newStream("\n#\n")
	assert.True(t, str.isNextLineComment(0))

	str = newStream("\n#### x")
	assert.False(t, str.isNextLineComment(-1))

	str = newStream("x# ok")
	assert.False(t, str.isNextLineComment(-1))
}

func TestIsNumberStart(t *testing.T) {
	assert.True(t, newStream("5").isNumberStart())
	assert.True(t, newStream("-5").isNumberStart())
	assert.False(t, newStream("-x").isNumberStart())
	assert.False(t, newStream("x").isNumberStart())
	assert.False(t, newStream("-").isNumberStart())

	// The check resets the peek cursor
	str := newStream("-5")
	str.isNumberStart()
	assert.Equal(t, 0, str.peekOffset)
}

func TestIsVariantStart(t *testing.T) {
	assert.True(t, newStream("[key]").isVariantStart())
	assert.True(t, newStream("*[key]").isVariantStart())
	assert.False(t, newStream("*x").isVariantStart())
	assert.False(t, newStream("x").isVariantStart())

	str := newStream("*[key]")
	str.isVariantStart()
	assert.Equal(t, 0, str.peekOffset)
}

func TestExpectChar(t *testing.T) {
	str := newStream("=x")
	require.NoError(t, str.expectChar('='))
	assert.Equal(t, 'x', str.currentChar())

	err := str.expectChar('=')
	require.Error(t, err)
	parseErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "E0003", parseErr.Code)
	assert.Equal(t, []string{"="}, parseErr.Args)
}

func TestExpectLineEnd(t *testing.T) {
	require.NoError(t, newStream("").expectLineEnd())

	str := newStream("\nx")
	require.NoError(t, str.expectLineEnd())
	assert.Equal(t, 'x', str.currentChar())

	err := newStream("x").expectLineEnd()
	require.Error(t, err)
	assert.Equal(t, "E0003", err.(*Error).Code)
}

func TestSkipToNextEntryStart(t *testing.T) {
	str := newStream("foo = {\nbar = Bar")
	str.index = 5
	str.skipToNextEntryStart(0)
	assert.Equal(t, 'b', str.currentChar())
	assert.Equal(t, 8, str.index)
}

func TestSkipToNextEntryStartRewinds(t *testing.T) {
	str := newStream("aa\nbb\ncc")
	str.index = 7

	// The last EOL lies inside the junk region, so the cursor rewinds to it
	// before scanning forward
	str.skipToNextEntryStart(0)
	assert.Equal(t, 6, str.index)
	assert.Equal(t, 'c', str.currentChar())
}

func TestSkipToNextEntryStartAtEOF(t *testing.T) {
	str := newStream("garbage")
	str.skipToNextEntryStart(0)
	assert.Equal(t, len(str.source), str.index)
	assert.Equal(t, EOF, str.currentChar())
}
