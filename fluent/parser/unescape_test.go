package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demivan/fluentnet/fluent/parser/ast"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"no escapes", "hello world", "hello world"},
		{"backslash", `\\`, `\`},
		{"quote", `\"`, `"`},
		{"four digit unicode", `\u0041`, "A"},
		{"six digit unicode", `\U01F602`, "\U0001F602"},
		{"mixed", `a\u0041b`, "aAb"},
		{"adjacent escapes", `\\\"`, `\"`},
		{"unknown escape", `\x`, "�"},
		{"truncated unicode at end", `\u004`, "�"},
		{"trailing backslash", `\`, "�"},
		{"non-hex digits", `\u12zz`, "�zz"},
		{"surrogate half", `\uD800`, "�"},
		{"beyond unicode range", `\UFFFFFF`, "�"},
		{"space code point", `\u0020`, " "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Unescape(tc.input))
		})
	}
}

// The parser captures escape sequences verbatim; decoding a parsed literal
// has to yield the intended text
func TestUnescapeParsedLiteral(t *testing.T) {
	resource := New().Parse("msg = { \"quoted \\\"text\\\" \\u2014 ok\" }\n")
	message, ok := resource.Body[0].(*ast.Message)
	require.True(t, ok)

	placeable := message.Value.Elements[0].(*ast.Placeable)
	literal := placeable.Expression.(*ast.StringLiteral)
	assert.Equal(t, `quoted \"text\" \u2014 ok`, literal.Value)
	assert.Equal(t, "quoted \"text\" — ok", Unescape(literal.Value))
}
