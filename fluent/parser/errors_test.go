package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{newError(0, "E0002"), "Expected an entry start"},
		{newError(3, "E0003", "="), `Expected token: "="`},
		{newError(0, "E0004", "a-zA-Z"), `Expected a character from range: "a-zA-Z"`},
		{newError(0, "E0005", "foo"), `Expected message "foo" to have a value or attributes`},
		{newError(0, "E0006", "brand"), `Expected term "-brand" to have a value`},
		{newError(0, "E0010"), "Expected one of the variants to be marked as default (*)"},
		{newError(0, "E0025", "x"), `Unknown escape sequence: \x.`},
		{newError(0, "E9999"), "E9999"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestErrorCarriesPosition(t *testing.T) {
	err := newError(42, "E0003", "}")
	assert.Equal(t, 42, err.Pos)
	assert.Equal(t, "E0003", err.Code)
	assert.Equal(t, []string{"}"}, err.Args)
}
