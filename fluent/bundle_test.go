package fluent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func format(t *testing.T, source, key string, options ...formatOption) (string, []error) {
	t.Helper()
	bundle := NewBundle(language.English)
	require.Empty(t, bundle.AddResource(NewResource(source)))

	result, errs, err := bundle.FormatMessage(key, options...)
	require.NoError(t, err)
	return result, errs
}

func TestFormatSimpleMessage(t *testing.T) {
	result, errs := format(t, "welcome = Hello, { $name }!\n", "welcome", WithVariable("name", "World"))
	assert.Empty(t, errs)
	assert.Equal(t, "Hello, World!", result)
}

func TestFormatSelectWithPluralCategory(t *testing.T) {
	source := "emails = { $count ->\n    [one] One email\n   *[other] { $count } emails\n}\n"

	result, errs := format(t, source, "emails", WithVariable("count", 1))
	assert.Empty(t, errs)
	assert.Equal(t, "One email", result)

	result, errs = format(t, source, "emails", WithVariable("count", 5))
	assert.Empty(t, errs)
	assert.Equal(t, "5 emails", result)
}

func TestFormatSelectWithStringKey(t *testing.T) {
	source := "status = { $state ->\n    [on] Enabled\n   *[off] Disabled\n}\n"

	result, _ := format(t, source, "status", WithVariable("state", "on"))
	assert.Equal(t, "Enabled", result)

	result, _ = format(t, source, "status", WithVariable("state", "unknown"))
	assert.Equal(t, "Disabled", result)
}

func TestFormatTermReference(t *testing.T) {
	result, errs := format(t, "-brand = Firefox\nabout = About { -brand }\n", "about")
	assert.Empty(t, errs)
	assert.Equal(t, "About Firefox", result)
}

func TestFormatTermWithArguments(t *testing.T) {
	source := "-thing = { $case ->\n   *[nom] thing\n    [gen] thing's\n}\nuse = { -thing(case: \"gen\") }\n"
	result, errs := format(t, source, "use")
	assert.Empty(t, errs)
	assert.Equal(t, "thing's", result)
}

func TestFormatMessageReference(t *testing.T) {
	result, errs := format(t, "foo = Foo\nbar = { foo } Bar\n", "bar")
	assert.Empty(t, errs)
	assert.Equal(t, "Foo Bar", result)
}

func TestFormatStringLiteralDecodesEscapes(t *testing.T) {
	result, errs := format(t, "quote = { \"\\\"quoted\\\"\" }\n", "quote")
	assert.Empty(t, errs)
	assert.Equal(t, `"quoted"`, result)
}

func TestFormatFunction(t *testing.T) {
	upper := func(positional []Value, named map[string]Value) Value {
		return String(strings.ToUpper(positional[0].String()))
	}

	result, errs := format(t, "shout = { UPPER(\"abc\") }\n", "shout", WithFunction("UPPER", upper))
	assert.Empty(t, errs)
	assert.Equal(t, "ABC", result)
}

func TestFormatNumberLiteralVerbatim(t *testing.T) {
	result, errs := format(t, "price = { -0.50 }\n", "price")
	assert.Empty(t, errs)
	assert.Equal(t, "-0.50", result)
}

func TestFormatUnknownVariable(t *testing.T) {
	result, errs := format(t, "msg = { $missing }\n", "msg")
	assert.Len(t, errs, 1)
	assert.Equal(t, "{$missing}", result)
}

func TestFormatMissingMessage(t *testing.T) {
	bundle := NewBundle(language.English)
	_, _, err := bundle.FormatMessage("nope")
	require.Error(t, err)
}

func TestFormatMessageWithoutValue(t *testing.T) {
	bundle := NewBundle(language.English)
	require.Empty(t, bundle.AddResource(NewResource("msg =\n    .attr = A\n")))

	_, _, err := bundle.FormatMessage("msg")
	require.Error(t, err)
}

func TestAddResourceRejectsDuplicates(t *testing.T) {
	bundle := NewBundle(language.English)
	require.Empty(t, bundle.AddResource(NewResource("foo = First\n")))

	errs := bundle.AddResource(NewResource("foo = Second\n"))
	require.Len(t, errs, 1)

	result, _, err := bundle.FormatMessage("foo")
	require.NoError(t, err)
	assert.Equal(t, "First", result)
}

func TestAddResourceOverriding(t *testing.T) {
	bundle := NewBundle(language.English)
	require.Empty(t, bundle.AddResource(NewResource("foo = First\n")))
	bundle.AddResourceOverriding(NewResource("foo = Second\n"))

	result, _, err := bundle.FormatMessage("foo")
	require.NoError(t, err)
	assert.Equal(t, "Second", result)
}
