package parser

import (
	"math"
	"regexp"
	"strings"

	"github.com/Demivan/fluentnet/fluent/parser/ast"
)

// functionNamePattern restricts the callee of a call expression
var functionNamePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_-]*$`)

// Option configures a Parser
type Option func(*Parser)

// WithSpans makes the parser attach [start, end) byte spans over the original
// source to every AST node
func WithSpans() Option {
	return func(parser *Parser) {
		parser.withSpans = true
	}
}

// Parser is used to parse an FTL source into an AST
type Parser struct {
	withSpans bool
}

// New creates a new FTL parser
func New(opts ...Option) *Parser {
	parser := &Parser{}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse parses the given FTL source string into an AST.
// It always returns a resource: entries that could not be parsed are packaged
// as junk entries carrying diagnostic annotations instead of failing the
// parse as a whole.
func (parser *Parser) Parse(source string) *ast.Resource {
	str := newStream(source)

	// Blank space at the beginning of the file is ignored
	str.skipBlankBlock()

	entries := []ast.Entry{}
	var lastComment *ast.Comment

	for str.currentChar() != EOF {
		entry := parser.getEntryOrJunk(str)

		// Blank space between entries is ignored
		blankLines := str.skipBlankBlock()

		// A standalone comment immediately preceding a message or term gets
		// attached to it, so it has to be held back until the next entry is known
		if comment, ok := entry.(*ast.Comment); ok && blankLines == "" && str.currentChar() != EOF {
			lastComment = comment
			continue
		}

		if lastComment != nil {
			switch target := entry.(type) {
			case *ast.Message:
				target.Comment = lastComment
				if parser.withSpans {
					target.Span.Start = lastComment.Span.Start
				}
			case *ast.Term:
				target.Comment = lastComment
				if parser.withSpans {
					target.Span.Start = lastComment.Span.Start
				}
			default:
				entries = append(entries, lastComment)
			}
			lastComment = nil
		}

		entries = append(entries, entry)
	}

	resource := &ast.Resource{
		Base: ast.Base{Type: ast.TypeResource},
		Body: entries,
	}
	parser.setSpan(resource, 0, len(source))
	return resource
}

// setSpan attaches a span to the node if span tracking is enabled
func (parser *Parser) setSpan(node ast.Node, start, end int) {
	if parser.withSpans {
		node.SetSpan(start, end)
	}
}

// getEntryOrJunk tries to parse a single entry and packages the skipped
// region as junk if a grammar error occurred while parsing it
func (parser *Parser) getEntryOrJunk(str *stream) ast.Entry {
	entryStart := str.index

	entry, err := parser.getEntry(str)
	if err == nil {
		err = str.expectLineEnd()
		if err == nil {
			return entry
		}
	}

	parseErr := err.(*Error)

	// Resynchronize at the next plausible entry start. The annotation index is
	// clamped so that it stays inside the junk span.
	errorIndex := str.index
	str.skipToNextEntryStart(entryStart)
	nextEntryStart := str.index
	if nextEntryStart < errorIndex {
		errorIndex = nextEntryStart
	}

	args := parseErr.Args
	if args == nil {
		args = []string{}
	}
	annotation := &ast.Annotation{
		Base:      ast.Base{Type: ast.TypeAnnotation},
		Code:      parseErr.Code,
		Arguments: args,
		Message:   parseErr.Error(),
	}
	parser.setSpan(annotation, errorIndex, errorIndex)

	junk := &ast.Junk{
		Base:        ast.Base{Type: ast.TypeJunk},
		Content:     str.source[entryStart:nextEntryStart],
		Annotations: []*ast.Annotation{annotation},
	}
	parser.setSpan(junk, entryStart, nextEntryStart)
	return junk
}

// getEntry parses a single entry (comment, term or message)
func (parser *Parser) getEntry(str *stream) (ast.Entry, error) {
	switch {
	case str.currentChar() == '#':
		return parser.getComment(str)
	case str.currentChar() == '-':
		return parser.getTerm(str)
	case str.isIdentifierStart():
		return parser.getMessage(str)
	default:
		return nil, newError(str.index, "E0002")
	}
}

// getComment parses a comment entry; the sigil count on the first line fixes
// the level for all of its lines
func (parser *Parser) getComment(str *stream) (ast.Entry, error) {
	start := str.index
	level := -1
	content := ""

	for {
		sigils := -1
		max := 2
		if level != -1 {
			max = level
		}
		for str.currentChar() == '#' && sigils < max {
			str.next()
			sigils++
		}
		if level == -1 {
			level = sigils
		}

		if str.currentChar() != EOL {
			// The sigils have to be followed by a single space
			if err := str.expectChar(' '); err != nil {
				return nil, err
			}
			for {
				char, ok := str.takeChar(func(c rune) bool { return c != EOL })
				if !ok {
					break
				}
				content += string(char)
			}
		}

		if !str.isNextLineComment(level) {
			break
		}
		content += string(EOL)
		str.next()
	}

	end := str.index
	switch level {
	case 0:
		comment := &ast.Comment{Base: ast.Base{Type: ast.TypeComment}, Content: content}
		parser.setSpan(comment, start, end)
		return comment, nil
	case 1:
		comment := &ast.GroupComment{Base: ast.Base{Type: ast.TypeGroupComment}, Content: content}
		parser.setSpan(comment, start, end)
		return comment, nil
	case 2:
		comment := &ast.ResourceComment{Base: ast.Base{Type: ast.TypeResourceComment}, Content: content}
		parser.setSpan(comment, start, end)
		return comment, nil
	default:
		panic("comment level out of range")
	}
}

// getMessage parses a message entry
func (parser *Parser) getMessage(str *stream) (*ast.Message, error) {
	start := str.index

	id, err := parser.getIdentifier(str)
	if err != nil {
		return nil, err
	}

	str.skipBlankInline()
	if err := str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := parser.maybeGetPattern(str)
	if err != nil {
		return nil, err
	}

	attributes, err := parser.getAttributes(str)
	if err != nil {
		return nil, err
	}

	if value == nil && len(attributes) == 0 {
		return nil, newError(str.index, "E0005", id.Name)
	}

	message := &ast.Message{
		Base:       ast.Base{Type: ast.TypeMessage},
		ID:         id,
		Value:      value,
		Attributes: attributes,
	}
	parser.setSpan(message, start, str.index)
	return message, nil
}

// getTerm parses a term entry; unlike messages, terms require a value
func (parser *Parser) getTerm(str *stream) (*ast.Term, error) {
	start := str.index

	if err := str.expectChar('-'); err != nil {
		return nil, err
	}
	id, err := parser.getIdentifier(str)
	if err != nil {
		return nil, err
	}

	str.skipBlankInline()
	if err := str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := parser.maybeGetPattern(str)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(str.index, "E0006", id.Name)
	}

	attributes, err := parser.getAttributes(str)
	if err != nil {
		return nil, err
	}

	term := &ast.Term{
		Base:       ast.Base{Type: ast.TypeTerm},
		ID:         id,
		Value:      value,
		Attributes: attributes,
	}
	parser.setSpan(term, start, str.index)
	return term, nil
}

// getAttribute parses a single attribute; attributes require a value
func (parser *Parser) getAttribute(str *stream) (*ast.Attribute, error) {
	start := str.index

	if err := str.expectChar('.'); err != nil {
		return nil, err
	}
	id, err := parser.getIdentifier(str)
	if err != nil {
		return nil, err
	}

	str.skipBlankInline()
	if err := str.expectChar('='); err != nil {
		return nil, err
	}

	value, err := parser.maybeGetPattern(str)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(str.index, "E0012")
	}

	attribute := &ast.Attribute{
		Base:  ast.Base{Type: ast.TypeAttribute},
		ID:    id,
		Value: value,
	}
	parser.setSpan(attribute, start, str.index)
	return attribute, nil
}

// getAttributes parses the attribute list following a message or term value
func (parser *Parser) getAttributes(str *stream) ([]*ast.Attribute, error) {
	attributes := []*ast.Attribute{}

	str.peekBlank()
	for str.isAttributeStart() {
		str.skipToPeek()
		attribute, err := parser.getAttribute(str)
		if err != nil {
			return nil, err
		}
		attributes = append(attributes, attribute)
		str.peekBlank()
	}

	return attributes, nil
}

// getIdentifier parses an identifier node
func (parser *Parser) getIdentifier(str *stream) (*ast.Identifier, error) {
	start := str.index

	first, err := str.takeIDStart()
	if err != nil {
		return nil, err
	}
	name := string(first)
	for {
		char, ok := str.takeIDChar()
		if !ok {
			break
		}
		name += string(char)
	}

	id := &ast.Identifier{Base: ast.Base{Type: ast.TypeIdentifier}, Name: name}
	parser.setSpan(id, start, str.index)
	return id, nil
}

// maybeGetPattern parses a pattern if one exists, inline (starting on the
// same physical line) or block (starting on a later, indented line)
func (parser *Parser) maybeGetPattern(str *stream) (*ast.Pattern, error) {
	str.peekBlankInline()
	if str.isValueStart() {
		str.skipToPeek()
		return parser.getPattern(str, false)
	}

	str.peekBlankBlock()
	if str.isValueContinuation() {
		str.skipToPeek()
		return parser.getPattern(str, true)
	}

	return nil, nil
}

// indentElement is a transient token used while building a pattern. It never
// escapes the pattern builder: dedentation folds it into an adjacent text
// element, promotes it to a new one or drops it.
type indentElement struct {
	value string
	start int
	end   int
}

// getPattern parses a pattern node. Block patterns measure the indent of
// every continuation line; the smallest one is stripped during dedentation.
func (parser *Parser) getPattern(str *stream, isBlock bool) (*ast.Pattern, error) {
	start := str.index

	var elements []interface{}
	commonIndent := math.MaxInt

	if isBlock {
		blankStart := str.index
		firstIndent := str.skipBlankInline()
		commonIndent = len(firstIndent)
		elements = append(elements, &indentElement{value: firstIndent, start: blankStart, end: str.index})
	}

elements:
	for {
		switch char := str.currentChar(); char {
		case EOF:
			break elements
		case EOL:
			blankStart := str.index
			blankLines := str.peekBlankBlock()
			if !str.isValueContinuation() {
				str.resetPeek(0)
				break elements
			}
			str.skipToPeek()
			indent := str.skipBlankInline()
			if len(indent) < commonIndent {
				commonIndent = len(indent)
			}
			elements = append(elements, &indentElement{value: blankLines + indent, start: blankStart, end: str.index})
		case '{':
			placeable, err := parser.getPlaceable(str)
			if err != nil {
				return nil, err
			}
			elements = append(elements, placeable)
		case '}':
			return nil, newError(str.index, "E0027")
		default:
			elements = append(elements, parser.getTextElement(str))
		}
	}

	pattern := &ast.Pattern{
		Base:     ast.Base{Type: ast.TypePattern},
		Elements: parser.dedent(elements, commonIndent),
	}
	parser.setSpan(pattern, start, str.index)
	return pattern, nil
}

// dedent strips the common indent from the transient indent tokens and joins
// adjacent text content into single elements
func (parser *Parser) dedent(elements []interface{}, commonIndent int) []ast.PatternElement {
	trimmed := make([]ast.PatternElement, 0, len(elements))

	for _, element := range elements {
		if placeable, ok := element.(*ast.Placeable); ok {
			trimmed = append(trimmed, placeable)
			continue
		}

		if indent, ok := element.(*indentElement); ok {
			indent.value = indent.value[:len(indent.value)-commonIndent]
			if indent.value == "" {
				continue
			}
		}

		if len(trimmed) > 0 {
			if text, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
				switch current := element.(type) {
				case *ast.TextElement:
					text.Value += current.Value
					if text.Span != nil && current.Span != nil {
						text.Span.End = current.Span.End
					}
				case *indentElement:
					text.Value += current.value
					if text.Span != nil {
						text.Span.End = current.end
					}
				default:
					panic("dedent: unexpected pattern element")
				}
				continue
			}
		}

		if indent, ok := element.(*indentElement); ok {
			// An indent with no preceding text element becomes a text element
			// of its own (e.g. following a placeable)
			text := &ast.TextElement{Base: ast.Base{Type: ast.TypeTextElement}, Value: indent.value}
			parser.setSpan(text, indent.start, indent.end)
			trimmed = append(trimmed, text)
			continue
		}

		trimmed = append(trimmed, element.(*ast.TextElement))
	}

	// Trim trailing whitespace from the end of the pattern
	if len(trimmed) > 0 {
		if text, ok := trimmed[len(trimmed)-1].(*ast.TextElement); ok {
			text.Value = strings.TrimRight(text.Value, " \t\n\r")
			if text.Value == "" {
				trimmed = trimmed[:len(trimmed)-1]
			}
		}
	}

	return trimmed
}

// getTextElement parses a run of literal text up to the next placeable brace
// or line ending
func (parser *Parser) getTextElement(str *stream) *ast.TextElement {
	start := str.index

	buffer := ""
	for {
		char := str.currentChar()
		if char == EOF || char == '{' || char == '}' || char == EOL {
			break
		}
		buffer += string(char)
		str.next()
	}

	text := &ast.TextElement{Base: ast.Base{Type: ast.TypeTextElement}, Value: buffer}
	parser.setSpan(text, start, str.index)
	return text
}

// getPlaceable parses a placeable node
func (parser *Parser) getPlaceable(str *stream) (*ast.Placeable, error) {
	start := str.index

	if err := str.expectChar('{'); err != nil {
		return nil, err
	}
	str.skipBlank()

	expression, err := parser.getExpression(str)
	if err != nil {
		return nil, err
	}

	if err := str.expectChar('}'); err != nil {
		return nil, err
	}

	placeable := &ast.Placeable{Base: ast.Base{Type: ast.TypePlaceable}, Expression: expression}
	parser.setSpan(placeable, start, str.index)
	return placeable, nil
}

// getExpression parses the expression inside a placeable; an inline
// expression followed by '->' becomes the selector of a select expression
func (parser *Parser) getExpression(str *stream) (ast.Expression, error) {
	start := str.index

	selector, err := parser.getInlineExpression(str)
	if err != nil {
		return nil, err
	}

	str.skipBlank()

	isSelect := str.currentChar() == '-' && str.peek() == '>'
	str.resetPeek(0)

	if !isSelect {
		// Term attributes may only be referenced inside a selector
		if term, ok := selector.(*ast.TermReference); ok && term.Attribute != nil {
			return nil, newError(str.index, "E0019")
		}
		return selector, nil
	}

	switch sel := selector.(type) {
	case *ast.MessageReference:
		if sel.Attribute == nil {
			return nil, newError(str.index, "E0016")
		}
		return nil, newError(str.index, "E0018")
	case *ast.TermReference:
		if sel.Attribute == nil {
			return nil, newError(str.index, "E0017")
		}
	case *ast.Placeable:
		return nil, newError(str.index, "E0029")
	}

	// Skip the '->'
	str.next()
	str.next()

	str.skipBlankInline()
	if err := str.expectLineEnd(); err != nil {
		return nil, err
	}

	variants, err := parser.getVariants(str)
	if err != nil {
		return nil, err
	}

	selectExpression := &ast.SelectExpression{
		Base:     ast.Base{Type: ast.TypeSelectExpression},
		Selector: selector,
		Variants: variants,
	}
	parser.setSpan(selectExpression, start, str.index)
	return selectExpression, nil
}

// getInlineExpression parses an inline expression node
func (parser *Parser) getInlineExpression(str *stream) (ast.InlineExpression, error) {
	start := str.index

	if str.currentChar() == '{' {
		return parser.getPlaceable(str)
	}

	if str.isNumberStart() {
		return parser.getNumber(str)
	}

	if str.currentChar() == '"' {
		return parser.getString(str)
	}

	if str.currentChar() == '$' {
		str.next()
		id, err := parser.getIdentifier(str)
		if err != nil {
			return nil, err
		}
		variable := &ast.VariableReference{Base: ast.Base{Type: ast.TypeVariableReference}, ID: id}
		parser.setSpan(variable, start, str.index)
		return variable, nil
	}

	if str.currentChar() == '-' {
		str.next()
		id, err := parser.getIdentifier(str)
		if err != nil {
			return nil, err
		}

		var attribute *ast.Identifier
		if str.currentChar() == '.' {
			str.next()
			attribute, err = parser.getIdentifier(str)
			if err != nil {
				return nil, err
			}
		}

		// Terms receive their variables through call arguments
		var arguments *ast.CallArguments
		str.peekBlank()
		if str.currentPeek() == '(' {
			str.skipToPeek()
			arguments, err = parser.getCallArguments(str)
			if err != nil {
				return nil, err
			}
		}

		term := &ast.TermReference{
			Base:      ast.Base{Type: ast.TypeTermReference},
			ID:        id,
			Attribute: attribute,
			Arguments: arguments,
		}
		parser.setSpan(term, start, str.index)
		return term, nil
	}

	if str.isIdentifierStart() {
		id, err := parser.getIdentifier(str)
		if err != nil {
			return nil, err
		}

		str.peekBlank()
		if str.currentPeek() == '(' {
			if !functionNamePattern.MatchString(id.Name) {
				return nil, newError(str.index, "E0008")
			}
			str.skipToPeek()

			arguments, err := parser.getCallArguments(str)
			if err != nil {
				return nil, err
			}

			function := &ast.FunctionReference{
				Base:      ast.Base{Type: ast.TypeFunctionReference},
				ID:        id,
				Arguments: arguments,
			}
			parser.setSpan(function, start, str.index)
			return function, nil
		}

		var attribute *ast.Identifier
		if str.currentChar() == '.' {
			str.next()
			attribute, err = parser.getIdentifier(str)
			if err != nil {
				return nil, err
			}
		}

		message := &ast.MessageReference{
			Base:      ast.Base{Type: ast.TypeMessageReference},
			ID:        id,
			Attribute: attribute,
		}
		parser.setSpan(message, start, str.index)
		return message, nil
	}

	return nil, newError(str.index, "E0028")
}

// getCallArguments parses the arguments passed to a term or function
// reference; all positional arguments have to precede the named ones and
// named argument names have to be unique
func (parser *Parser) getCallArguments(str *stream) (*ast.CallArguments, error) {
	start := str.index

	positional := []ast.InlineExpression{}
	named := []*ast.NamedArgument{}
	names := make(map[string]struct{})

	if err := str.expectChar('('); err != nil {
		return nil, err
	}
	str.skipBlank()

	for {
		if str.currentChar() == ')' {
			break
		}

		argStart := str.index
		argument, err := parser.getCallArgument(str)
		if err != nil {
			return nil, err
		}

		if namedArg, ok := argument.(*ast.NamedArgument); ok {
			if _, duplicate := names[namedArg.Name.Name]; duplicate {
				return nil, newError(argStart, "E0022")
			}
			names[namedArg.Name.Name] = struct{}{}
			named = append(named, namedArg)
		} else if len(named) > 0 {
			return nil, newError(argStart, "E0021")
		} else {
			positional = append(positional, argument.(ast.InlineExpression))
		}

		str.skipBlank()
		if str.currentChar() == ',' {
			str.next()
			str.skipBlank()
			continue
		}
		break
	}

	if err := str.expectChar(')'); err != nil {
		return nil, err
	}

	arguments := &ast.CallArguments{
		Base:       ast.Base{Type: ast.TypeCallArguments},
		Positional: positional,
		Named:      named,
	}
	parser.setSpan(arguments, start, str.index)
	return arguments, nil
}

// getCallArgument parses a single call argument, positional or named
func (parser *Parser) getCallArgument(str *stream) (ast.Node, error) {
	start := str.index

	expression, err := parser.getInlineExpression(str)
	if err != nil {
		return nil, err
	}

	str.skipBlank()
	if str.currentChar() != ':' {
		return expression, nil
	}

	// The name of a named argument has to be a simple identifier, which got
	// parsed as a message reference without an attribute
	reference, ok := expression.(*ast.MessageReference)
	if !ok || reference.Attribute != nil {
		return nil, newError(str.index, "E0009")
	}

	str.next()
	str.skipBlank()

	value, err := parser.getLiteral(str)
	if err != nil {
		return nil, err
	}

	namedArgument := &ast.NamedArgument{
		Base:  ast.Base{Type: ast.TypeNamedArgument},
		Name:  reference.ID,
		Value: value,
	}
	parser.setSpan(namedArgument, start, str.index)
	return namedArgument, nil
}

// getVariants parses the variant list of a select expression
func (parser *Parser) getVariants(str *stream) ([]*ast.Variant, error) {
	var variants []*ast.Variant
	hasDefault := false

	str.skipBlank()
	for str.isVariantStart() {
		variant, err := parser.getVariant(str, hasDefault)
		if err != nil {
			return nil, err
		}
		if variant.Default {
			hasDefault = true
		}
		variants = append(variants, variant)

		if err := str.expectLineEnd(); err != nil {
			return nil, err
		}
		str.skipBlank()
	}

	if len(variants) == 0 {
		return nil, newError(str.index, "E0011")
	}
	if !hasDefault {
		return nil, newError(str.index, "E0010")
	}
	return variants, nil
}

// getVariant parses a single select expression variant
func (parser *Parser) getVariant(str *stream, hasDefault bool) (*ast.Variant, error) {
	start := str.index

	isDefault := false
	if str.currentChar() == '*' {
		if hasDefault {
			return nil, newError(str.index, "E0015")
		}
		str.next()
		isDefault = true
	}

	if err := str.expectChar('['); err != nil {
		return nil, err
	}
	str.skipBlank()

	key, err := parser.getVariantKey(str)
	if err != nil {
		return nil, err
	}

	str.skipBlank()
	if err := str.expectChar(']'); err != nil {
		return nil, err
	}

	value, err := parser.maybeGetPattern(str)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, newError(str.index, "E0012")
	}

	variant := &ast.Variant{
		Base:    ast.Base{Type: ast.TypeVariant},
		Key:     key,
		Value:   value,
		Default: isDefault,
	}
	parser.setSpan(variant, start, str.index)
	return variant, nil
}

// getVariantKey parses the key of a variant (number literal or identifier)
func (parser *Parser) getVariantKey(str *stream) (ast.VariantKey, error) {
	char := str.currentChar()
	if char == EOF {
		return nil, newError(str.index, "E0013")
	}
	if isCharDigit(char) || char == '-' {
		return parser.getNumber(str)
	}
	return parser.getIdentifier(str)
}

// getLiteral parses a string or number literal
func (parser *Parser) getLiteral(str *stream) (ast.Literal, error) {
	if str.isNumberStart() {
		return parser.getNumber(str)
	}
	if str.currentChar() == '"' {
		return parser.getString(str)
	}
	return nil, newError(str.index, "E0014")
}

// getNumber parses a number literal, preserved verbatim as a string
func (parser *Parser) getNumber(str *stream) (*ast.NumberLiteral, error) {
	start := str.index

	value := ""
	if str.currentChar() == '-' {
		str.next()
		value += "-"
	}

	digits, err := parser.getDigits(str)
	if err != nil {
		return nil, err
	}
	value += digits

	if str.currentChar() == '.' {
		str.next()
		digits, err = parser.getDigits(str)
		if err != nil {
			return nil, err
		}
		value += "." + digits
	}

	number := &ast.NumberLiteral{Base: ast.Base{Type: ast.TypeNumberLiteral}, Value: value}
	parser.setSpan(number, start, str.index)
	return number, nil
}

// getDigits parses one or more ASCII digits
func (parser *Parser) getDigits(str *stream) (string, error) {
	digits := ""
	for {
		char, ok := str.takeDigit()
		if !ok {
			break
		}
		digits += string(char)
	}
	if digits == "" {
		return "", newError(str.index, "E0004", "0-9")
	}
	return digits, nil
}

// getString parses a string literal. Escape sequences are captured verbatim
// into the value; consumers decode them with Unescape.
func (parser *Parser) getString(str *stream) (*ast.StringLiteral, error) {
	start := str.index

	if err := str.expectChar('"'); err != nil {
		return nil, err
	}

	value := ""
	for {
		char, ok := str.takeChar(func(c rune) bool { return c != '"' && c != EOL })
		if !ok {
			break
		}
		if char == '\\' {
			sequence, err := parser.getEscapeSequence(str)
			if err != nil {
				return nil, err
			}
			value += sequence
		} else {
			value += string(char)
		}
	}

	if str.currentChar() == EOL {
		return nil, newError(str.index, "E0020")
	}
	if err := str.expectChar('"'); err != nil {
		return nil, err
	}

	literal := &ast.StringLiteral{Base: ast.Base{Type: ast.TypeStringLiteral}, Value: value}
	parser.setSpan(literal, start, str.index)
	return literal, nil
}

// getEscapeSequence captures an escape sequence after its leading backslash
func (parser *Parser) getEscapeSequence(str *stream) (string, error) {
	next := str.currentChar()
	switch next {
	case '\\', '"':
		str.next()
		return "\\" + string(next), nil
	case 'u':
		return parser.getUnicodeEscapeSequence(str, 'u', 4)
	case 'U':
		return parser.getUnicodeEscapeSequence(str, 'U', 6)
	default:
		return "", newError(str.index, "E0025", string(next))
	}
}

// getUnicodeEscapeSequence captures a \uXXXX or \UXXXXXX escape verbatim
func (parser *Parser) getUnicodeEscapeSequence(str *stream, u rune, digits int) (string, error) {
	if err := str.expectChar(u); err != nil {
		return "", err
	}

	sequence := ""
	for i := 0; i < digits; i++ {
		char, ok := str.takeHexDigit()
		if !ok {
			unexpected := ""
			if c := str.currentChar(); c != EOF {
				unexpected = string(c)
			}
			return "", newError(str.index, "E0026", "\\"+string(u)+sequence+unexpected)
		}
		sequence += string(char)
	}

	return "\\" + string(u) + sequence, nil
}
