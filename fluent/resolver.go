package fluent

import (
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"

	"github.com/Demivan/fluentnet/fluent/parser"
	"github.com/Demivan/fluentnet/fluent/parser/ast"
)

var pluralStrings = map[plural.Form]string{
	plural.Other: "other",
	plural.Zero:  "zero",
	plural.One:   "one",
	plural.Two:   "two",
	plural.Few:   "few",
	plural.Many:  "many",
}

// The resolver is used to resolve instances of ast.Pattern into instances of Value.
// It uses context-relevant values and the initial Bundle for resolving specific values.
type resolver struct {
	bundle    *Bundle
	params    map[string]Value
	variables map[string]Value
	functions map[string]Function
	errors    []error
}

func (resolver *resolver) resolveExpression(expression ast.Expression) Value {
	switch e := expression.(type) {
	case *ast.Placeable:
		return resolver.resolveExpression(e.Expression)

	case *ast.StringLiteral:
		// The parser keeps string literals in their raw escaped form
		return String(parser.Unescape(e.Value))

	case *ast.NumberLiteral:
		number, err := NumberFromLiteral(e.Value)
		if err != nil {
			resolver.errors = append(resolver.errors, err)
			return &NoValue{value: "[" + e.Value + "]"}
		}
		return number

	case *ast.MessageReference:
		return resolver.resolveMessageReference(e)

	case *ast.TermReference:
		return resolver.resolveTermReference(e)

	case *ast.VariableReference:
		return resolver.resolveVariableReference(e)

	case *ast.FunctionReference:
		return resolver.resolveFunctionReference(e)

	case *ast.SelectExpression:
		return resolver.resolveSelectExpression(e)

	default:
		return &NoValue{value: "???"}
	}
}

// resolveVariantKey turns a variant key (identifier or number literal) into a
// value it can be matched against
func (resolver *resolver) resolveVariantKey(key ast.VariantKey) Value {
	switch k := key.(type) {
	case *ast.Identifier:
		return String(k.Name)
	case *ast.NumberLiteral:
		number, err := NumberFromLiteral(k.Value)
		if err != nil {
			resolver.errors = append(resolver.errors, err)
			return &NoValue{value: "[" + k.Value + "]"}
		}
		return number
	default:
		return &NoValue{value: "???"}
	}
}

func (resolver *resolver) resolveMessageReference(ref *ast.MessageReference) Value {
	message := resolver.bundle.messages[ref.ID.Name]
	if message == nil {
		resolver.errors = append(resolver.errors, fmt.Errorf("unknown message '%s'", ref.ID.Name))
		return &NoValue{
			value: ref.ID.Name,
		}
	}

	if ref.Attribute != nil {
		var attribute *ast.Attribute
		for _, attr := range message.Attributes {
			if attr.ID.Name == ref.Attribute.Name {
				attribute = attr
				break
			}
		}
		if attribute == nil {
			resolver.errors = append(resolver.errors, fmt.Errorf("unknown message attribute '%s.%s'", ref.ID.Name, ref.Attribute.Name))
			return &NoValue{
				value: ref.ID.Name + "." + ref.Attribute.Name,
			}
		}
		return resolver.resolvePattern(attribute.Value)
	}

	if message.Value == nil {
		resolver.errors = append(resolver.errors, fmt.Errorf("message '%s' has no value", ref.ID.Name))
		return &NoValue{
			value: ref.ID.Name,
		}
	}

	return resolver.resolvePattern(message.Value)
}

func (resolver *resolver) resolveTermReference(ref *ast.TermReference) Value {
	term := resolver.bundle.terms[ref.ID.Name]
	if term == nil {
		resolver.errors = append(resolver.errors, fmt.Errorf("unknown term '-%s'", ref.ID.Name))
		return &NoValue{
			value: "-" + ref.ID.Name,
		}
	}

	if ref.Attribute != nil {
		var attribute *ast.Attribute
		for _, attr := range term.Attributes {
			if attr.ID.Name == ref.Attribute.Name {
				attribute = attr
				break
			}
		}
		if attribute == nil {
			resolver.errors = append(resolver.errors, fmt.Errorf("unknown term attribute '-%s.%s'", ref.ID.Name, ref.Attribute.Name))
			return &NoValue{
				value: "-" + ref.ID.Name + "." + ref.Attribute.Name,
			}
		}
		if ref.Arguments != nil {
			_, params := resolver.assembleArguments(ref.Arguments)
			resolver.params = params
		}
		resolved := resolver.resolvePattern(attribute.Value)
		resolver.params = nil
		return resolved
	}

	if ref.Arguments != nil {
		_, params := resolver.assembleArguments(ref.Arguments)
		resolver.params = params
	}
	resolved := resolver.resolvePattern(term.Value)
	resolver.params = nil
	return resolved
}

func (resolver *resolver) resolveVariableReference(ref *ast.VariableReference) Value {
	if resolver.params != nil {
		if val, set := resolver.params[ref.ID.Name]; set {
			return val
		}
		return &NoValue{value: "$" + ref.ID.Name}
	} else if resolver.variables != nil {
		if val, set := resolver.variables[ref.ID.Name]; set {
			return val
		}
	}

	resolver.errors = append(resolver.errors, fmt.Errorf("unknown variable '$%s'", ref.ID.Name))
	return &NoValue{value: "$" + ref.ID.Name}
}

func (resolver *resolver) resolveFunctionReference(ref *ast.FunctionReference) Value {
	function := resolver.functions[ref.ID.Name]
	if function == nil {
		resolver.errors = append(resolver.errors, fmt.Errorf("unknown function '%s'", ref.ID.Name))
		return &NoValue{
			value: ref.ID.Name + "()",
		}
	}

	positional, named := resolver.assembleArguments(ref.Arguments)
	return function(positional, named)
}

func (resolver *resolver) resolveSelectExpression(sel *ast.SelectExpression) Value {
	selector := resolver.resolveExpression(sel.Selector)
	if _, ok := selector.(*NoValue); ok {
		return resolver.resolveDefaultVariant(sel.Variants)
	}

	for _, variant := range sel.Variants {
		if resolver.matchesVariant(selector, resolver.resolveVariantKey(variant.Key)) {
			return resolver.resolvePattern(variant.Value)
		}
	}

	return resolver.resolveDefaultVariant(sel.Variants)
}

func (resolver *resolver) resolveDefaultVariant(variants []*ast.Variant) Value {
	for _, variant := range variants {
		if variant.Default {
			return resolver.resolvePattern(variant.Value)
		}
	}
	resolver.errors = append(resolver.errors, fmt.Errorf("no default variant specified"))
	return &NoValue{
		value: "???",
	}
}

func (resolver *resolver) matchesVariant(selector, key Value) bool {
	if selStr, ok := selector.(*StringValue); ok {
		if keyStr, ok := key.(*StringValue); ok {
			return selStr.Value == keyStr.Value
		}
	}

	if selNum, ok := selector.(*NumberValue); ok {
		if keyNum, ok := key.(*NumberValue); ok {
			return selNum.Value == keyNum.Value
		}
		if keyStr, ok := key.(*StringValue); ok {
			// Numbers match identifier keys through their CLDR plural category
			category := pluralStrings[resolver.getPluralCategory(selNum.Value)]
			return keyStr.Value == category
		}
	}

	return false
}

func (resolver *resolver) resolvePattern(pattern *ast.Pattern) Value {
	result := ""
	for _, element := range pattern.Elements {
		switch el := element.(type) {
		case *ast.TextElement:
			result += el.Value
		case *ast.Placeable:
			result += resolver.resolveExpression(el.Expression).String()
		}
	}
	return &StringValue{
		Value: result,
	}
}

func (resolver *resolver) assembleArguments(args *ast.CallArguments) (positional []Value, named map[string]Value) {
	positional = make([]Value, 0, len(args.Positional))
	for _, arg := range args.Positional {
		positional = append(positional, resolver.resolveExpression(arg))
	}
	named = make(map[string]Value, len(args.Named))
	for _, arg := range args.Named {
		named[arg.Name.Name] = resolver.resolveExpression(arg.Value)
	}
	return
}

func (resolver *resolver) getPluralCategory(value float32) plural.Form {
	format := fmt.Sprintf("%.2f", value)
	parts := strings.Split(strings.TrimRight(format, "0"), ".")

	digits := make([]byte, len(parts[0])+len(parts[1]))
	for i, digit := range parts[0] {
		digits[i] = byte(digit - '0')
	}
	for i, digit := range parts[1] {
		digits[i+len(parts[0])] = byte(digit - '0')
	}

	return plural.Cardinal.MatchDigits(resolver.bundle.locales[0], digits, len(parts[0]), len(parts[1]))
}
