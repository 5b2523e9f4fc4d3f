package fluent

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/Demivan/fluentnet/fluent/parser/ast"
)

// Bundle represents a collection of messages and terms collected from one or many resources.
// It provides the main API to format messages.
type Bundle struct {
	locales  []language.Tag
	messages map[string]*ast.Message
	terms    map[string]*ast.Term
}

// NewBundle creates a new empty bundle
func NewBundle(primaryLocale language.Tag, fallbackLocales ...language.Tag) *Bundle {
	locales := make([]language.Tag, 0, len(fallbackLocales)+1)
	locales = append(locales, primaryLocale)
	locales = append(locales, fallbackLocales...)

	return &Bundle{
		locales:  locales,
		messages: make(map[string]*ast.Message),
		terms:    make(map[string]*ast.Term),
	}
}

// AddResource adds a Resource to the Bundle.
// If a message or term was already defined by another resource, an error is raised and the entry is skipped.
func (bundle *Bundle) AddResource(resource *Resource) (errs []error) {
	for _, message := range resource.messages {
		id := message.ID.Name
		if bundle.messages[id] != nil {
			errs = append(errs, fmt.Errorf("message '%s' is already defined", id))
			continue
		}
		bundle.messages[id] = message
	}
	for _, term := range resource.terms {
		id := term.ID.Name
		if bundle.terms[id] != nil {
			errs = append(errs, fmt.Errorf("term '%s' is already defined", id))
			continue
		}
		bundle.terms[id] = term
	}
	return
}

// AddResourceOverriding adds a Resource to the Bundle.
// If a message or term was already defined by another resource, the already existing one gets overridden.
func (bundle *Bundle) AddResourceOverriding(resource *Resource) {
	for _, message := range resource.messages {
		bundle.messages[message.ID.Name] = message
	}
	for _, term := range resource.terms {
		bundle.terms[term.ID.Name] = term
	}
}

type formatOption func(*resolver)

// WithVariable creates a format option with a single variable
func WithVariable(key string, value interface{}) formatOption {
	return WithVariables(map[string]interface{}{key: value})
}

// WithVariables creates a format option with multiple variables
func WithVariables(variables map[string]interface{}) formatOption {
	return func(r *resolver) {
		if r.variables == nil {
			r.variables = make(map[string]Value, len(variables))
		}

		for name, variable := range variables {
			r.variables[strings.TrimSpace(name)] = resolveValue(variable)
		}
	}
}

func resolveValue(value interface{}) Value {
	switch val := value.(type) {
	case string:
		return String(val)
	case *StringValue:
		return val
	case *NumberValue:
		return val
	case float32:
		return Number(val)
	case float64:
		return Number(float32(val))
	case uint:
		return Number(float32(val))
	case uint8:
		return Number(float32(val))
	case uint16:
		return Number(float32(val))
	case uint32:
		return Number(float32(val))
	case uint64:
		return Number(float32(val))
	case int:
		return Number(float32(val))
	case int8:
		return Number(float32(val))
	case int16:
		return Number(float32(val))
	case int32:
		return Number(float32(val))
	case int64:
		return Number(float32(val))
	default:
		return nil
	}
}

// WithFunction creates a format option with a single function
func WithFunction(k string, f Function) formatOption {
	return WithFunctions(map[string]Function{k: f})
}

// WithFunctions creates a format option with multiple functions
func WithFunctions(functions map[string]Function) formatOption {
	return func(r *resolver) {
		if r.functions == nil {
			r.functions = make(map[string]Function, len(functions))
		}

		for name, function := range functions {
			r.functions[strings.TrimSpace(name)] = function
		}
	}
}

// FormatMessage formats the message with the given key.
// To pass variables or functions, pass options created using WithVariable, WithVariables, WithFunction or WithFunctions.
// Besides the formatted message, this method returns the errors the resolver stumbled upon during resolving specific values
// and an optional error if there is no message with the given key or the message has no value.
// If the resolver returns errors it does not automatically mean that the whole message could not be resolved.
// It may be just incomplete.
func (bundle *Bundle) FormatMessage(key string, options ...formatOption) (string, []error, error) {
	msg := bundle.messages[key]
	if msg == nil {
		return "", nil, fmt.Errorf("message '%s' does not exist", key)
	}
	if msg.Value == nil {
		return "", nil, fmt.Errorf("message '%s' has no value", key)
	}

	res := &resolver{
		bundle:    bundle,
		params:    nil,
		variables: make(map[string]Value),
		functions: make(map[string]Function),
		errors:    []error{},
	}
	for _, opt := range options {
		opt(res)
	}

	result := res.resolvePattern(msg.Value).String()
	return result, res.errors, nil
}
