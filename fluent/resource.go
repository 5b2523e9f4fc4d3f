package fluent

import (
	"os"

	"github.com/pkg/errors"

	"github.com/Demivan/fluentnet/fluent/parser"
	"github.com/Demivan/fluentnet/fluent/parser/ast"
)

// Resource represents a collection of messages and terms extracted out of an FTL source
type Resource struct {
	messages []*ast.Message
	terms    []*ast.Term
	junk     []*ast.Junk
}

// NewResource parses the given source string and assembles its entries into a
// new Resource object. Parsing never fails as a whole: content that could not
// be parsed is available through Junk. Parser options (e.g. parser.WithSpans)
// are passed through to the underlying parser.
func NewResource(source string, opts ...parser.Option) *Resource {
	parsed := parser.New(opts...).Parse(source)

	resource := &Resource{
		messages: make([]*ast.Message, 0),
		terms:    make([]*ast.Term, 0),
	}

	// Comments are not needed for formatting
	for _, entry := range parsed.Body {
		switch node := entry.(type) {
		case *ast.Message:
			resource.messages = append(resource.messages, node)
		case *ast.Term:
			resource.terms = append(resource.terms, node)
		case *ast.Junk:
			resource.junk = append(resource.junk, node)
		}
	}

	return resource
}

// LoadResourceFile reads the FTL file at the given path and parses it into a Resource
func LoadResourceFile(path string, opts ...parser.Option) (*Resource, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read FTL resource %s", path)
	}
	return NewResource(string(source), opts...), nil
}

// IsEmpty returns whether no terms and no messages are present in the resource.
// This can be the case if the parser could not parse any valid messages and terms.
func (resource *Resource) IsEmpty() bool {
	return len(resource.messages) == 0 && len(resource.terms) == 0
}

// Junk returns the junk entries the parser stumbled upon while parsing the source
func (resource *Resource) Junk() []*ast.Junk {
	return resource.junk
}
