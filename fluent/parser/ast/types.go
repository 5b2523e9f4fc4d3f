package ast

// nodeType is used to declare the different possible types of AST nodes.
// The value of a node type is the exact "type" discriminator emitted when
// serializing the AST to JSON.
type nodeType string

const (
	TypeResource          nodeType = "Resource"
	TypeIdentifier        nodeType = "Identifier"
	TypeComment           nodeType = "Comment"
	TypeGroupComment      nodeType = "GroupComment"
	TypeResourceComment   nodeType = "ResourceComment"
	TypeMessage           nodeType = "Message"
	TypeTerm              nodeType = "Term"
	TypeAttribute         nodeType = "Attribute"
	TypePattern           nodeType = "Pattern"
	TypeTextElement       nodeType = "TextElement"
	TypePlaceable         nodeType = "Placeable"
	TypeStringLiteral     nodeType = "StringLiteral"
	TypeNumberLiteral     nodeType = "NumberLiteral"
	TypeMessageReference  nodeType = "MessageReference"
	TypeTermReference     nodeType = "TermReference"
	TypeVariableReference nodeType = "VariableReference"
	TypeFunctionReference nodeType = "FunctionReference"
	TypeSelectExpression  nodeType = "SelectExpression"
	TypeCallArguments     nodeType = "CallArguments"
	TypeNamedArgument     nodeType = "NamedArgument"
	TypeVariant           nodeType = "Variant"
	TypeJunk              nodeType = "Junk"
	TypeAnnotation        nodeType = "Annotation"
	TypeSpan              nodeType = "Span"
)
