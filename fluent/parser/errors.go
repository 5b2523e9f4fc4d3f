package parser

import "fmt"

// Error represents a grammar error raised while parsing a single entry.
// It carries a short error code (E0001-E0029), zero or more arguments and the
// byte index at which the error was observed. Errors of this type never
// escape Parse; they are packaged into junk entries at entry boundaries.
type Error struct {
	Code string
	Args []string
	Pos  int
}

// Error renders the stable human-readable message for the error code
func (err *Error) Error() string {
	return errorMessage(err.Code, err.Args)
}

// newError creates a new grammar error observed at the given byte index
func newError(pos int, code string, args ...string) *Error {
	return &Error{
		Code: code,
		Args: args,
		Pos:  pos,
	}
}

func errorMessage(code string, args []string) string {
	arg := func(n int) string {
		if n < len(args) {
			return args[n]
		}
		return ""
	}

	switch code {
	case "E0001":
		return "Generic error"
	case "E0002":
		return "Expected an entry start"
	case "E0003":
		return fmt.Sprintf("Expected token: \"%s\"", arg(0))
	case "E0004":
		return fmt.Sprintf("Expected a character from range: \"%s\"", arg(0))
	case "E0005":
		return fmt.Sprintf("Expected message \"%s\" to have a value or attributes", arg(0))
	case "E0006":
		return fmt.Sprintf("Expected term \"-%s\" to have a value", arg(0))
	case "E0007":
		return "Keyword cannot end with a whitespace"
	case "E0008":
		return "The callee has to be an upper-case identifier or a term"
	case "E0009":
		return "The argument name has to be a simple identifier"
	case "E0010":
		return "Expected one of the variants to be marked as default (*)"
	case "E0011":
		return "Expected at least one variant after \"->\""
	case "E0012":
		return "Expected value"
	case "E0013":
		return "Expected variant key"
	case "E0014":
		return "Expected literal"
	case "E0015":
		return "Only one variant can be marked as default (*)"
	case "E0016":
		return "Message references cannot be used as selectors"
	case "E0017":
		return "Terms cannot be used as selectors"
	case "E0018":
		return "Attributes of messages cannot be used as selectors"
	case "E0019":
		return "Attributes of terms cannot be used as placeables"
	case "E0020":
		return "Unterminated string expression"
	case "E0021":
		return "Positional arguments must not follow named arguments"
	case "E0022":
		return "Named arguments must be unique"
	case "E0025":
		return fmt.Sprintf("Unknown escape sequence: \\%s.", arg(0))
	case "E0026":
		return fmt.Sprintf("Invalid Unicode escape sequence: %s.", arg(0))
	case "E0027":
		return "Unbalanced closing brace in TextElement."
	case "E0028":
		return "Expected an inline expression"
	case "E0029":
		return "Expected simple expression as selector"
	default:
		return code
	}
}
