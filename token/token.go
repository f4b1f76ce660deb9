// ==============================================================================================
// FILE: token/token.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: Defines the vocabulary the Tokenizer produces and the Parser consumes: the
//          discriminated token kinds of the source grammar and the payload each one carries.
// ==============================================================================================

package token

// Kind identifies the syntactic category of a Token.
type Kind int

const (
	// Delimiters
	LeftParen Kind = iota
	RightParen

	// Reader-macro prefixes
	Quote
	Quasiquote
	Unquote

	// Dotted-pair separator
	Dot

	// Literals
	NumericLiteral
	BooleanLiteral
	StringLiteral

	// Anything else that isn't a delimiter or recognized literal
	Identifier
)

// String renders a Kind for diagnostics and REPL debug dumps.
func (k Kind) String() string {
	switch k {
	case LeftParen:
		return "LEFT_PAREN"
	case RightParen:
		return "RIGHT_PAREN"
	case Quote:
		return "QUOTE"
	case Quasiquote:
		return "QUASIQUOTE"
	case Unquote:
		return "UNQUOTE"
	case Dot:
		return "DOT"
	case NumericLiteral:
		return "NUMERIC_LITERAL"
	case BooleanLiteral:
		return "BOOLEAN_LITERAL"
	case StringLiteral:
		return "STRING_LITERAL"
	case Identifier:
		return "IDENTIFIER"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit scanned from the source text. Tokens are
// one-shot: the parser consumes them from the front of an ordered queue and
// never revisits a position in the source.
type Token struct {
	Kind    Kind
	Literal string  // the lexeme verbatim (identifiers, the raw digits of a number, a processed string body)
	Num     float64 // populated only when Kind == NumericLiteral
	Bool    bool    // populated only when Kind == BooleanLiteral
	Line    int
	Column  int
}

// New builds a Token with the given kind and literal text, stamped with a
// source position for error reporting.
func New(kind Kind, literal string, line, column int) Token {
	return Token{Kind: kind, Literal: literal, Line: line, Column: column}
}
