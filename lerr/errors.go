// ==============================================================================================
// FILE: lerr/errors.go
// ==============================================================================================
// PACKAGE: lerr
// PURPOSE: The single interpreter-error type shared by the lexer, parser, evaluator, and
//          built-in library. Subkinds are distinguished by Kind, not by a family of Go types,
//          per spec §7 ("A single interpreter-error kind carries a human-readable message").
// ==============================================================================================

package lerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags which phase/category raised an Error. The wire message never
// mentions the Kind directly; it exists for callers (tests, REPL debug mode)
// that want to branch on error class without string-matching.
type Kind int

const (
	_ Kind = iota
	Syntax
	Unbound
	Type
	Arity
	Arithmetic
	Apply
	User
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Unbound:
		return "unbound variable"
	case Type:
		return "type error"
	case Arity:
		return "arity error"
	case Arithmetic:
		return "arithmetic error"
	case Apply:
		return "apply error"
	case User:
		return "user error"
	default:
		return "error"
	}
}

// Error is the interpreter's single error type. It implements the standard
// error interface and preserves an optional wrapped cause so a host-level
// panic recovered inside a builtin still carries its original detail.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a bare interpreter error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an existing error (typically a recovered host panic or an
// os-level failure in file mode) as an interpreter error of the given kind,
// keeping the original error reachable via errors.Unwrap.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	wrapped := errors.Wrapf(cause, format, args...)
	return &Error{Kind: kind, Message: wrapped.Error(), cause: cause}
}

// Syntaxf builds a *Syntax error — lex/parse failures.
func Syntaxf(format string, args ...interface{}) *Error { return New(Syntax, format, args...) }

// Unboundf builds an *Unbound error — missing environment binding.
func Unboundf(format string, args ...interface{}) *Error { return New(Unbound, format, args...) }

// Typef builds a *Type error — wrong Value variant for an operator/builtin.
func Typef(format string, args ...interface{}) *Error { return New(Type, format, args...) }

// Arityf builds an *Arity error — wrong argument count.
func Arityf(format string, args ...interface{}) *Error { return New(Arity, format, args...) }

// Arithmeticf builds an *Arithmetic error — division by zero, non-integer
// where an integer is required.
func Arithmeticf(format string, args ...interface{}) *Error { return New(Arithmetic, format, args...) }

// Applyf builds an *Apply error — operator is not a procedure.
func Applyf(format string, args ...interface{}) *Error { return New(Apply, format, args...) }

// Userf builds a *User error — raised by the `error` builtin, carrying the
// numeric code as text per spec §4.7/§9.
func Userf(format string, args ...interface{}) *Error { return New(User, format, args...) }
