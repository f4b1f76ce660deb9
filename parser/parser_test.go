package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schemego/lexer"
)

func parseOne(t *testing.T, src string) string {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	p := New(toks)
	v, err := p.Parse()
	require.NoError(t, err)
	require.True(t, p.IsAtEnd())
	return v.String()
}

func TestParseAtoms(t *testing.T) {
	require.Equal(t, "42", parseOne(t, "42"))
	require.Equal(t, "3.5", parseOne(t, "3.5"))
	require.Equal(t, "#t", parseOne(t, "#t"))
	require.Equal(t, "#f", parseOne(t, "#f"))
	require.Equal(t, `"hi"`, parseOne(t, `"hi"`))
	require.Equal(t, "foo", parseOne(t, "foo"))
}

func TestParseProperList(t *testing.T) {
	require.Equal(t, "(+ 1 2)", parseOne(t, "(+ 1 2)"))
	require.Equal(t, "()", parseOne(t, "()"))
	require.Equal(t, "(1 (2 3) 4)", parseOne(t, "(1 (2 3) 4)"))
}

func TestParseDottedPair(t *testing.T) {
	require.Equal(t, "(a . b)", parseOne(t, "(a . b)"))
	require.Equal(t, "(1 2 . 3)", parseOne(t, "(1 2 . 3)"))
}

func TestParseQuoteFamily(t *testing.T) {
	require.Equal(t, "(quote x)", parseOne(t, "'x"))
	require.Equal(t, "(quasiquote (a (unquote b)))", parseOne(t, "`(a ,b)"))
}

func TestParseAllReadsMultipleTopLevelForms(t *testing.T) {
	toks, err := lexer.Tokenize("(define x 1) (define y 2) (+ x y)")
	require.NoError(t, err)

	forms, err := ParseAll(toks)
	require.NoError(t, err)
	require.Len(t, forms, 3)
	require.Equal(t, "(+ x y)", forms[2].String())
}

func TestParseStrayCloseParenIsSyntaxError(t *testing.T) {
	toks, err := lexer.Tokenize(")")
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
}

func TestParseStrayDotIsSyntaxError(t *testing.T) {
	toks, err := lexer.Tokenize(".")
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
}

func TestParseEmptyQueueIsSyntaxError(t *testing.T) {
	_, err := New(nil).Parse()
	require.Error(t, err)
}

func TestParseUnterminatedListIsSyntaxError(t *testing.T) {
	toks, err := lexer.Tokenize("(+ 1 2")
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
}

func TestParseMissingCloseAfterDottedTailIsSyntaxError(t *testing.T) {
	toks, err := lexer.Tokenize("(a . b c)")
	require.NoError(t, err)
	_, err = New(toks).Parse()
	require.Error(t, err)
}
