package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schemego/token"
)

func TestTokenizeBasicForm(t *testing.T) {
	toks, err := Tokenize(`(+ 1 2.5 "hi\n" #t foo)`)
	require.NoError(t, err)

	want := []token.Kind{
		token.LeftParen, token.Identifier, token.NumericLiteral,
		token.NumericLiteral, token.StringLiteral, token.BooleanLiteral,
		token.Identifier, token.RightParen,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		require.Equalf(t, k, toks[i].Kind, "token %d", i)
	}
	require.Equal(t, "hi\n", toks[4].Literal)
	require.True(t, toks[5].Bool)
}

func TestTokenizeQuoteFamily(t *testing.T) {
	toks, err := Tokenize("'x `y ,z")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.Quote, token.Identifier,
		token.Quasiquote, token.Identifier,
		token.Unquote, token.Identifier,
	}, kinds(toks))
}

func TestTokenizeDottedPair(t *testing.T) {
	toks, err := Tokenize("(a . b)")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.LeftParen, token.Identifier, token.Dot, token.Identifier, token.RightParen,
	}, kinds(toks))
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize("1 ; comment\n#| block\ncomment |# 2")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.NumericLiteral, token.NumericLiteral}, kinds(toks))
}

func TestTokenizeNegativeNumberVsMinusSign(t *testing.T) {
	toks, err := Tokenize("(- 1) -5")
	require.NoError(t, err)
	require.Equal(t, token.Identifier, toks[1].Kind)
	require.Equal(t, token.NumericLiteral, toks[4].Kind)
}

func TestTokenizeUnterminatedStringIsSyntaxError(t *testing.T) {
	_, err := Tokenize(`"abc`)
	require.Error(t, err)
}

func TestTokenizeUnterminatedBlockCommentIsSyntaxError(t *testing.T) {
	_, err := Tokenize("#| abc")
	require.Error(t, err)
}

func TestTokenizeBadHashLiteralIsSyntaxError(t *testing.T) {
	_, err := Tokenize("#z")
	require.Error(t, err)
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tk := range toks {
		out[i] = tk.Kind
	}
	return out
}
