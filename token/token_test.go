package token

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		LeftParen:      "LEFT_PAREN",
		RightParen:     "RIGHT_PAREN",
		Quote:          "QUOTE",
		Quasiquote:     "QUASIQUOTE",
		Unquote:        "UNQUOTE",
		Dot:            "DOT",
		NumericLiteral: "NUMERIC_LITERAL",
		BooleanLiteral: "BOOLEAN_LITERAL",
		StringLiteral:  "STRING_LITERAL",
		Identifier:     "IDENTIFIER",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	tok := New(Identifier, "foo", 3, 7)
	if tok.Kind != Identifier || tok.Literal != "foo" || tok.Line != 3 || tok.Column != 7 {
		t.Errorf("New() = %+v, unexpected fields", tok)
	}
}
