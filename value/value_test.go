package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintedForm(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"nil", Nil, "()"},
		{"true", True, "#t"},
		{"false", False, "#f"},
		{"whole number prints without decimal", Num(42), "42"},
		{"fractional number prints as decimal", Num(3.5), "3.5"},
		{"negative whole number", Num(-7), "-7"},
		{"string is quoted", Str("hi\nthere"), "\"hi\nthere\""},
		{"string escapes quotes and backslashes", Str(`a"b\c`), `"a\"b\\c"`},
		{"symbol prints verbatim", Sym("foo"), "foo"},
		{"proper list", List(Num(1), Num(2), Num(3)), "(1 2 3)"},
		{"dotted pair", Cons(Sym("a"), Sym("b")), "(a . b)"},
		{"improper list tail", Cons(Num(1), Cons(Num(2), Num(3))), "(1 2 . 3)"},
		{"builtin", NewBuiltin("car", nil), "#<procedure>"},
		{"lambda", NewLambda("", nil, nil, nil), "#<procedure>"},
		{"macro", NewMacro(nil, nil), "#<macro>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestDisplayUnquotesStrings(t *testing.T) {
	require.Equal(t, "hi", Str("hi").Display())
	require.Equal(t, "42", Num(42).Display())
}

func TestTruthiness(t *testing.T) {
	require.True(t, Nil.IsTruthy())
	require.True(t, Num(0).IsTruthy())
	require.True(t, Str("").IsTruthy())
	require.False(t, False.IsTruthy())
	require.True(t, True.IsTruthy())
}

func TestProperListPredicate(t *testing.T) {
	require.True(t, Nil.IsProperList())
	require.True(t, List(Num(1), Num(2)).IsProperList())
	require.False(t, Cons(Num(1), Num(2)).IsProperList())
}

func TestEqNumbersWithinTolerance(t *testing.T) {
	require.True(t, Num(1.0).Eq(Num(1.0+1e-10)))
	require.False(t, Num(1.0).Eq(Num(1.1)))
}

func TestEqIsIdentityForPairs(t *testing.T) {
	a := List(Num(1), Num(2))
	b := List(Num(1), Num(2))
	require.False(t, a.Eq(b))
	require.True(t, a.Eq(a))
}

func TestEqualIsStructural(t *testing.T) {
	a := List(Num(1), Num(2))
	b := List(Num(1), Num(2))
	require.True(t, a.Equal(b))

	c := List(Num(1), Num(3))
	require.False(t, a.Equal(c))
}

func TestToSliceRejectsImproperList(t *testing.T) {
	_, err := Cons(Num(1), Num(2)).ToSlice()
	require.Error(t, err)
}

func TestToSliceFlattensProperList(t *testing.T) {
	elems, err := List(Num(1), Num(2), Num(3)).ToSlice()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	require.Equal(t, "2", elems[1].String())
}
