package repl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schemego/eval"
)

func TestParenDeltaBasic(t *testing.T) {
	require.Equal(t, 1, parenDelta("(+ 1"))
	require.Equal(t, 0, parenDelta("(+ 1 2)"))
	require.Equal(t, -1, parenDelta("1 2)"))
}

func TestParenDeltaIgnoresParensInStrings(t *testing.T) {
	require.Equal(t, 0, parenDelta(`(display "(")`))
}

func TestParenDeltaIgnoresLineComments(t *testing.T) {
	require.Equal(t, 1, parenDelta("(+ 1 ; )"))
}

func TestEvalSourceReturnsLastFormValue(t *testing.T) {
	env := eval.NewRootEnv()
	v, err := evalSource("(define x 1) (+ x 1)", env)
	require.NoError(t, err)
	require.Equal(t, "2", v.String())
}

func TestEvalSourcePropagatesErrors(t *testing.T) {
	env := eval.NewRootEnv()
	_, err := evalSource("(car 1)", env)
	require.Error(t, err)
}
