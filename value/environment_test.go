package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefineAndLookup(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Num(10))

	v, err := env.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, "10", v.String())
}

func TestLookupWalksParentChain(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", Num(1))
	child := root.Child()

	v, err := child.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, "1", v.String())
}

func TestChildShadowsParent(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", Num(1))
	child := root.Child()
	child.Define("x", Num(2))

	v, err := child.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, "2", v.String())

	rootVal, err := root.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, "1", rootVal.String())
}

func TestLookupUnboundIsError(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Lookup("missing")
	require.Error(t, err)
}

func TestDefineOverwritesSameFrame(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", Num(1))
	env.Define("x", Num(2))

	v, err := env.Lookup("x")
	require.NoError(t, err)
	require.Equal(t, "2", v.String())
}
