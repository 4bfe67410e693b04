package group_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TalentFormula/rtfdoc/group"
)

type fakeDest struct {
	writes []string
	pars   int
	closed int
}

func (f *fakeDest) Write(text string, props group.PropertyMap) error {
	f.writes = append(f.writes, text)
	return nil
}
func (f *fakeDest) Par(props group.PropertyMap) error      { f.pars++; return nil }
func (f *fakeDest) PageBreak(props group.PropertyMap) error { return nil }
func (f *fakeDest) Close() error                            { f.closed++; return nil }

func TestPushCopiesPropertiesIndependently(t *testing.T) {
	root := group.NewRoot(&fakeDest{})
	root.Props().Set("b", group.VBool())

	child := root.Push()
	child.Props().Set("i", group.VBool())

	require.True(t, root.Props().Has("b"))
	require.False(t, root.Props().Has("i"))
	require.True(t, child.Props().Has("b"))
	require.True(t, child.Props().Has("i"))
}

func TestDestinationInheritsUpTheStack(t *testing.T) {
	rootDest := &fakeDest{}
	root := group.NewRoot(rootDest)
	child := root.Push()

	require.NoError(t, child.Write("hello"))
	require.Equal(t, []string{"hello"}, rootDest.writes)
}

func TestSetDestinationOverridesForSubtree(t *testing.T) {
	rootDest := &fakeDest{}
	childDest := &fakeDest{}
	root := group.NewRoot(rootDest)
	child := root.Push()
	child.SetDestination(childDest)

	require.NoError(t, child.Write("x"))
	require.Equal(t, []string{"x"}, childDest.writes)
	require.Empty(t, rootDest.writes)
}

func TestPopClosesOwnDestinationExactlyOnce(t *testing.T) {
	root := group.NewRoot(&fakeDest{})
	child := root.Push()
	childDest := &fakeDest{}
	child.SetDestination(childDest)

	parent, err := child.Pop()
	require.NoError(t, err)
	require.Same(t, root, parent)
	require.Equal(t, 1, childDest.closed)
}

func TestPoppingRootIsAnError(t *testing.T) {
	root := group.NewRoot(&fakeDest{})
	_, err := root.Pop()
	require.Error(t, err)
}

func TestResetDeletesOnlyNamedKeys(t *testing.T) {
	root := group.NewRoot(&fakeDest{})
	root.Props().Set("q", group.VString("c"))
	root.Props().Set("f", group.VInt(2))

	root.Props().Reset([]string{"q"})

	require.False(t, root.Props().Has("q"))
	require.True(t, root.Props().Has("f"))
}
