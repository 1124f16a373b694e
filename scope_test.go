package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddSubscope tests subscope creation and duplicate rejection
func TestAddSubscope(t *testing.T) {
	root := NewScope()

	child, err := root.AddSubscope("net")
	require.NoError(t, err)
	require.NotNil(t, child)
	assert.Same(t, root, child.Parent())
	assert.True(t, root.HasSubscope("net"))

	_, err = root.AddSubscope("net")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSubscope)
	assert.Contains(t, err.Error(), "net")
}

// TestSubscopeLookup tests named subscope retrieval
func TestSubscopeLookup(t *testing.T) {
	root := NewScope()
	added, err := root.AddSubscope("search")
	require.NoError(t, err)

	got, err := root.Subscope("search")
	require.NoError(t, err)
	assert.Same(t, added, got)

	_, err = root.Subscope("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubscopeNotFound)
	assert.False(t, root.HasSubscope("missing"))
}

// TestListSubscopes tests that names come back sorted
func TestListSubscopes(t *testing.T) {
	root := NewScope()
	assert.Empty(t, root.ListSubscopes())

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := root.AddSubscope(name)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, root.ListSubscopes())
}

// TestNewChildScope tests detached scopes that still delegate lookups
func TestNewChildScope(t *testing.T) {
	root := NewScope()
	Set(root, "threads", 4)

	child := NewChildScope(root)
	assert.Same(t, root, child.Parent())
	assert.False(t, root.HasSubscope(""), "detached child is not registered on the parent")

	v, err := Get[int](child, "threads")
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

// TestCheckAllRead tests unused-option detection on a single scope
func TestCheckAllRead(t *testing.T) {
	s := NewScope()
	Set(s, "threads", 4)
	Set(s, "cpuct", 3.1)
	Set(s, "verbose", true)

	_, err := Get[int](s, "threads")
	require.NoError(t, err)
	_, err = Get[bool](s, "verbose")
	require.NoError(t, err)

	err = s.CheckAllRead("search")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, err.Error(), `"search.cpuct"`)
	assert.Contains(t, err.Error(), "float")

	_, err = Get[float64](s, "cpuct")
	require.NoError(t, err)
	assert.NoError(t, s.CheckAllRead("search"))
}

// TestCheckAllReadResetBySet tests that rewriting a read value flags it again
func TestCheckAllReadResetBySet(t *testing.T) {
	s := NewScope()
	Set(s, "name", "run1")
	_, err := Get[string](s, "name")
	require.NoError(t, err)
	require.NoError(t, s.CheckAllRead(""))

	Set(s, "name", "run2")
	err = s.CheckAllRead("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}

// TestCheckAllReadOwnStoreOnly tests that parent entries are not examined
func TestCheckAllReadOwnStoreOnly(t *testing.T) {
	root := NewScope()
	Set(root, "unused", 1)

	child, err := root.AddSubscope("sub")
	require.NoError(t, err)

	assert.NoError(t, child.CheckAllRead("sub"), "a child does not report its parent's entries")
	assert.Error(t, root.CheckAllRead(""))
}

// TestCheckAllReadRecursive tests tree-wide validation with dotted paths
func TestCheckAllReadRecursive(t *testing.T) {
	root := NewScope()
	search, err := root.AddSubscope("search")
	require.NoError(t, err)
	inner, err := search.AddSubscope("tuning")
	require.NoError(t, err)
	Set(inner, "cpuct", 3.1)

	err = root.CheckAllReadRecursive("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)
	assert.Contains(t, err.Error(), `"search.tuning.cpuct"`)

	_, err = Get[float64](inner, "cpuct")
	require.NoError(t, err)
	assert.NoError(t, root.CheckAllReadRecursive(""))
}
