package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshot tests the nested map view of a subtree
func TestSnapshot(t *testing.T) {
	s := NewScope()
	require.NoError(t, s.AddFromString(`threads=4, verbose=true, name="run", net(scale=1.5)`))

	got := s.Snapshot()
	assert.Equal(t, map[string]any{
		"threads": 4,
		"verbose": true,
		"name":    "run",
		"net": map[string]any{
			"scale": 1.5,
		},
	}, got)

	// Snapshotting counts as reading everything in the subtree.
	assert.NoError(t, s.CheckAllReadRecursive(""))
}

// TestSnapshotExcludesInherited tests that parent values stay out of the view
func TestSnapshotExcludesInherited(t *testing.T) {
	root := NewScope()
	Set(root, "threads", 4)

	child, err := root.AddSubscope("sub")
	require.NoError(t, err)
	Set(child, "scale", 2.0)

	assert.Equal(t, map[string]any{"scale": 2.0}, child.Snapshot())
}

// TestDecode tests struct binding through the options tag
func TestDecode(t *testing.T) {
	type SearchConfig struct {
		CPuct    float64 `options:"cpuct"`
		MaxNodes int     `options:"max_nodes"`
	}
	type EngineConfig struct {
		Threads int          `options:"threads"`
		Verbose bool         `options:"verbose"`
		Name    string       `options:"name"`
		Search  SearchConfig `options:"search"`
	}

	s := NewScope()
	require.NoError(t, s.AddFromString(
		`threads=4, verbose=true, name="test run", search(cpuct=3.1, max_nodes=800)`))

	var cfg EngineConfig
	require.NoError(t, s.Decode(&cfg))
	assert.Equal(t, 4, cfg.Threads)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "test run", cfg.Name)
	assert.Equal(t, 3.1, cfg.Search.CPuct)
	assert.Equal(t, 800, cfg.Search.MaxNodes)

	// Decoding reads everything, so validation passes afterwards.
	assert.NoError(t, s.CheckAllReadRecursive(""))
}

// TestDecodeWeakTyping tests close-enough conversions
func TestDecodeWeakTyping(t *testing.T) {
	type Cfg struct {
		Port    string  `options:"port"`
		Ratio   float64 `options:"ratio"`
		Retries int     `options:"retries"`
	}

	s := NewScope()
	Set(s, "port", 8080)   // int into string field
	Set(s, "ratio", 2)     // int into float field
	Set(s, "retries", "3") // string into int field

	var cfg Cfg
	require.NoError(t, s.Decode(&cfg))
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2.0, cfg.Ratio)
	assert.Equal(t, 3, cfg.Retries)
}

// TestDecodeBadTarget tests target validation
func TestDecodeBadTarget(t *testing.T) {
	s := NewScope()
	Set(s, "threads", 4)

	var notAPointer struct{ Threads int }
	err := s.Decode(notAPointer)
	assert.Error(t, err)
}
