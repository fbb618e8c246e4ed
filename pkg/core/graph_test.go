package core

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Adjacency(t *testing.T) {
	input := "cnn.com\tnytimes.com\ncnn.com\tespn.com\nespn.com\tcnn.com\n"
	g, err := Build(strings.NewReader(input))
	require.NoError(t, err)

	want := map[string][]string{
		"cnn.com":     {"nytimes.com", "espn.com"},
		"nytimes.com": {},
		"espn.com":    {"cnn.com"},
	}
	if diff := cmp.Diff(want, g.Adjacency()); diff != "" {
		t.Errorf("adjacency mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuild_EveryTargetIsKey(t *testing.T) {
	input := "a b b c c d x y y a d d"
	g, err := Build(strings.NewReader(input))
	require.NoError(t, err)

	for _, site := range g.Sites() {
		for _, target := range g.Neighbors(site) {
			assert.True(t, g.Exists(target), "target %q of %q is not a key", target, site)
		}
	}
}

func TestBuild_DuplicateEdgesKept(t *testing.T) {
	g, err := Build(strings.NewReader("a b a b a c"))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "b", "c"}, g.Neighbors("a"))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuild_TargetDoesNotResetExistingEntry(t *testing.T) {
	// "a" gains out-edges first, then shows up as a target.
	g, err := Build(strings.NewReader("a b c a"))
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
	assert.Equal(t, []string{"a"}, g.Neighbors("c"))
	assert.Empty(t, g.Neighbors("b"))
}

func TestBuild_TrailingTokenDropped(t *testing.T) {
	g, err := Build(strings.NewReader("a b c"))
	require.NoError(t, err)

	assert.True(t, g.Exists("a"))
	assert.True(t, g.Exists("b"))
	assert.False(t, g.Exists("c"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_EmptyInput(t *testing.T) {
	g, err := Build(strings.NewReader("  \n\t "))
	require.NoError(t, err)

	assert.Zero(t, g.Len())
	assert.Empty(t, g.Sites())
}

func TestBuild_Idempotent(t *testing.T) {
	input := "x y y z z x x x q y"

	first, err := Build(strings.NewReader(input))
	require.NoError(t, err)
	second, err := Build(strings.NewReader(input))
	require.NoError(t, err)

	if diff := cmp.Diff(first.Adjacency(), second.Adjacency()); diff != "" {
		t.Errorf("graphs differ (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Sites(), second.Sites())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestBuild_ReadError(t *testing.T) {
	_, err := Build(io.MultiReader(strings.NewReader("a b "), failingReader{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestGraph_Lookup(t *testing.T) {
	g := NewGraph()
	g.AddEdge("a", "b")
	g.AddEdge("b", "b")

	a, ok := g.Lookup("a")
	require.True(t, ok)
	b, ok := g.Lookup("b")
	require.True(t, ok)

	assert.NotEqual(t, a, b)
	assert.Equal(t, "a", g.Name(a))
	assert.Equal(t, []NodeID{b}, g.Out(a))
	assert.Equal(t, []NodeID{b}, g.Out(b))

	_, ok = g.Lookup("missing")
	assert.False(t, ok)
	assert.Empty(t, g.Neighbors("missing"))
}

func TestGraph_SitesSorted(t *testing.T) {
	g := NewGraph()
	g.AddEdge("zeta.org", "alpha.com")
	g.AddEdge("mid.net", "beta.io")

	assert.Equal(t, []string{"alpha.com", "beta.io", "mid.net", "zeta.org"}, g.Sites())
}
