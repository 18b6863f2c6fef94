package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/pattern"
)

// twoDisjointTriangles builds a graph containing two vertex-disjoint
// triangles, abc and def, with identical attributes so their edges are
// mutually isomorphic one-edge instances.
func twoDisjointTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, g.AddVertex(id, map[string]string{"label": "X"}, 0))
	}
	edges := [][3]string{
		{"e1", "a", "b"}, {"e2", "b", "c"}, {"e3", "c", "a"},
		{"e4", "d", "e"}, {"e5", "e", "f"}, {"e6", "f", "d"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], e[2], false, map[string]string{"type": "edge"}, 0))
	}

	return g
}

func TestExtendPattern_GroupsIsomorphicExtensions(t *testing.T) {
	g := twoDisjointTriangles(t)
	e1, err := g.Edge("e1")
	require.NoError(t, err)
	e4, err := g.Edge("e4")
	require.NoError(t, err)

	inst1, err := pattern.CreateInstanceFromEdge(g, e1)
	require.NoError(t, err)
	inst2, err := pattern.CreateInstanceFromEdge(g, e4)
	require.NoError(t, err)

	def, err := pattern.CreateGraphFromInstance(inst1)
	require.NoError(t, err)
	parent := pattern.NewPattern(def, []*pattern.Instance{inst1, inst2})

	extended, err := pattern.ExtendPattern(g, parent, pattern.OverlapNone, false)
	require.NoError(t, err)
	require.NotEmpty(t, extended)

	// Every child pattern's definition has 2 edges (one-edge growth); total
	// instances across all children equals 2 extensions per seed instance.
	total := 0
	for _, p := range extended {
		assert.Equal(t, 2, p.Definition.EdgeCount())
		total += len(p.Instances)
	}
	assert.Equal(t, 4, total) // 2 seed instances * 2 extensions each
}

func TestExtendPattern_SingleExtensionFormsOneInstancePattern(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id, map[string]string{"label": "X"}, 0))
	}
	require.NoError(t, g.AddEdge("e1", "a", "b", false, map[string]string{"type": "edge"}, 0))
	require.NoError(t, g.AddEdge("e2", "b", "c", false, map[string]string{"type": "edge"}, 0))

	e1, err := g.Edge("e1")
	require.NoError(t, err)
	seed, err := pattern.CreateInstanceFromEdge(g, e1)
	require.NoError(t, err)

	def, err := pattern.CreateGraphFromInstance(seed)
	require.NoError(t, err)
	parent := pattern.NewPattern(def, []*pattern.Instance{seed})

	extended, err := pattern.ExtendPattern(g, parent, pattern.OverlapNone, false)
	require.NoError(t, err)
	require.Len(t, extended, 1)
	assert.Len(t, extended[0].Instances, 1)
}
