package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/pattern"
)

func TestCreateInstanceFromEdge(t *testing.T) {
	g := triangleGraph(t)
	e1, err := g.Edge("e1")
	require.NoError(t, err)

	inst, err := pattern.CreateInstanceFromEdge(g, e1)
	require.NoError(t, err)
	assert.Equal(t, 2, inst.Vertices.Len())
	assert.Equal(t, 1, inst.Edges.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, inst.VertexIDs())
}

func TestExtendInstance_TriangleYieldsTwoExtensions(t *testing.T) {
	g := triangleGraph(t)
	e1, err := g.Edge("e1")
	require.NoError(t, err)

	seed, err := pattern.CreateInstanceFromEdge(g, e1)
	require.NoError(t, err)

	extended, err := pattern.ExtendInstance(g, seed)
	require.NoError(t, err)
	// a-b can grow via e2 (through b) or e3 (through a).
	assert.Len(t, extended, 2)
	for _, inst := range extended {
		assert.Equal(t, 2, inst.Edges.Len())
		assert.Equal(t, 3, inst.Vertices.Len())
	}
}

func TestExtendInstance_DoesNotReaddExistingEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("1", nil, 0))
	require.NoError(t, g.AddVertex("2", nil, 0))
	require.NoError(t, g.AddEdge("e1", "1", "2", false, nil, 0))

	e1, err := g.Edge("e1")
	require.NoError(t, err)
	seed, err := pattern.CreateInstanceFromEdge(g, e1)
	require.NoError(t, err)

	extended, err := pattern.ExtendInstance(g, seed)
	require.NoError(t, err)
	assert.Empty(t, extended)
}

func TestCreateGraphFromInstance_CanonicalIDs(t *testing.T) {
	g := triangleGraph(t)
	e1, err := g.Edge("e1")
	require.NoError(t, err)
	inst, err := pattern.CreateInstanceFromEdge(g, e1)
	require.NoError(t, err)

	def, err := pattern.CreateGraphFromInstance(inst)
	require.NoError(t, err)
	assert.Equal(t, 2, def.VertexCount())
	assert.Equal(t, 1, def.EdgeCount())
	assert.True(t, def.HasVertex("1"))
	assert.True(t, def.HasVertex("2"))
	assert.True(t, def.HasEdge("1"))
}
