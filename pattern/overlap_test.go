package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/pattern"
)

func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(id, map[string]string{"label": "X"}, 0))
	}
	require.NoError(t, g.AddEdge("e1", "a", "b", false, map[string]string{"type": "e"}, 0))
	require.NoError(t, g.AddEdge("e2", "b", "c", false, map[string]string{"type": "e"}, 1))
	require.NoError(t, g.AddEdge("e3", "c", "d", false, map[string]string{"type": "e"}, 2))

	return g
}

func instFromEdges(t *testing.T, g *core.Graph, ids ...string) *pattern.Instance {
	t.Helper()
	e0, err := g.Edge(ids[0])
	require.NoError(t, err)
	inst, err := pattern.CreateInstanceFromEdge(g, e0)
	require.NoError(t, err)
	for _, id := range ids[1:] {
		extended, err := pattern.ExtendInstance(g, inst)
		require.NoError(t, err)
		found := false
		for _, cand := range extended {
			if cand.Edges.Contains(mustEdge(t, g, id)) {
				inst = cand
				found = true
				break
			}
		}
		require.True(t, found, "edge %s reachable", id)
	}

	return inst
}

func mustEdge(t *testing.T, g *core.Graph, id string) *core.Edge {
	t.Helper()
	e, err := g.Edge(id)
	require.NoError(t, err)

	return e
}

func TestInstanceOverlap_NonePolicySharesVertex(t *testing.T) {
	g := chainGraph(t)
	i1 := instFromEdges(t, g, "e1")
	i2 := instFromEdges(t, g, "e2")

	assert.True(t, pattern.InstanceOverlap(pattern.OverlapNone, i1, i2)) // share vertex b
}

func TestInstanceOverlap_VertexPolicyAllowsSharedVertex(t *testing.T) {
	g := chainGraph(t)
	i1 := instFromEdges(t, g, "e1")
	i2 := instFromEdges(t, g, "e2")

	assert.False(t, pattern.InstanceOverlap(pattern.OverlapVertex, i1, i2))
}

func TestInstanceOverlap_EdgePolicyRequiresIdentity(t *testing.T) {
	g := chainGraph(t)
	i1 := instFromEdges(t, g, "e1")
	i1Again := instFromEdges(t, g, "e1")
	i2 := instFromEdges(t, g, "e2")

	assert.True(t, pattern.InstanceOverlap(pattern.OverlapEdge, i1, i1Again))
	assert.False(t, pattern.InstanceOverlap(pattern.OverlapEdge, i1, i2))
}

func TestInstancesOverlap_ChecksAllAccepted(t *testing.T) {
	g := chainGraph(t)
	i1 := instFromEdges(t, g, "e1")
	i2 := instFromEdges(t, g, "e2")
	i3 := instFromEdges(t, g, "e3")

	accepted := []*pattern.Instance{i1}
	assert.False(t, pattern.InstancesOverlap(pattern.OverlapNone, accepted, i3))
	assert.True(t, pattern.InstancesOverlap(pattern.OverlapNone, accepted, i2))
}
