package discovery_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/discovery"
	"github.com/katalvlaran/subdue/pattern"
)

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
	for _, edge := range edges {
		require.NoError(t, g.AddEdge(edge[0], edge[1], edge[2], false, map[string]string{"type": "edge"}, 0))
	}

	return g
}

func TestGetInitialPatterns_GroupsNonOverlappingEdgeInstances(t *testing.T) {
	g := twoDisjointTriangles(t)
	params := discovery.DefaultParams()

	initial, err := discovery.GetInitialPatterns(params, g)
	require.NoError(t, err)
	require.Len(t, initial, 3)
	for _, p := range initial {
		assert.Len(t, p.Instances, 2)
		assert.Equal(t, 1, p.Definition.EdgeCount())
		assert.InDelta(t, 1.0/6.0, p.Value, 1e-9)
	}
}

func TestDiscoverPatterns_FindsFullTriangleAcrossBothCopies(t *testing.T) {
	g := twoDisjointTriangles(t)
	params := discovery.Params{
		BeamWidth:  10,
		Iterations: 1,
		Limit:      10,
		MaxSize:    10,
		MinSize:    1,
		NumBest:    10,
		Overlap:    pattern.OverlapNone,
	}

	discovered, err := discovery.DiscoverPatterns(context.Background(), params, g)
	require.NoError(t, err)
	require.NotEmpty(t, discovered)

	foundFullTriangle := false
	for _, p := range discovered {
		if p.Definition.EdgeCount() == 3 && len(p.Instances) == 2 {
			foundFullTriangle = true
		}
	}
	assert.True(t, foundFullTriangle, "expected a 3-edge pattern with 2 instances among %d discovered patterns", len(discovered))
}

func TestDiscoverPatterns_PruneKeepsNonDecreasingExtensions(t *testing.T) {
	g := twoDisjointTriangles(t)
	base := discovery.Params{
		BeamWidth: 10, Iterations: 1, Limit: 10, MaxSize: 10, MinSize: 1, NumBest: 10,
		Overlap: pattern.OverlapNone,
	}
	withoutPrune, err := discovery.DiscoverPatterns(context.Background(), base, g)
	require.NoError(t, err)

	pruned := base
	pruned.Prune = true
	withPrune, err := discovery.DiscoverPatterns(context.Background(), pruned, g)
	require.NoError(t, err)

	// Every extension here is worth at least its parent (1/6 -> 1/3 -> 1/2),
	// so pruning drops nothing.
	assert.Equal(t, len(withoutPrune), len(withPrune))
}

func TestDiscoverPatterns_ZeroEdgeGraphYieldsNoPatterns(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", nil, 0))
	params := discovery.ResolveDefaults(discovery.DefaultParams(), g)

	discovered, err := discovery.DiscoverPatterns(context.Background(), params, g)
	require.NoError(t, err)
	assert.Empty(t, discovered)
}
