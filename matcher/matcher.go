package matcher

import (
	"maps"

	"github.com/katalvlaran/subdue/core"
)

// budget bounds the number of partial edge-mapping attempts a single
// top-level Match call may make, making the search polynomial in the size
// of the (always small, pattern-sized) graphs being compared. Scoped to
// one Match call — never a package-level variable — per spec §9.
type budget struct {
	max   int
	spent int
}

func (b *budget) exhausted() bool {
	return b.spent > b.max
}

// Match returns true if every edge of g1 can be mapped to a distinct edge
// of g2 that matches it (matchEdge) within the search budget. It may return
// false on genuinely isomorphic pairs when the budget is exhausted; since
// the vertex correspondence is checked per edge and not kept consistent
// across edges, it may also return true on a non-isomorphic pair.
//
// Preconditions for a true result: |V(g1)| == |V(g2)| and
// |E(g1)| == |E(g2)|. If both are edgeless, the result is decided by
// matching the single vertex in each (spec §4.3 requires both graphs be
// single-vertex in that case; a pattern's definition graph is always
// connected, so an edgeless definition graph has exactly one vertex).
// Complexity: O(|E(g1)|^2) edge-mapping attempts.
func Match(g1, g2 *core.Graph) bool {
	v1, v2 := g1.Vertices(), g2.Vertices()
	e1, e2 := g1.Edges(), g2.Edges()

	if len(v1) != len(v2) {
		return false
	}
	if len(e1) != len(e2) {
		return false
	}
	if len(e1) == 0 {
		return matchVertex(g1, g2, v1[0], v2[0])
	}

	b := &budget{max: len(e1) * len(e1)}
	found, _ := extendMapping(g1, g2, e1, e2, map[string]string{}, b)

	return found
}

// extendMapping finds the next unmapped edge in e1 and tries mapping it to
// each unmapped edge in e2, backtracking on failure, bounded by b.
func extendMapping(g1, g2 *core.Graph, e1, e2 []*core.Edge, mapping map[string]string, b *budget) (bool, int) {
	if len(mapping) == len(e1) {
		return true, b.spent
	}
	if b.exhausted() {
		return false, b.spent
	}

	var edge1 *core.Edge
	for _, e := range e1 {
		if _, mapped := mapping[e.ID]; !mapped {
			edge1 = e
			break
		}
	}

	mappedTargets := make(map[string]struct{}, len(mapping))
	for _, target := range mapping {
		mappedTargets[target] = struct{}{}
	}

	for _, edge2 := range e2 {
		if _, used := mappedTargets[edge2.ID]; used {
			continue
		}
		if !matchEdge(g1, g2, edge1, edge2) {
			continue
		}
		mapping[edge1.ID] = edge2.ID
		b.spent++
		if found, spent := extendMapping(g1, g2, e1, e2, mapping, b); found {
			return true, spent
		}
		delete(mapping, edge1.ID)
	}

	return false, b.spent
}

// matchEdge returns true if edge1 and edge2 match: equal attributes, equal
// directedness, equal temporal rank, and matching endpoints (either
// orientation, for undirected edges).
func matchEdge(g1, g2 *core.Graph, edge1, edge2 *core.Edge) bool {
	if !attrsEqual(edge1.Attributes, edge2.Attributes) {
		return false
	}
	if edge1.Directed != edge2.Directed {
		return false
	}
	if edge1.TemporalRank != edge2.TemporalRank {
		return false
	}

	v1From, _ := g1.Vertex(edge1.From)
	v1To, _ := g1.Vertex(edge1.To)
	v2From, _ := g2.Vertex(edge2.From)
	v2To, _ := g2.Vertex(edge2.To)

	if matchVertex(g1, g2, v1From, v2From) && matchVertex(g1, g2, v1To, v2To) {
		return true
	}
	if !edge1.Directed && matchVertex(g1, g2, v1From, v2To) && matchVertex(g1, g2, v1To, v2From) {
		return true
	}

	return false
}

// matchVertex returns true if v1 and v2 match: equal attributes, equal
// degree (adjacency length), and equal temporal rank.
func matchVertex(g1, g2 *core.Graph, v1, v2 *core.Vertex) bool {
	if !attrsEqual(v1.Attributes, v2.Attributes) {
		return false
	}
	adj1, _ := g1.Adjacency(v1.ID)
	adj2, _ := g2.Adjacency(v2.ID)
	if len(adj1) != len(adj2) {
		return false
	}
	if v1.TemporalRank != v2.TemporalRank {
		return false
	}

	return true
}

func attrsEqual(a, b map[string]string) bool {
	return maps.Equal(a, b)
}
