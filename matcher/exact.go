package matcher

import "github.com/katalvlaran/subdue/core"

// MatchExact is the correct, non-approximate graph isomorphism test kept
// for reference and for tests/benchmarks that compare its answers against
// the budget-limited Match on small patterns (spec §9: "the exact one is
// kept for reference... may be an optional debug build"). It is not wired
// into the discovery engine or the CLI — Match is the production matcher.
// Complexity: exponential in the worst case; only ever called on
// pattern-sized graphs in tests.
func MatchExact(g1, g2 *core.Graph) bool {
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

	return extendMappingExact(g1, g2, e1, e2, map[string]string{})
}

func extendMappingExact(g1, g2 *core.Graph, e1, e2 []*core.Edge, mapping map[string]string) bool {
	if len(mapping) == len(e1) {
		return true
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
		if extendMappingExact(g1, g2, e1, e2, mapping) {
			return true
		}
		delete(mapping, edge1.ID)
	}

	return false
}
