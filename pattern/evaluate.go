package pattern

import "github.com/katalvlaran/subdue/core"

// Evaluate sets p.Value to the fraction of graph's edges that would be
// eliminated by replacing every instance of p with a single summary vertex:
//
//	value = (|instances| - 1) * |E(definition)| / |E(graph)|
//
// The "-1" accounts for the one instance's worth of edges that must be
// retained to store the pattern's own definition. Value 0 means no
// compression; values approach 1 for large, frequent patterns.
func (p *Pattern) Evaluate(graph *core.Graph) {
	defEdges := float64(len(p.Definition.Edges()))
	graphEdges := float64(graph.EdgeCount())
	p.Value = float64(len(p.Instances)-1) * defEdges / graphEdges
}
