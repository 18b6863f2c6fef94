package pattern

import "github.com/katalvlaran/subdue/core"

// CreateInstanceFromEdge returns an Instance whose edge set is {e} and
// vertex set is {e's source, e's target}, looked up in g.
func CreateInstanceFromEdge(g *core.Graph, e *core.Edge) (*Instance, error) {
	source, err := g.Vertex(e.From)
	if err != nil {
		return nil, err
	}
	target, err := g.Vertex(e.To)
	if err != nil {
		return nil, err
	}

	inst := NewInstance()
	inst.Edges.Add(e)
	inst.Vertices.Add(source)
	inst.Vertices.Add(target)

	return inst, nil
}

// ExtendInstance returns every instance obtainable by adding exactly one
// edge incident on any vertex already in inst and not already in inst's
// edge set. Each such edge yields one new instance; a new endpoint vertex
// is appended to the vertex set. Iteration order (over inst's vertices,
// then each vertex's adjacency) fixes the insertion order of the result,
// which in turn fixes the canonical form of each extension's definition
// graph.
func ExtendInstance(g *core.Graph, inst *Instance) ([]*Instance, error) {
	var candidates []string // edge IDs incident on inst's vertices, in order, deduplicated
	seen := make(map[string]struct{})
	for _, v := range inst.Vertices.Slice() {
		adj, err := g.Adjacency(v.ID)
		if err != nil {
			return nil, err
		}
		for _, eid := range adj {
			if inst.Edges.Contains(mustEdge(g, eid)) {
				continue
			}
			if _, already := seen[eid]; already {
				continue
			}
			seen[eid] = struct{}{}
			candidates = append(candidates, eid)
		}
	}

	out := make([]*Instance, 0, len(candidates))
	for _, eid := range candidates {
		e, err := g.Edge(eid)
		if err != nil {
			return nil, err
		}
		newInst, err := extendInstanceByEdge(g, inst, e)
		if err != nil {
			return nil, err
		}
		out = append(out, newInst)
	}

	return out, nil
}

// extendInstanceByEdge builds the instance formed by adding edge to inst,
// appending any new endpoint vertices.
func extendInstanceByEdge(g *core.Graph, inst *Instance, edge *core.Edge) (*Instance, error) {
	source, err := g.Vertex(edge.From)
	if err != nil {
		return nil, err
	}
	target, err := g.Vertex(edge.To)
	if err != nil {
		return nil, err
	}

	newInst := NewInstance()
	for _, v := range inst.Vertices.Slice() {
		newInst.Vertices.Add(v)
	}
	for _, e := range inst.Edges.Slice() {
		newInst.Edges.Add(e)
	}
	newInst.Edges.Add(edge)
	newInst.Vertices.Add(source)
	newInst.Vertices.Add(target)

	return newInst, nil
}

// mustEdge looks up an edge by ID; ExtendInstance only ever calls this with
// IDs taken directly from a vertex's own adjacency list, so the edge is
// guaranteed to exist — a lookup failure here would indicate the graph's
// adjacency invariant (spec §3) has been violated elsewhere.
func mustEdge(g *core.Graph, id string) *core.Edge {
	e, err := g.Edge(id)
	if err != nil {
		panic("pattern: adjacency invariant violated: " + id)
	}

	return e
}
