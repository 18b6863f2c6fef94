package core

// AddVertex inserts a new vertex with the given ID and attributes.
// Returns ErrEmptyVertexID if id is empty, ErrDuplicateVertex if the ID is
// already present.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, attrs map[string]string, timestamp int64) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}

	g.vertices[id] = &Vertex{
		ID:         id,
		Attributes: copyAttrs(attrs),
		Timestamp:  timestamp,
	}
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the vertex with the given ID, or ErrVertexNotFound.
// The returned pointer is owned by the graph; callers must not mutate its
// adjacency slice directly.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, exists := g.vertices[id]
	if !exists {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns every vertex in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, len(g.vertexOrder))
	for _, id := range g.vertexOrder {
		out = append(out, g.vertices[id])
	}

	return out
}

// VertexCount returns the number of vertices in the graph.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new edge with the given ID, endpoints, directedness,
// attributes, and timestamp. Returns ErrEmptyEdgeID, ErrEmptyVertexID,
// ErrDuplicateEdge, or ErrUnknownEndpoint (a fatal construction error per
// spec §4.1) if either endpoint is missing from the graph.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(id, from, to string, directed bool, attrs map[string]string, timestamp int64) error {
	if id == "" {
		return ErrEmptyEdgeID
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}

	g.muVert.RLock()
	_, fromExists := g.vertices[from]
	_, toExists := g.vertices[to]
	g.muVert.RUnlock()
	if !fromExists || !toExists {
		return ErrUnknownEndpoint
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdge
	}

	e := &Edge{
		ID:         id,
		From:       from,
		To:         to,
		Directed:   directed,
		Attributes: copyAttrs(attrs),
		Timestamp:  timestamp,
	}
	g.edges[id] = e
	g.edgeOrder = append(g.edgeOrder, id)

	// Both endpoints' adjacency lists contain this edge exactly once,
	// even for a self-loop (from == to) — append once, not twice, matching
	// the invariant in spec §3 ("appears in the adjacency of both its
	// endpoints exactly once").
	g.muVert.Lock()
	g.vertices[from].adjacency = append(g.vertices[from].adjacency, id)
	if to != from {
		g.vertices[to].adjacency = append(g.vertices[to].adjacency, id)
	}
	g.muVert.Unlock()

	return nil
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdge(id string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, exists := g.edges[id]

	return exists
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, exists := g.edges[id]
	if !exists {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns every edge in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}

	return out
}

// EdgeCount returns the number of edges in the graph.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Adjacency returns the ordered edge IDs incident on the vertex with the
// given ID, or ErrVertexNotFound.
// Complexity: O(1) to look up, O(deg(v)) to copy.
func (g *Graph) Adjacency(vertexID string) ([]string, error) {
	g.muVert.RLock()
	v, exists := g.vertices[vertexID]
	g.muVert.RUnlock()
	if !exists {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, len(v.adjacency))
	copy(out, v.adjacency)

	return out, nil
}

// Summary is a read-only O(V+E) snapshot of graph size, used by the CLI's
// startup log line and by tests.
type Summary struct {
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// Summarize produces a Summary of the graph's current size.
// Complexity: O(V+E).
func (g *Graph) Summarize() Summary {
	g.muVert.RLock()
	s := Summary{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			s.DirectedEdgeCount++
		} else {
			s.UndirectedEdgeCount++
		}
	}

	return s
}

func copyAttrs(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}
