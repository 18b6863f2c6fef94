// Package core defines the attributed, mixed (directed/undirected) multigraph
// that Subdue discovers patterns in: Vertex, Edge, and Graph, plus the
// operations the discovery engine drives the graph through — construction,
// lookup, temporal ordering, and the compression operator that rewrites the
// graph between iterations.
//
// A Graph is a pair of id-keyed tables (vertices, edges), never object
// references that point at each other: adjacency is stored as an
// insertion-ordered list of edge IDs per vertex, and an Edge stores its
// endpoints as vertex IDs. Cross-lookups always go through the owning Graph.
// This keeps the representation free of reference cycles and lets deletion
// (Compress) invalidate table entries deterministically without chasing
// live pointers.
//
// Concurrency model: muVert guards the vertex table, muEdgeAdj guards the
// edge table and all adjacency lists. AddEdge, TemporalOrder and Compress
// hold both locks for writing while they update vertex and edge records
// together; every other method takes at most one lock at a time.
//
// Errors:
//
//	ErrNilGraph         - operation invoked on a nil *Graph.
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrEmptyEdgeID      - edge ID is the empty string.
//	ErrDuplicateVertex  - vertex ID already present in the graph.
//	ErrDuplicateEdge    - edge ID already present in the graph.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrUnknownEndpoint  - edge references a vertex ID absent from the graph.
package core
