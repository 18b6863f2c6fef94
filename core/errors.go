package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates an operation was invoked on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyEdgeID indicates that the provided edge ID is empty.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateVertex indicates a vertex ID already exists in the graph.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrDuplicateEdge indicates an edge ID already exists in the graph.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrUnknownEndpoint indicates an edge's source or target ID has no
	// corresponding vertex in the graph. This is a fatal construction error
	// per the input-malformed error taxonomy.
	ErrUnknownEndpoint = errors.New("core: edge endpoint references unknown vertex")
)
