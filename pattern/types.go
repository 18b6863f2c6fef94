package pattern

import (
	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/orderedset"
)

// OverlapPolicy selects which pairs of instances are allowed to coexist
// inside one pattern.
type OverlapPolicy string

const (
	// OverlapNone rejects instances that share any vertex.
	OverlapNone OverlapPolicy = "none"

	// OverlapVertex rejects instances only if they share an edge (sharing
	// vertices is allowed).
	OverlapVertex OverlapPolicy = "vertex"

	// OverlapEdge rejects instances only if they are identical (same
	// vertices and same edges).
	OverlapEdge OverlapPolicy = "edge"
)

// ParseOverlapPolicy validates and returns the OverlapPolicy named by s, or
// ErrInvalidOverlapPolicy.
func ParseOverlapPolicy(s string) (OverlapPolicy, error) {
	switch OverlapPolicy(s) {
	case OverlapNone, OverlapVertex, OverlapEdge:
		return OverlapPolicy(s), nil
	default:
		return "", ErrInvalidOverlapPolicy
	}
}

// Instance is a connected subgraph of one enclosing core.Graph: an ordered
// set of vertices and an ordered set of edges, all borrowed references
// (never copies) owned by that graph. An Instance always begins from a
// single edge and grows only by appending edges adjacent to an
// already-included vertex, so it is connected by construction.
type Instance struct {
	Vertices *orderedset.Set[*core.Vertex]
	Edges    *orderedset.Set[*core.Edge]
}

// NewInstance returns an empty Instance.
func NewInstance() *Instance {
	return &Instance{
		Vertices: orderedset.New[*core.Vertex](),
		Edges:    orderedset.New[*core.Edge](),
	}
}

// Equal reports whether i and other reference exactly the same vertex and
// edge records, regardless of insertion order (spec §9: instance equality).
func (i *Instance) Equal(other *Instance) bool {
	return i.Vertices.Equal(other.Vertices) && i.Edges.Equal(other.Edges)
}

// VertexIDs returns the instance's vertex IDs in insertion order.
func (i *Instance) VertexIDs() []string {
	vs := i.Vertices.Slice()
	ids := make([]string, len(vs))
	for idx, v := range vs {
		ids[idx] = v.ID
	}

	return ids
}

// EdgeIDs returns the instance's edge IDs in insertion order.
func (i *Instance) EdgeIDs() []string {
	es := i.Edges.Slice()
	ids := make([]string, len(es))
	for idx, e := range es {
		ids[idx] = e.ID
	}

	return ids
}

// Refs converts the instance to a core.InstanceRefs for Graph.Compress.
func (i *Instance) Refs() core.InstanceRefs {
	return core.InstanceRefs{VertexIDs: i.VertexIDs(), EdgeIDs: i.EdgeIDs()}
}

// MaxTimestamp returns the maximum Timestamp over every vertex and edge in
// the instance: the same value Graph.Compress computes, from the instance's
// ID lists, to stamp the summary vertex. Returns 0 for an empty instance.
func (i *Instance) MaxTimestamp() int64 {
	var (
		max   int64
		found bool
	)
	for _, v := range i.Vertices.Slice() {
		if !found || v.Timestamp > max {
			max, found = v.Timestamp, true
		}
	}
	for _, e := range i.Edges.Slice() {
		if !found || e.Timestamp > max {
			max, found = e.Timestamp, true
		}
	}

	return max
}

// Pattern pairs a canonical definition graph with the ordered list of
// instances in the enclosing graph that are isomorphic to it, and a
// compression value computed by Evaluate.
type Pattern struct {
	Definition *core.Graph
	Instances  []*Instance
	Value      float64
}

// NewPattern returns a Pattern with the given definition and instances.
// Value is left at zero; call Evaluate to compute it.
func NewPattern(definition *core.Graph, instances []*Instance) *Pattern {
	return &Pattern{Definition: definition, Instances: instances}
}
