// Package pattern implements the pattern/instance algebra: an Instance is
// a connected subgraph of an enclosing core.Graph (an ordered set of
// borrowed vertex and edge references); a Pattern pairs a canonical
// definition graph with the list of instances in the enclosing graph that
// are isomorphic to it, plus a compression value.
//
// Instances never copy the vertices/edges they reference — they hold
// pointers owned by the enclosing graph, exactly as spec §3's Ownership
// section requires. A Pattern's definition graph, by contrast, owns fresh
// vertex/edge records with synthetic "1".."n" IDs, built by
// CreateGraphFromInstance: canonicalization strips identity so that
// isomorphic instances yield comparable definitions.
//
// Errors:
//
//	ErrInvalidOverlapPolicy - ParseOverlapPolicy given an unrecognized token.
package pattern
