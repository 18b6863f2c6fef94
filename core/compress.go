package core

import "fmt"

// InstanceRefs names the vertices and edges of one pattern instance by ID,
// in insertion order, for the purposes of Compress. Callers (the pattern
// package) own the richer Instance representation; Compress only needs
// the flattened ID lists so core stays free of any dependency on pattern.
type InstanceRefs struct {
	VertexIDs []string
	EdgeIDs   []string
}

// Compress rewrites the graph by replacing every instance in instances with
// a single summary vertex, per spec §4.5:
//
//  1. Allocate a new vertex "PATTERN-<iteration>-<n>" (1-based n, in the
//     order instances are given), labeled "PATTERN-<iteration>", timestamped
//     with the maximum timestamp of any vertex or edge in the instance.
//  2. Remove every edge of the instance from the graph, including from both
//     endpoints' adjacency lists.
//  3. Reseat every remaining edge incident on an instance vertex (i.e. an
//     edge connecting the instance to the rest of the graph) onto the new
//     summary vertex, appending it to the summary vertex's adjacency once.
//  4. Delete the instance's original vertices.
//
// Compress assumes the given instances are pairwise disjoint in vertices;
// behavior is undefined if they overlap (spec §4.5, §9 Open Question (c)).
// Complexity: O(sum of instance sizes + incident external edges).
func (g *Graph) Compress(iteration int, instances []InstanceRefs) error {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	defer g.muVert.Unlock()
	defer g.muEdgeAdj.Unlock()

	for n, inst := range instances {
		if err := g.compressOneLocked(iteration, n+1, inst); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) compressOneLocked(iteration, instanceNum int, inst InstanceRefs) error {
	newID := fmt.Sprintf("PATTERN-%d-%d", iteration, instanceNum)
	label := fmt.Sprintf("PATTERN-%d", iteration)

	maxTS, err := g.instanceMaxTimestampLocked(inst)
	if err != nil {
		return err
	}

	newVertex := &Vertex{
		ID:         newID,
		Attributes: map[string]string{"label": label},
		Timestamp:  maxTS,
	}
	g.vertices[newID] = newVertex
	g.vertexOrder = append(g.vertexOrder, newID)

	instVertexSet := make(map[string]struct{}, len(inst.VertexIDs))
	for _, vid := range inst.VertexIDs {
		instVertexSet[vid] = struct{}{}
	}
	instEdgeSet := make(map[string]struct{}, len(inst.EdgeIDs))
	for _, eid := range inst.EdgeIDs {
		instEdgeSet[eid] = struct{}{}
	}

	// Remove instance edges from the graph and from both endpoints' adjacency.
	for _, eid := range inst.EdgeIDs {
		e, exists := g.edges[eid]
		if !exists {
			return fmt.Errorf("core: compress: %w: %s", ErrEdgeNotFound, eid)
		}
		g.removeFromAdjacencyLocked(e.From, eid)
		if e.To != e.From {
			g.removeFromAdjacencyLocked(e.To, eid)
		}
		delete(g.edges, eid)
	}

	// Reseat edges that connect an instance vertex to the outside world.
	newAdjSeen := make(map[string]struct{})
	for _, vid := range inst.VertexIDs {
		v, exists := g.vertices[vid]
		if !exists {
			return fmt.Errorf("core: compress: %w: %s", ErrVertexNotFound, vid)
		}
		for _, eid := range v.adjacency {
			if _, wasRemoved := instEdgeSet[eid]; wasRemoved {
				continue
			}
			e := g.edges[eid]
			if e.From == vid {
				e.From = newID
			}
			if e.To == vid {
				e.To = newID
			}
			if _, already := newAdjSeen[eid]; !already {
				newVertex.adjacency = append(newVertex.adjacency, eid)
				newAdjSeen[eid] = struct{}{}
			}
		}
	}

	// Delete the instance's original vertices.
	for _, vid := range inst.VertexIDs {
		delete(g.vertices, vid)
	}
	g.vertexOrder = filterOut(g.vertexOrder, instVertexSet)
	g.edgeOrder = filterOut(g.edgeOrder, instEdgeSet)

	return nil
}

func (g *Graph) instanceMaxTimestampLocked(inst InstanceRefs) (int64, error) {
	var (
		max   int64
		found bool
	)
	for _, vid := range inst.VertexIDs {
		v, exists := g.vertices[vid]
		if !exists {
			return 0, fmt.Errorf("core: compress: %w: %s", ErrVertexNotFound, vid)
		}
		if !found || v.Timestamp > max {
			max, found = v.Timestamp, true
		}
	}
	for _, eid := range inst.EdgeIDs {
		e, exists := g.edges[eid]
		if !exists {
			return 0, fmt.Errorf("core: compress: %w: %s", ErrEdgeNotFound, eid)
		}
		if !found || e.Timestamp > max {
			max, found = e.Timestamp, true
		}
	}

	return max, nil
}

func (g *Graph) removeFromAdjacencyLocked(vertexID, edgeID string) {
	v, exists := g.vertices[vertexID]
	if !exists {
		return
	}
	for i, id := range v.adjacency {
		if id == edgeID {
			v.adjacency = append(v.adjacency[:i], v.adjacency[i+1:]...)
			break
		}
	}
}

func filterOut(ids []string, remove map[string]struct{}) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, skip := remove[id]; !skip {
			out = append(out, id)
		}
	}

	return out
}
