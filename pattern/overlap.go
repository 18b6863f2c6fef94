package pattern

// InstanceOverlap reports whether instance1 and instance2 overlap under the
// given policy:
//
//   - OverlapEdge:   overlap means identical (same vertices and edges).
//   - OverlapVertex: overlap means sharing an edge.
//   - OverlapNone:   overlap means sharing a vertex.
func InstanceOverlap(policy OverlapPolicy, instance1, instance2 *Instance) bool {
	switch policy {
	case OverlapEdge:
		return instance1.Equal(instance2)
	case OverlapVertex:
		return instance1.Edges.Intersects(instance2.Edges)
	default: // OverlapNone
		return instance1.Vertices.Intersects(instance2.Vertices)
	}
}

// InstancesOverlap reports whether instance overlaps, under policy, with
// any instance already in accepted.
func InstancesOverlap(policy OverlapPolicy, accepted []*Instance, instance *Instance) bool {
	for _, other := range accepted {
		if InstanceOverlap(policy, instance, other) {
			return true
		}
	}

	return false
}
