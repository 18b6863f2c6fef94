package pattern

import (
	"strconv"

	"github.com/katalvlaran/subdue/core"
)

// CreateGraphFromInstance builds a fresh definition graph isomorphic to
// inst: vertices numbered "1".."n" in inst's vertex-insertion order, edges
// numbered "1".."m" in inst's edge-insertion order, with attributes,
// timestamps, and directedness copied from inst's borrowed records. This
// canonicalization strips identity so that isomorphic instances yield
// comparable definition graphs: CreateGraphFromInstance(i) is
// matcher-equivalent to CreateGraphFromInstance(j) whenever i and j are
// matcher-equivalent as instances.
func CreateGraphFromInstance(inst *Instance) (*core.Graph, error) {
	def := core.NewGraph()

	vertexMapping := make(map[string]string, inst.Vertices.Len())
	for idx, v := range inst.Vertices.Slice() {
		newID := strconv.Itoa(idx + 1)
		if err := def.AddVertex(newID, v.Attributes, v.Timestamp); err != nil {
			return nil, err
		}
		vertexMapping[v.ID] = newID
	}

	for idx, e := range inst.Edges.Slice() {
		newID := strconv.Itoa(idx + 1)
		from := vertexMapping[e.From]
		to := vertexMapping[e.To]
		if err := def.AddEdge(newID, from, to, e.Directed, e.Attributes, e.Timestamp); err != nil {
			return nil, err
		}
	}

	return def, nil
}
