package iofmt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/pattern"
)

// WriteGraph writes g to path in the JSON array-of-objects format,
// vertices first then edges, each in the graph's insertion order.
// Directedness is always emitted as lowercase "true"/"false" regardless
// of what an earlier read accepted (spec §9 Open Question (b)).
func WriteGraph(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iofmt: create %s: %w", path, err)
	}
	defer f.Close()

	return EncodeGraph(f, g)
}

// EncodeGraph writes g to w in the same format as WriteGraph.
func EncodeGraph(w io.Writer, g *core.Graph) error {
	entries := make([]entry, 0, g.VertexCount()+g.EdgeCount())
	for _, v := range g.Vertices() {
		entries = append(entries, entry{Vertex: &vertexFields{
			ID:         v.ID,
			Timestamp:  strconv.FormatInt(v.Timestamp, 10),
			Attributes: v.Attributes,
		}})
	}
	for _, e := range g.Edges() {
		entries = append(entries, entry{Edge: &edgeFields{
			ID:         e.ID,
			Source:     e.From,
			Target:     e.To,
			Directed:   directedToken(e.Directed),
			Timestamp:  strconv.FormatInt(e.Timestamp, 10),
			Attributes: e.Attributes,
		}})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}

// WriteInstances writes every instance of best concatenated — vertices
// then edges, per instance, in instance order — to path in the same
// array-of-objects format, keeping the original vertex and edge ids. Ids
// repeat wherever instances share a vertex or an edge, so the result
// reloads as a graph only when the instances are disjoint; it is meant for
// inspection.
func WriteInstances(path string, best *pattern.Pattern) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iofmt: create %s: %w", path, err)
	}
	defer f.Close()

	var entries []entry
	for _, inst := range best.Instances {
		for _, v := range inst.Vertices.Slice() {
			entries = append(entries, entry{Vertex: &vertexFields{
				ID:         v.ID,
				Timestamp:  strconv.FormatInt(v.Timestamp, 10),
				Attributes: v.Attributes,
			}})
		}
		for _, e := range inst.Edges.Slice() {
			entries = append(entries, entry{Edge: &edgeFields{
				ID:         e.ID,
				Source:     e.From,
				Target:     e.To,
				Directed:   directedToken(e.Directed),
				Timestamp:  strconv.FormatInt(e.Timestamp, 10),
				Attributes: e.Attributes,
			}})
		}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}
