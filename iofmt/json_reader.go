package iofmt

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/subdue/core"
)

// ReadGraph loads a graph from the JSON array-of-objects file at path.
// Vertices must appear before any edge that references them (spec §6);
// duplicate vertex ids are silently ignored, matching the original
// reader's "in case fused graph with duplicate vertices" tolerance.
func ReadGraph(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iofmt: read %s: %w", path, err)
	}

	return ParseGraph(data)
}

// ParseGraph decodes data in the JSON array-of-objects format into a new
// Graph. Returns ErrMalformedInput (wrapped with the offending id) if the
// JSON is invalid, a timestamp does not parse as an integer, or an edge
// names a vertex id that was never declared.
func ParseGraph(data []byte) (*core.Graph, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	g := core.NewGraph()
	for _, e := range entries {
		switch {
		case e.Vertex != nil:
			if err := loadVertex(g, e.Vertex); err != nil {
				return nil, err
			}
		case e.Edge != nil:
			if err := loadEdge(g, e.Edge); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func loadVertex(g *core.Graph, v *vertexFields) error {
	if g.HasVertex(v.ID) {
		return nil
	}

	ts, err := parseTimestamp(v.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: vertex %q timestamp: %v", ErrMalformedInput, v.ID, err)
	}

	if err := g.AddVertex(v.ID, v.Attributes, ts); err != nil {
		return fmt.Errorf("%w: vertex %q: %v", ErrMalformedInput, v.ID, err)
	}

	return nil
}

func loadEdge(g *core.Graph, e *edgeFields) error {
	ts, err := parseTimestamp(e.Timestamp)
	if err != nil {
		return fmt.Errorf("%w: edge %q timestamp: %v", ErrMalformedInput, e.ID, err)
	}

	if err := g.AddEdge(e.ID, e.Source, e.Target, directedFromToken(e.Directed), e.Attributes, ts); err != nil {
		return fmt.Errorf("%w: edge %q: %v", ErrMalformedInput, e.ID, err)
	}

	return nil
}

func parseTimestamp(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.ParseInt(s, 10, 64)
}
