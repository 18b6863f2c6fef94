package iofmt

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/subdue/core"
)

// WriteDOT writes g to path in Graphviz DOT format: every vertex and edge
// rendered with its "label" attribute if present, otherwise its id;
// undirected edges carry ",dir=none". This is a supplemental export not
// bound to any CLI flag (spec.md's flag table names none); callers invoke
// it directly.
func WriteDOT(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iofmt: create %s: %w", path, err)
	}
	defer f.Close()

	return EncodeDOT(f, g)
}

// EncodeDOT writes g to w in the same format as WriteDOT.
func EncodeDOT(w io.Writer, g *core.Graph) error {
	if _, err := io.WriteString(w, "digraph {\n"); err != nil {
		return err
	}

	for _, v := range g.Vertices() {
		label := v.ID
		if l, ok := v.Attributes["label"]; ok {
			label = l
		}
		if _, err := fmt.Fprintf(w, "%s [label=%s];\n", v.ID, label); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		label := e.ID
		if l, ok := e.Attributes["label"]; ok {
			label = l
		}
		line := fmt.Sprintf("%s -> %s [label=%s", e.From, e.To, label)
		if !e.Directed {
			line += ",dir=none"
		}
		line += "];\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")

	return err
}
