package core_test

import (
	"fmt"

	"github.com/katalvlaran/subdue/core"
)

func Example() {
	g := core.NewGraph()
	_ = g.AddVertex("a", map[string]string{"label": "X"}, 0)
	_ = g.AddVertex("b", map[string]string{"label": "X"}, 0)
	_ = g.AddEdge("e1", "a", "b", false, map[string]string{"type": "e"}, 0)

	s := g.Summarize()
	fmt.Println(s.VertexCount, s.EdgeCount)
	// Output: 2 1
}
