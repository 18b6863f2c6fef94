package iofmt_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/iofmt"
)

func TestEncodeDOT_Shape(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", map[string]string{"label": "X"}, 0))
	require.NoError(t, g.AddVertex("b", nil, 0))
	require.NoError(t, g.AddEdge("e1", "a", "b", false, map[string]string{"label": "e"}, 0))

	var buf bytes.Buffer
	require.NoError(t, iofmt.EncodeDOT(&buf, g))

	out := buf.String()
	assert.Contains(t, out, "digraph {\n")
	assert.Contains(t, out, "a [label=X];\n")
	assert.Contains(t, out, "b [label=b];\n")
	assert.Contains(t, out, "a -> b [label=e,dir=none];\n")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
}
