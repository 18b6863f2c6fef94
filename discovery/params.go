package discovery

import "github.com/katalvlaran/subdue/pattern"

// Params mirrors original_source/src/Parameters.py field for field. The
// three I/O flags (WriteCompressed, WritePattern, WriteInstances) are
// carried here so a single struct can be bound from CLI flags; Run itself
// performs no I/O. Run reads only WriteCompressed, which makes it compress
// the graph after the final iteration as well; cmd/subdue reads all three
// back off the same Params value to decide what to write.
type Params struct {
	BeamWidth  int
	Iterations int
	Limit      int
	MaxSize    int
	MinSize    int
	NumBest    int
	Overlap    pattern.OverlapPolicy
	Prune      bool
	ValueBased bool
	Temporal   bool

	WriteCompressed bool
	WritePattern    bool
	WriteInstances  bool
}

// DefaultParams returns Params matching Parameters.py's constructor
// defaults, before ResolveDefaults fills in the graph-size-dependent ones.
func DefaultParams() Params {
	return Params{
		BeamWidth:  4,
		Iterations: 1,
		Limit:      0,
		MaxSize:    0,
		MinSize:    1,
		NumBest:    3,
		Overlap:    pattern.OverlapNone,
		Prune:      false,
		ValueBased: false,
		Temporal:   false,
	}
}

// edgeCounter is satisfied by *core.Graph; kept narrow so ResolveDefaults
// is trivially testable without constructing a full graph.
type edgeCounter interface {
	EdgeCount() int
}

// ResolveDefaults fills the graph-size-dependent zero values in p
// (Limit=0 -> |E|/2, MaxSize=0 -> |E|/2, Iterations=0 -> |E|), mirroring
// Parameters.set_defaults_for_graph. It returns an adjusted copy; p itself
// is not mutated.
func ResolveDefaults(p Params, graph edgeCounter) Params {
	edges := graph.EdgeCount()
	if p.Limit == 0 {
		p.Limit = edges / 2
	}
	if p.MaxSize == 0 {
		p.MaxSize = edges / 2
	}
	if p.Iterations == 0 {
		p.Iterations = edges
	}

	return p
}
