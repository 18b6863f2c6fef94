package discovery

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/pattern"
)

// Run is the top-level discovery loop (original_source/src/Subdue.py's
// Subdue function): it runs DiscoverPatterns for up to p.Iterations
// rounds, compressing graph with the best pattern of each round before
// the next, and returns the discovered pattern list for every iteration
// that found one. graph is mutated in place by compression; the caller
// retains the (possibly-compressed) graph after Run returns.
//
// log may be nil, in which case a disabled logger is used; cmd/subdue
// passes its own configured logrus.Logger to mirror the original's
// progress printouts.
func Run(ctx context.Context, p Params, graph *core.Graph, log *logrus.Logger) ([][]*pattern.Pattern, error) {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
	}

	var iterationsOut [][]*pattern.Pattern
	for iteration := 1; iteration <= p.Iterations; iteration++ {
		summary := graph.Summarize()
		log.WithFields(logrus.Fields{
			"iteration": iteration,
			"vertices":  summary.VertexCount,
			"edges":     summary.EdgeCount,
		}).Info("starting discovery round")

		patternList, err := DiscoverPatterns(ctx, p, graph)
		if err != nil {
			return iterationsOut, err
		}
		if len(patternList) == 0 {
			log.Info("no patterns found")
			break
		}

		iterationsOut = append(iterationsOut, patternList)
		log.WithFields(logrus.Fields{
			"iteration": iteration,
			"found":     len(patternList),
			"bestValue": patternList[0].Value,
		}).Info("discovery round complete")

		if iteration < p.Iterations || p.WriteCompressed {
			best := patternList[0]
			instances := best.Instances
			if p.Overlap != pattern.OverlapNone {
				instances = filterMutuallyDisjoint(instances)
			}

			refs := make([]core.InstanceRefs, len(instances))
			for i, inst := range instances {
				refs[i] = inst.Refs()
			}
			if err := graph.Compress(iteration, refs); err != nil {
				return iterationsOut, err
			}
		}

		if iteration < p.Iterations && graph.EdgeCount() == 0 {
			log.Info("ending iterations: graph fully compressed")
			break
		}
	}

	return iterationsOut, nil
}

// filterMutuallyDisjoint greedily keeps, in order, every instance that
// shares no vertex with an instance already kept. Graph.Compress assumes
// its instances are vertex-disjoint; a pattern discovered under a
// non-none overlap policy may not be, so Run narrows to a safe subset
// before compressing (spec's Open Question on compression over
// overlapping instances, resolved in favor of instance-disjointness).
func filterMutuallyDisjoint(instances []*pattern.Instance) []*pattern.Instance {
	var kept []*pattern.Instance
	for _, inst := range instances {
		if !pattern.InstancesOverlap(pattern.OverlapNone, kept, inst) {
			kept = append(kept, inst)
		}
	}

	return kept
}
