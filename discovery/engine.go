package discovery

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/matcher"
	"github.com/katalvlaran/subdue/pattern"
)

// GetInitialPatterns returns the list of single-edge, evaluated patterns
// in graph with more than one instance, grouping isomorphic single-edge
// instances together exactly as original_source/src/Subdue.py's
// GetInitialPatterns does.
func GetInitialPatterns(p Params, graph *core.Graph) ([]*pattern.Pattern, error) {
	type edgeSeed struct {
		def      *core.Graph
		instance *pattern.Instance
	}

	var pool []edgeSeed
	for _, e := range graph.Edges() {
		instance, err := pattern.CreateInstanceFromEdge(graph, e)
		if err != nil {
			return nil, err
		}
		def, err := pattern.CreateGraphFromInstance(instance)
		if err != nil {
			return nil, err
		}
		if p.Temporal {
			def.TemporalOrder()
		}
		pool = append(pool, edgeSeed{def: def, instance: instance})
	}

	var initial []*pattern.Pattern
	for len(pool) > 0 {
		head := pool[0]
		pool = pool[1:]

		instances := []*pattern.Instance{head.instance}
		var remainder []edgeSeed
		for _, candidate := range pool {
			if matcher.Match(head.def, candidate.def) && !pattern.InstancesOverlap(p.Overlap, instances, candidate.instance) {
				instances = append(instances, candidate.instance)
			} else {
				remainder = append(remainder, candidate)
			}
		}
		pool = remainder

		if len(instances) > 1 {
			pat := pattern.NewPattern(head.def, instances)
			pat.Evaluate(graph)
			initial = append(initial, pat)
		}
	}

	return initial, nil
}

// extensionResult is the filtered, evaluated set of child patterns
// produced by extending a single parent.
type extensionResult struct {
	parent   *pattern.Pattern
	children []*pattern.Pattern
}

// extendOneParent runs ExtendPattern for parent and filters/evaluates the
// result against maxSize and the prune option, mirroring the per-extended-
// pattern body of DiscoverPatterns' inner loop in Subdue.py.
func extendOneParent(graph *core.Graph, parent *pattern.Pattern, p Params) (extensionResult, error) {
	extended, err := pattern.ExtendPattern(graph, parent, p.Overlap, p.Temporal)
	if err != nil {
		return extensionResult{}, err
	}

	res := extensionResult{parent: parent}
	for _, ep := range extended {
		if ep.Definition.EdgeCount() > p.MaxSize {
			continue
		}
		ep.Evaluate(graph)
		if !p.Prune || ep.Value >= parent.Value {
			res.children = append(res.children, ep)
		}
	}

	return res, nil
}

// DiscoverPatterns is the main beam-search loop: it repeatedly extends a
// beam of parent patterns one edge at a time, pruning and capping the
// beam via pattern.PatternListInsert, and keeps every pattern meeting
// MinSize in a separately capped discovered list. Eligible parents within
// one round are extended concurrently (bounded by GOMAXPROCS via
// errgroup); the merge back into the child beam stays strictly sequential
// in original parent order so results are deterministic regardless of
// goroutine scheduling.
func DiscoverPatterns(ctx context.Context, p Params, graph *core.Graph) ([]*pattern.Pattern, error) {
	patternCount := 0
	parentList, err := GetInitialPatterns(p, graph)
	if err != nil {
		return nil, err
	}

	var discovered []*pattern.Pattern
	for patternCount < p.Limit && len(parentList) > 0 {
		eligible := make([]*pattern.Pattern, 0, len(parentList))
		eligibleIdx := make(map[*pattern.Pattern]int, len(parentList))
		for _, parent := range parentList {
			if len(parent.Instances) > 1 && patternCount < p.Limit {
				patternCount++
				eligibleIdx[parent] = len(eligible)
				eligible = append(eligible, parent)
			}
		}

		results := make([]extensionResult, len(eligible))
		group, gctx := errgroup.WithContext(ctx)
		group.SetLimit(runtime.GOMAXPROCS(0))
		for i, parent := range eligible {
			i, parent := i, parent
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := extendOneParent(graph, parent, p)
				if err != nil {
					return err
				}
				results[i] = res

				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}

		var childList []*pattern.Pattern
		for _, parent := range parentList {
			if idx, ok := eligibleIdx[parent]; ok {
				for _, child := range results[idx].children {
					childList = pattern.PatternListInsert(child, childList, p.BeamWidth, p.ValueBased)
				}
			}
			if parent.Definition.EdgeCount() >= p.MinSize {
				discovered = pattern.PatternListInsert(parent, discovered, p.NumBest, false)
			}
		}

		parentList = childList
	}

	for _, parent := range parentList {
		if parent.Definition.EdgeCount() >= p.MinSize {
			discovered = pattern.PatternListInsert(parent, discovered, p.NumBest, false)
		}
	}

	return discovered, nil
}
