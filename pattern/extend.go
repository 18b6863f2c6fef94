package pattern

import (
	"github.com/katalvlaran/subdue/core"
	"github.com/katalvlaran/subdue/matcher"
)

// ExtendPattern extends every instance of parent by one edge in all
// possible ways, then collects matching extended instances together into
// new patterns (spec §4.4):
//
//  1. Compute all one-edge extensions of every instance of parent,
//     de-duplicating by instance identity (same vertex set and edge set).
//  2. Repeatedly take any remaining extended instance x, build its
//     definition graph (temporally ordered if temporal is set), and start a
//     new pattern with x as its first instance. Scan the remaining pool:
//     accept any instance whose definition graph matches x's and that does
//     not overlap (per policy) an instance already accepted into this
//     pattern; otherwise leave it for a future new pattern.
//  3. Continue until the pool is empty.
//
// Returned patterns are not evaluated; the caller (discovery) does that.
func ExtendPattern(g *core.Graph, parent *Pattern, overlap OverlapPolicy, temporal bool) ([]*Pattern, error) {
	var pool []*Instance
	for _, inst := range parent.Instances {
		extensions, err := ExtendInstance(g, inst)
		if err != nil {
			return nil, err
		}
		for _, ext := range extensions {
			if !containsEqualInstance(pool, ext) {
				pool = append(pool, ext)
			}
		}
	}

	var newPatterns []*Pattern
	for len(pool) > 0 {
		head := pool[0]
		pool = pool[1:]

		headDef, err := CreateGraphFromInstance(head)
		if err != nil {
			return nil, err
		}
		if temporal {
			headDef.TemporalOrder()
		}

		accepted := []*Instance{head}
		var remainder []*Instance
		for _, candidate := range pool {
			candidateDef, err := CreateGraphFromInstance(candidate)
			if err != nil {
				return nil, err
			}
			if temporal {
				candidateDef.TemporalOrder()
			}

			if matcher.Match(headDef, candidateDef) && !InstancesOverlap(overlap, accepted, candidate) {
				accepted = append(accepted, candidate)
			} else {
				remainder = append(remainder, candidate)
			}
		}
		pool = remainder

		newPatterns = append(newPatterns, NewPattern(headDef, accepted))
	}

	return newPatterns, nil
}

func containsEqualInstance(pool []*Instance, candidate *Instance) bool {
	for _, existing := range pool {
		if existing.Equal(candidate) {
			return true
		}
	}

	return false
}
