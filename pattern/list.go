package pattern

import "github.com/katalvlaran/subdue/matcher"

// PatternListInsert inserts newPattern into list, which is maintained in
// decreasing order by Value, and returns the (possibly trimmed) result.
//
// If newPattern's definition is isomorphic to an existing list member, only
// the higher-valued of the two survives: if the existing pattern's value is
// already at least as good, list is returned unchanged; otherwise the
// existing pattern is dropped and newPattern is inserted in its place.
//
// capacity bounds the result: if valueBased is true, capacity is the
// maximum number of distinct Value numbers represented on the list (every
// pattern sharing the lowest surviving value is kept or dropped together);
// otherwise capacity is a plain maximum pattern count, and at most one
// pattern (the lowest-valued) is dropped per call. list is assumed to
// already conform to capacity before the call.
func PatternListInsert(newPattern *Pattern, list []*Pattern, capacity int, valueBased bool) []*Pattern {
	for i, p := range list {
		if matcher.Match(p.Definition, newPattern.Definition) {
			if p.Value >= newPattern.Value {
				return list
			}
			list = append(list[:i], list[i+1:]...)
			break
		}
	}

	insertAt := 0
	for insertAt < len(list) && newPattern.Value <= list[insertAt].Value {
		insertAt++
	}
	list = append(list, nil)
	copy(list[insertAt+1:], list[insertAt:])
	list[insertAt] = newPattern

	if valueBased {
		unique := UniqueValues(list)
		if len(unique) > capacity {
			removeValue := unique[len(unique)-1]
			for len(list) > 0 && list[len(list)-1].Value == removeValue {
				list = list[:len(list)-1]
			}
		}
	} else if len(list) > capacity {
		list = list[:len(list)-1]
	}

	return list
}

// UniqueValues returns the distinct Value numbers present in list, in the
// order they first appear.
func UniqueValues(list []*Pattern) []float64 {
	var unique []float64
	seen := make(map[float64]struct{})
	for _, p := range list {
		if _, ok := seen[p.Value]; !ok {
			seen[p.Value] = struct{}{}
			unique = append(unique, p.Value)
		}
	}

	return unique
}
