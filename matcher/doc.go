// Package matcher implements the approximate, polynomial-budget graph
// isomorphism decision procedure Subdue uses to recognize when two
// instances share the same definition graph.
//
// Match searches for a bijection on edges (not vertices) between two small
// graphs. Vertex-to-vertex correspondences are checked per edge but never
// persisted across edge choices, which is what makes the procedure
// approximate: it does not enforce one consistent global vertex bijection.
// It may answer false on a genuinely isomorphic pair once its search budget
// is exhausted, and it may answer true on a non-isomorphic pair whose edges
// match one by one (same attributes, directedness, temporal ranks, and
// endpoint attributes/degrees/ranks) without a single vertex bijection
// tying them together.
//
// The budget (bounded by |E(g1)|^2 per top-level Match call) is scoped to
// that call, never a package-level counter, so concurrent Match calls from
// the discovery engine's parallel extension step never interfere with one
// another.
package matcher
