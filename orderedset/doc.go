// Package orderedset provides a small generic container of distinct
// elements that preserves insertion order for iteration while answering
// membership in O(1). Equality between two ordered sets is based purely on
// the underlying set of elements, independent of order, which is what lets
// the pattern package compare two instances' vertex/edge collections with
// one membership lookup per element (linear in the set size, not
// constant-time).
//
// Set is generic over any comparable element type; Subdue uses it with
// *core.Vertex and *core.Edge pointers, where identity (not attribute
// equality) is what determines membership — two distinct vertex records
// with identical attributes are still distinct elements.
package orderedset
