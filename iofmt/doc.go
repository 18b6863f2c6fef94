// Package iofmt reads and writes graphs in Subdue's JSON array-of-objects
// format, and exports graphs as DOT for external visualization. Nothing in
// this package is imported by core, matcher, pattern, or discovery: I/O is
// an external collaborator, not part of the algorithm (spec §1).
package iofmt
