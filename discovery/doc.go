// Package discovery implements the beam-search pattern discovery loop:
// seeding single-edge patterns, extending a beam of parent patterns one
// edge at a time, pruning and capping the beam, and carrying the best
// pattern forward across optional compression iterations.
package discovery
