package iofmt

import "errors"

// ErrMalformedInput is returned by ReadGraph/ParseGraph when the input is
// not valid JSON, references an unknown vertex id from an edge, or
// otherwise fails to satisfy the input graph format (spec §6, §7
// "Input-malformed" taxonomy entry).
var ErrMalformedInput = errors.New("iofmt: malformed input")
