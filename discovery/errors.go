package discovery

import "errors"

// ErrInvalidParams is the sentinel for an option-malformed Params value
// (spec §7 "Option-malformed" taxonomy entry). ResolveDefaults and Run do
// not validate Params and never return it.
var ErrInvalidParams = errors.New("discovery: invalid parameters")
