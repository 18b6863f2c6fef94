package pattern

import "errors"

// ErrInvalidOverlapPolicy indicates an unrecognized overlap policy token was
// given to ParseOverlapPolicy. This is an option-malformed error per spec §7,
// surfaced at parameter setup, never during discovery.
var ErrInvalidOverlapPolicy = errors.New("pattern: invalid overlap policy")
