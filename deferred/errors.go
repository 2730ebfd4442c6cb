package deferred

import "errors"

// ErrIndexOutOfRange is returned by any call addressing an index
// outside [0, Len()), or outside [0, Len()] for Insert. The core tree performs no range validation of
// its own; this is checked here, at the boundary the caller touches.
var ErrIndexOutOfRange = errors.New("deferred: index out of range")
