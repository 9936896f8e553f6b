package sweepevent

import "errors"

// ErrEmpty is returned by Pop when the queue has no pending events.
var ErrEmpty = errors.New("sweepevent: empty queue")
