package pqueue

import "errors"

// ErrEmpty is returned by Peek and Pop when the queue has no elements.
var ErrEmpty = errors.New("pqueue: empty queue")
