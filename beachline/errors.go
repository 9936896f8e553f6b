package beachline

import "errors"

// ErrEmpty is returned by FindArcAbove when the beach line has no
// arcs yet.
var ErrEmpty = errors.New("beachline: empty")
