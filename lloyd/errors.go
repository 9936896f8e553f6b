package lloyd

import "errors"

// ErrEmptyWindow is returned by Relax and ClipConvex when the clip
// window has fewer than 3 vertices, and so cannot bound any area.
var ErrEmptyWindow = errors.New("lloyd: clip window needs at least 3 vertices")

// ErrDegenerateCell names the case of a cell that clips away to
// nothing (zero or near-zero area) and so has no well-defined
// centroid. Relax does not return it: such a cell's site is left in
// place for that iteration.
var ErrDegenerateCell = errors.New("lloyd: cell clipped to empty or degenerate polygon")
