// Package lloyd implements Lloyd relaxation over a winged-edge
// subdivision built by package fortune: each cell other than the
// polygon at infinity, with infinite vertices extended to a ray
// length, is clipped to a caller-supplied convex window, its area centroid is computed,
// and its generating site is nudged toward that centroid by a step
// fraction alpha. The whole diagram is then rebuilt from the moved
// sites, since a winged-edge graph is immutable once constructed and
// has no notion of "move this site in place".
//
// ClipConvex (Sutherland-Hodgman polygon clipping) and CellIndex (an
// r-tree over clipped cell bounds) are exported separately, for
// callers that only need one piece of the pipeline.
package lloyd
