// Package brep implements a winged-edge boundary representation for
// planar subdivisions: polygons (Voronoi cells), edges (bisector
// segments, rays, or full lines), and vertices (finite circumcenters
// or infinite direction markers), cross-referenced by integer handles
// held in an arena rather than pointers. The arena gives cheap
// validation, a simple -1 "no such entity" sentinel (NoID), and
// trivial serialization, at the cost of a level of indirection on
// every traversal.
//
// Package fortune constructs a WingedEdge incrementally through
// Builder, then calls Finalize to sort each polygon's and vertex's
// incident edges into clockwise order and fill in the four winged
// neighbour pointers per edge. The returned WingedEdge is immutable;
// package lloyd discards it and builds a fresh one per relaxation step
// rather than mutating it in place.
package brep
