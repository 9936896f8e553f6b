// Package beachline implements the sweep's beach line: the sequence
// of parabolic arcs, one per site whose locus is not yet fully
// resolved, ordered left to right along the current sweep position.
//
// The beach line is kept as a binary tree whose leaves are arcs and
// whose internal nodes are breakpoints — the x where two neighbouring
// arcs' parabolas cross, which moves as the sweep line advances and is
// therefore never stored as a fixed value, only recomputed on demand
// from the pair of sites it separates. Each breakpoint also owns the
// brep.EdgeID of the bisector it is currently tracing, so that when a
// breakpoint vanishes (an arc is squeezed out by a circle event) the
// two edges that converged on it can be closed off at the new vertex.
package beachline
