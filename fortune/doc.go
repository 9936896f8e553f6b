// Package fortune computes a planar Voronoi diagram from a set of
// sites using Fortune's sweep-line algorithm: a horizontal line sweeps
// top to bottom, the beach line (package beachline) tracks the locus
// of points equidistant between the sweep line and the sites seen so
// far, and a priority queue (package sweepevent) drives two kinds of
// events — a new site appearing, or three consecutive arcs converging
// to a single Voronoi vertex. The result is assembled into a
// winged-edge subdivision (package brep).
//
// ComputeVoronoi is the package's single entry point.
package fortune
