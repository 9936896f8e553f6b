// Package vorolath computes planar Voronoi diagrams with Fortune's
// sweep-line algorithm and relaxes them toward a centroidal
// tessellation with Lloyd's algorithm.
//
// Package layout:
//
//	geom/      — 2-D points and the core geometric predicates
//	pqueue/    — generic priority queue with O(log n) deletion
//	sweepevent/— the sweep's site/circle event queue
//	beachline/ — the sweep's binary-tree beach line of arcs
//	brep/      — winged-edge boundary representation (the result type)
//	fortune/   — ComputeVoronoi, the sweep driver
//	lloyd/     — Lloyd relaxation and convex polygon clipping
//	sitefile/  — minimal site-list text format, for the CLI
//	cmd/vorolath/ — command-line front end
//
// ComputeVoronoi (package fortune) is the module's primary entry
// point; Relax (package lloyd) is the optional post-process.
package vorolath
