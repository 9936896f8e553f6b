// Package sweepevent implements the Fortune sweep's event queue: site
// events (the sweep line reaches a new site) and circle events (three
// consecutive beach-line arcs are about to converge to a Voronoi
// vertex), ordered with greater y first, ties broken by lesser x, and
// site events preceding circle events at identical coordinates, built
// on package pqueue so that circle events invalidated by later
// beach-line changes can be removed in O(log n) rather than marked in
// a side list and skipped at pop time.
package sweepevent
