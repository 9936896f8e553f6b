package brep

import "errors"

// PendingInfinite is a placeholder Start or End value on an Edge that
// has not yet been resolved to an actual Vertex: either a ray waiting
// for its outward direction to be computed, or one end of a full line
// that a circle event never arrived to cut short. Builder.Finalize
// refuses to run while any edge still holds it.
const PendingInfinite VertexID = -2

// ErrPendingEdges is returned by Finalize when one or more edges still
// have a PendingInfinite endpoint; the caller (package fortune) must
// resolve rays first.
var ErrPendingEdges = errors.New("brep: edges with unresolved infinite endpoints")

// ErrInvalid is returned by Finalize when the constructed subdivision
// fails validation; see Validate for the individual violations.
var ErrInvalid = errors.New("brep: invalid winged-edge structure")

// ErrDisjointRing is reported by Validate when two edges adjacent in a
// polygon's or vertex's cyclic order do not share an endpoint.
var ErrDisjointRing = errors.New("brep: ring edges do not share a vertex")

// ErrBrokenWing is reported by Validate when a winged neighbour
// pointer does not point back correctly.
var ErrBrokenWing = errors.New("brep: inconsistent winged neighbour pointer")

// ErrVertexEdgeBound is reported by Validate when the structure holds
// more vertices than twice its edge count, violating the bound every
// planar subdivision must satisfy (each edge contributes at most two
// vertex incidences).
var ErrVertexEdgeBound = errors.New("brep: vertex count exceeds twice the edge count")
