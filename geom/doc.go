// Package geom provides the geometric primitives the rest of vorolath
// builds on: a 2-D point, orientation and tolerance predicates, the
// circumcenter of a site triple, the parabolic break-point cut used by
// the beach line, and the clockwise angular order used to sort edges
// around a polygon or vertex.
//
// Every predicate here is a pure function of its arguments: no state,
// no allocation beyond the returned value. Tolerance is governed by a
// single epsilon (Epsilon), matching the "fixed double-precision with
// a single tolerance parameter" policy the engine is built to.
package geom
