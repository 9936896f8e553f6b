package brep

import "github.com/arnsson/vorolath/geom"

// Site is an input generator point: a 2-D location plus an optional
// user Cookie that carries arbitrary caller data through to the cells
// and edges it generates, without requiring a generic type parameter.
type Site struct {
	Point  geom.Point
	Cookie any
}
