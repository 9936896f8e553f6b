// Command vorolath computes planar Voronoi diagrams from a list of
// sites and, optionally, relaxes them toward a centroidal
// tessellation.
package main

import "github.com/arnsson/vorolath/cmd/vorolath/cmd"

func main() {
	cmd.Execute()
}
