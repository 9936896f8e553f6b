package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when vorolath is called without a
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "vorolath",
	Short: "compute and relax planar Voronoi diagrams",
	Long: `vorolath builds the Voronoi diagram of a set of 2-D sites using
Fortune's sweep-line algorithm, and can iterate Lloyd relaxation over
the result to move the sites toward a centroidal tessellation.`,
}

// Execute runs the command tree. It is called once from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
