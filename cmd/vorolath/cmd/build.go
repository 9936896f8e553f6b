package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnsson/vorolath/fortune"
	"github.com/arnsson/vorolath/sitefile"
)

var (
	buildConfigPath string
	buildOutPath    string
)

var buildCmd = &cobra.Command{
	Use:   "build FILE",
	Short: "compute the Voronoi diagram of a site file",
	Long: `Read sites from FILE (one "x,y" pair per line, "//" comments
allowed), compute their Voronoi diagram and print a one-line summary.
With --out, also write a JSON dump of the diagram.`,
	Args: cobra.ExactArgs(1),
	Run:  runBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "YAML settings file (optional)")
	buildCmd.Flags().StringVar(&buildOutPath, "out", "", "write a JSON diagram dump to this path")
}

func runBuild(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(buildConfigPath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	sites, err := sitefile.ReadFile(args[0])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	we, err := fortune.ComputeVoronoi(sites,
		fortune.WithTolerance(settings.Tolerance),
		fortune.WithRayLength(settings.RayLength),
	)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, we)
	if buildOutPath != "" {
		if err := writeReport(buildOutPath, we); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}
}
