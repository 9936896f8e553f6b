package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnsson/vorolath/fortune"
	"github.com/arnsson/vorolath/geom"
	"github.com/arnsson/vorolath/lloyd"
	"github.com/arnsson/vorolath/sitefile"
)

var (
	relaxConfigPath string
	relaxOutPath    string
)

var relaxCmd = &cobra.Command{
	Use:   "relax FILE",
	Short: "compute a diagram, then iterate Lloyd relaxation over it",
	Long: `Read sites from FILE, compute their Voronoi diagram, and then
run the configured number of Lloyd relaxation iterations, clipping each
cell to the settings file's window. Prints a summary of the final
diagram; with --out, also writes a JSON dump of it.`,
	Args: cobra.ExactArgs(1),
	Run:  runRelax,
}

func init() {
	RootCmd.AddCommand(relaxCmd)
	relaxCmd.Flags().StringVar(&relaxConfigPath, "config", "", "YAML settings file (optional)")
	relaxCmd.Flags().StringVar(&relaxOutPath, "out", "", "write a JSON diagram dump to this path")
}

func runRelax(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(relaxConfigPath)
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

	window := []geom.Point{
		geom.Pt(settings.WindowMinX, settings.WindowMinY),
		geom.Pt(settings.WindowMaxX, settings.WindowMinY),
		geom.Pt(settings.WindowMaxX, settings.WindowMaxY),
		geom.Pt(settings.WindowMinX, settings.WindowMaxY),
	}

	for i := 0; i < settings.Iterations; i++ {
		we, err = lloyd.Relax(we, window, settings.RayLength, settings.Alpha)
		if err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}

	printSummary(os.Stdout, we)
	if relaxOutPath != "" {
		if err := writeReport(relaxOutPath, we); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
	}
}
