// slabq runs geometry queries against a YAML scene file, for debugging
// colliders and hit-scan setups.
//
// Usage:
//
//	slabq bounds   --scene arena.yaml    - Print the AABB of every box
//	slabq overlaps --scene arena.yaml    - List overlapping box pairs
//	slabq distance --scene arena.yaml    - Distance from every point to every box
//	slabq raycast  --scene arena.yaml    - Nearest hit of every ray
//
// Global flags:
//
//	--scene <path>  - Scene file (required)
//	--workers <n>   - Worker goroutines for bulk queries (default: 1)
//	--cell <size>   - Broad-phase cell size, 0 disables the grid (default: 2)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/akmonengine/slab"
	"github.com/akmonengine/slab/internal/debug"
	"github.com/akmonengine/slab/internal/scene"
)

var (
	// Global flags
	flagScene   string
	flagWorkers int
	flagCell    float32
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slabq",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slabq",
	Short: "slabq - AABB queries over a scene file",
	Long: `slabq loads boxes, rays and probe points from a YAML scene file and
prints bounds, overlaps, distances and raycast hits.

Examples:
  slabq bounds --scene arena.yaml
  slabq raycast --scene arena.yaml --workers 4`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.InfoLevel)
		}
		logger.Debug("precondition checks", "slabdebug", debug.Enabled)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", "", "Path to the scene file")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", slab.DEFAULT_WORKERS, "Worker goroutines for bulk queries")
	rootCmd.PersistentFlags().Float32Var(&flagCell, "cell", 2, "Broad-phase cell size (0 = brute force)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(overlapsCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(raycastCmd)
}

// loadScene reads --scene, logging what was loaded
func loadScene() (*scene.Scene, error) {
	if flagScene == "" {
		return nil, fmt.Errorf("--scene is required")
	}

	s, err := scene.Load(flagScene)
	if err != nil {
		return nil, err
	}
	logger.Debug("scene loaded", "path", flagScene, "boxes", len(s.Boxes), "rays", len(s.Rays), "points", len(s.Points))

	return s, nil
}

// newBatch builds the query settings from the global flags
func newBatch(shapes int) *slab.Batch {
	if flagCell <= 0 {
		logger.Debug("broad phase disabled")
		return &slab.Batch{Workers: flagWorkers}
	}

	// About one bucket per shape keeps the table sparse
	return slab.NewBatch(flagCell, max(64, shapes*2), flagWorkers)
}

func formatVec(v [3]float32) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
