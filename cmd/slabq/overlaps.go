package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var overlapsCmd = &cobra.Command{
	Use:   "overlaps",
	Short: "List overlapping box pairs",
	Long:  `Runs the broad phase over all boxes. Touching faces count as overlapping.`,
	RunE:  runOverlaps,
}

func runOverlaps(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	shapes := s.Shapes()
	pairs := newBatch(len(shapes)).OverlapPairs(shapes)
	logger.Debug("broad phase done", "pairs", len(pairs))

	out := cmd.OutOrStdout()
	if len(pairs) == 0 {
		fmt.Fprintln(out, "no overlaps")
		return nil
	}
	for _, p := range pairs {
		fmt.Fprintf(out, "%s <-> %s\n", s.Boxes[p.A].Name, s.Boxes[p.B].Name)
	}

	return nil
}
