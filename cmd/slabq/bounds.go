package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Print the AABB of every box",
	Long:  `Derives min/max corners from position, half extents and offset.`,
	RunE:  runBounds,
}

func runBounds(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, shape := range s.Shapes() {
		aabb := shape.GetAABB()
		fmt.Fprintf(out, "%s min=%s max=%s size=%s\n",
			s.Boxes[i].Name, formatVec(aabb.Min), formatVec(aabb.Max), formatVec(aabb.Size()))
	}

	return nil
}
