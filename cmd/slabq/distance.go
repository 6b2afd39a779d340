package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Distance from every probe point to every box",
	Long:  `Distance to the closest point of each box, 0 when the point is inside.`,
	RunE:  runDistance,
}

func runDistance(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	shapes := s.Shapes()
	out := cmd.OutOrStdout()
	for _, p := range s.Points {
		for i, shape := range shapes {
			aabb := shape.GetAABB()
			fmt.Fprintf(out, "%s -> %s distance=%g inside=%t\n",
				p.Name, s.Boxes[i].Name, aabb.DistanceToPoint(p.Position.Vec()), aabb.ContainsPoint(p.Position.Vec()))
		}
	}

	return nil
}
