package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"
)

var raycastCmd = &cobra.Command{
	Use:   "raycast",
	Short: "Nearest hit of every ray",
	Long:  `Casts every ray against all boxes and reports the closest hit.`,
	RunE:  runRaycast,
}

func runRaycast(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	shapes := s.Shapes()
	hits := newBatch(len(shapes)).RaycastAll(s.RayList(), shapes)

	out := cmd.OutOrStdout()
	for i, hit := range hits {
		name := s.Rays[i].Name
		if hit.Index == -1 {
			fmt.Fprintf(out, "%s miss\n", name)
			continue
		}
		if hit.Normal == (mgl32.Vec3{}) {
			logger.Warn("hit normal unresolved", "ray", name, "box", s.Boxes[hit.Index].Name)
		}
		fmt.Fprintf(out, "%s hit %s distance=%g point=%s normal=%s\n",
			name, s.Boxes[hit.Index].Name, hit.Distance, formatVec(hit.Point), formatVec(hit.Normal))
	}

	return nil
}
