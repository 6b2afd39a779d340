package main

import (
	"fmt"

	"github.com/akmonengine/slab"
	"github.com/akmonengine/slab/actor"
	"github.com/akmonengine/slab/raycast"
	"github.com/go-gl/mathgl/mgl32"
)

// SetupScene places a row of crates and a wall behind them
func SetupScene() []actor.ShapeInterface {
	shapes := make([]actor.ShapeInterface, 0, 6)

	for i := 0; i < 5; i++ {
		crate := &actor.Box{HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}, Offset: mgl32.Vec3{0, 0.5, 0}}
		crate.ComputeAABB(actor.Transform{Position: mgl32.Vec3{float32(i) * 2, 0, 10}})
		shapes = append(shapes, crate)
	}

	wall := &actor.Box{HalfExtents: mgl32.Vec3{20, 5, 0.5}}
	wall.ComputeAABB(actor.Transform{Position: mgl32.Vec3{0, 0, 20}})
	shapes = append(shapes, wall)

	return shapes
}

func main() {
	shapes := SetupScene()
	batch := slab.NewBatch(2.0, 256, 4)

	// Fan of shots from the player toward +Z
	rays := make([]raycast.Ray, 0, 9)
	for i := -4; i <= 4; i++ {
		dir := mgl32.Vec3{float32(i) * 0.1, 0, 1}.Normalize()
		rays = append(rays, raycast.Ray{Origin: mgl32.Vec3{4, 0.5, 0}, Direction: dir, MaxDistance: 50})
	}

	for i, hit := range batch.RaycastAll(rays, shapes) {
		if hit.Index == -1 {
			fmt.Printf("shot %d: miss\n", i)
			continue
		}
		fmt.Printf("shot %d: shape %d at %.2f, point %v, normal %v\n", i, hit.Index, hit.Distance, hit.Point, hit.Normal)
	}

	for _, p := range batch.OverlapPairs(shapes) {
		fmt.Printf("overlap: %d <-> %d\n", p.A, p.B)
	}

	player := mgl32.Vec3{4, 0.5, 0}
	fmt.Printf("shapes within 10 of the player: %v\n", batch.Within(player, 10, shapes))
}
