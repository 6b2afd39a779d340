package slab

import (
	"github.com/akmonengine/slab/actor"
	"github.com/akmonengine/slab/raycast"
	"github.com/go-gl/mathgl/mgl32"
)

// Hit is a raycast result tagged with the shape it belongs to
// Index is -1 when nothing was hit.
type Hit struct {
	raycast.HitResult
	Index int
}

// BroadPhase rebuilds the grid from shapes and streams every pair whose AABBs
// overlap. The channel is closed when all pairs were sent.
func BroadPhase(spatialGrid *SpatialGrid, shapes []actor.ShapeInterface, workersCount int) <-chan Pair {
	spatialGrid.Build(shapes)

	return spatialGrid.FindPairsParallel(shapes, workersCount)
}

// Raycast returns the nearest hit of ray among shapes
// Equal distances keep the lowest index.
func Raycast(ray raycast.Ray, shapes []actor.ShapeInterface) (Hit, bool) {
	return raycastCandidates(ray, shapes, nil)
}

// RaycastAll casts every ray against shapes, spreading rays across workers.
// Rays are independent, so results[i] always matches Raycast(rays[i], shapes).
func RaycastAll(rays []raycast.Ray, shapes []actor.ShapeInterface, workersCount int) []Hit {
	results := make([]Hit, len(rays))

	task(workersCount, rays, func(i int, ray raycast.Ray) {
		results[i], _ = Raycast(ray, shapes)
	})

	return results
}

// Within returns the indices of shapes whose AABB lies at most radius away
// from point, in ascending order.
func Within(point mgl32.Vec3, radius float32, shapes []actor.ShapeInterface) []int {
	var indices []int
	for i, shape := range shapes {
		if shape.GetAABB().DistanceToPoint(point) <= radius {
			indices = append(indices, i)
		}
	}

	return indices
}

// raycastCandidates tests the shapes listed in candidates, or all shapes when
// candidates is nil. Candidates must be ascending so that ties keep the
// lowest shape index.
func raycastCandidates(ray raycast.Ray, shapes []actor.ShapeInterface, candidates []int) (Hit, bool) {
	if candidates == nil {
		candidates = make([]int, len(shapes))
		for i := range candidates {
			candidates[i] = i
		}
	}

	results := make([]raycast.HitResult, len(candidates))
	for k, i := range candidates {
		results[k] = ray.Cast(shapes[i].GetAABB())
	}

	k, ok := raycast.Nearest(results)
	if !ok {
		return Hit{Index: -1}, false
	}

	return Hit{HitResult: results[k], Index: candidates[k]}, true
}

// rayBounds is the AABB swept by the ray over [0, MaxDistance]
func rayBounds(ray raycast.Ray) actor.AABB {
	end := ray.At(ray.MaxDistance)

	return actor.AABB{
		Min: mgl32.Vec3{min(ray.Origin.X(), end.X()), min(ray.Origin.Y(), end.Y()), min(ray.Origin.Z(), end.Z())},
		Max: mgl32.Vec3{max(ray.Origin.X(), end.X()), max(ray.Origin.Y(), end.Y()), max(ray.Origin.Z(), end.Z())},
	}
}
