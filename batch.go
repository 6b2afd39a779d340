package slab

import (
	"cmp"
	"slices"

	"github.com/akmonengine/slab/actor"
	"github.com/akmonengine/slab/raycast"
	"github.com/go-gl/mathgl/mgl32"
)

const DEFAULT_WORKERS = 1

// Batch holds the settings of bulk queries over caller-owned shapes
// A Batch owns no shapes; every call receives the slice it works on. The grid
// is reused between calls, so one Batch must not run queries concurrently.
type Batch struct {
	// Grid used to cull candidates; nil means brute force
	SpatialGrid *SpatialGrid
	Workers     int
}

// NewBatch creates a Batch with a grid of numCells cells of cellSize
func NewBatch(cellSize float32, numCells int, workers int) *Batch {
	return &Batch{
		SpatialGrid: NewSpatialGrid(cellSize, numCells),
		Workers:     workers,
	}
}

func (b *Batch) workers() int {
	return max(DEFAULT_WORKERS, b.Workers)
}

// OverlapPairs returns every overlapping pair, sorted by (A, B)
func (b *Batch) OverlapPairs(shapes []actor.ShapeInterface) []Pair {
	var pairs []Pair

	if b.SpatialGrid == nil {
		for i := range shapes {
			for j := i + 1; j < len(shapes); j++ {
				if shapes[i].GetAABB().Overlaps(shapes[j].GetAABB()) {
					pairs = append(pairs, Pair{A: i, B: j})
				}
			}
		}
		return pairs
	}

	for pair := range BroadPhase(b.SpatialGrid, shapes, b.workers()) {
		pairs = append(pairs, pair)
	}
	sortPairs(pairs)

	return pairs
}

// Raycast returns the nearest hit among shapes, culling with the grid when set
func (b *Batch) Raycast(ray raycast.Ray, shapes []actor.ShapeInterface) (Hit, bool) {
	if b.SpatialGrid == nil {
		return Raycast(ray, shapes)
	}

	b.SpatialGrid.Build(shapes)
	candidates := b.SpatialGrid.QueryAABB(rayBounds(ray))
	if candidates == nil {
		candidates = []int{}
	}

	return raycastCandidates(ray, shapes, candidates)
}

// RaycastAll casts rays in parallel over Workers goroutines
func (b *Batch) RaycastAll(rays []raycast.Ray, shapes []actor.ShapeInterface) []Hit {
	if b.SpatialGrid == nil {
		return RaycastAll(rays, shapes, b.workers())
	}

	// The grid is built once and only read by the workers
	b.SpatialGrid.Build(shapes)
	results := make([]Hit, len(rays))
	task(b.workers(), rays, func(i int, ray raycast.Ray) {
		candidates := b.SpatialGrid.QueryAABB(rayBounds(ray))
		if candidates == nil {
			candidates = []int{}
		}
		results[i], _ = raycastCandidates(ray, shapes, candidates)
	})

	return results
}

// Within returns shapes at most radius away from point, in ascending order
func (b *Batch) Within(point mgl32.Vec3, radius float32, shapes []actor.ShapeInterface) []int {
	if b.SpatialGrid == nil {
		return Within(point, radius, shapes)
	}

	b.SpatialGrid.Build(shapes)
	r := mgl32.Vec3{radius, radius, radius}
	region := actor.AABB{Min: point.Sub(r), Max: point.Add(r)}

	var indices []int
	for _, i := range b.SpatialGrid.QueryAABB(region) {
		if shapes[i].GetAABB().DistanceToPoint(point) <= radius {
			indices = append(indices, i)
		}
	}

	return indices
}

func sortPairs(pairs []Pair) {
	slices.SortFunc(pairs, func(p, q Pair) int {
		if p.A != q.A {
			return cmp.Compare(p.A, q.A)
		}
		return cmp.Compare(p.B, q.B)
	})
}
