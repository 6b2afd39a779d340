package slab

import (
	"math/rand"
	"testing"

	"github.com/akmonengine/slab/actor"
	"github.com/akmonengine/slab/raycast"
	"github.com/go-gl/mathgl/mgl32"
)

func createSphere(position mgl32.Vec3, radius float32) actor.ShapeInterface {
	sphere := &actor.Sphere{Radius: radius}
	sphere.ComputeAABB(actor.Transform{Position: position})

	return sphere
}

// randomShapes - deterministic field of boxes and spheres
func randomShapes(seed int64, count int, size float32) []actor.ShapeInterface {
	rng := rand.New(rand.NewSource(seed))
	shapes := make([]actor.ShapeInterface, count)

	for i := range shapes {
		pos := mgl32.Vec3{rng.Float32() * size, rng.Float32() * size, rng.Float32() * size}
		if i%3 == 0 {
			shapes[i] = createSphere(pos, 0.2+rng.Float32())
		} else {
			half := mgl32.Vec3{0.1 + rng.Float32(), 0.1 + rng.Float32(), 0.1 + rng.Float32()}
			shapes[i] = createTestBox(pos, half)
		}
	}

	return shapes
}

func bruteForcePairs(shapes []actor.ShapeInterface) []Pair {
	var pairs []Pair
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			if shapes[i].GetAABB().Overlaps(shapes[j].GetAABB()) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}

func TestBroadPhase_MatchesBruteForce(t *testing.T) {
	shapes := randomShapes(1, 300, 30)
	want := bruteForcePairs(shapes)

	for _, workers := range []int{0, 1, 4, 16} {
		var got []Pair
		for p := range BroadPhase(NewSpatialGrid(2.0, 512), shapes, workers) {
			got = append(got, p)
		}
		sortPairs(got)

		if len(got) != len(want) {
			t.Fatalf("workers=%d: %d pairs, want %d", workers, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("workers=%d: pair %d = %v, want %v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestRaycast_Nearest(t *testing.T) {
	shapes := []actor.ShapeInterface{
		createTestBox(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{1, 1, 1}),
		createTestBox(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 1, 1}),
		createTestBox(mgl32.Vec3{5, 5, 0}, mgl32.Vec3{1, 1, 1}),
		createSphere(mgl32.Vec3{-5, 0, 0}, 1),
	}
	ray := raycast.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{1, 0, 0}, MaxDistance: 100}

	hit, ok := Raycast(ray, shapes)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Index != 1 {
		t.Errorf("Index = %d, want 1", hit.Index)
	}
	if hit.Distance != 4 {
		t.Errorf("Distance = %v, want 4", hit.Distance)
	}
	if hit.Normal != (mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("Normal = %v, want {-1 0 0}", hit.Normal)
	}

	ray.MaxDistance = 3
	if hit, ok := Raycast(ray, shapes); ok {
		t.Errorf("expected no hit within 3, got %+v", hit)
	}
}

func TestRaycast_TieKeepsLowestIndex(t *testing.T) {
	shapes := []actor.ShapeInterface{
		createTestBox(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 1, 1}),
		createTestBox(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{1, 1, 1}),
	}
	ray := raycast.Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 1, 0}, MaxDistance: 10}

	hit, ok := Raycast(ray, shapes)
	if !ok || hit.Index != 0 {
		t.Errorf("Raycast = (%+v, %v), want index 0", hit, ok)
	}

	hit, ok = NewBatch(1.0, 64, 1).Raycast(ray, shapes)
	if !ok || hit.Index != 0 || hit.Distance != 4 {
		t.Errorf("Batch.Raycast = (%+v, %v), want index 0 at distance 4", hit, ok)
	}
}

func TestRaycastAll_MatchesSequential(t *testing.T) {
	shapes := randomShapes(7, 200, 40)
	rng := rand.New(rand.NewSource(3))

	rays := make([]raycast.Ray, 257)
	for i := range rays {
		dir := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
		if dir.Len() < 1e-3 {
			dir = mgl32.Vec3{1, 0, 0}
		}
		rays[i] = raycast.Ray{
			Origin:      mgl32.Vec3{rng.Float32() * 40, rng.Float32() * 40, rng.Float32() * 40},
			Direction:   dir.Normalize(),
			MaxDistance: 5 + rng.Float32()*50,
		}
	}

	for _, workers := range []int{1, 3, 8} {
		results := RaycastAll(rays, shapes, workers)
		if len(results) != len(rays) {
			t.Fatalf("workers=%d: %d results, want %d", workers, len(results), len(rays))
		}
		for i, ray := range rays {
			want, _ := Raycast(ray, shapes)
			if results[i] != want {
				t.Errorf("workers=%d ray %d: %+v, want %+v", workers, i, results[i], want)
			}
		}
	}
}

func TestWithin(t *testing.T) {
	shapes := []actor.ShapeInterface{
		createTestBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}),
		createTestBox(mgl32.Vec3{4, 0, 0}, mgl32.Vec3{1, 1, 1}),
		createSphere(mgl32.Vec3{0, 10, 0}, 1),
	}

	tests := []struct {
		name   string
		point  mgl32.Vec3
		radius float32
		want   []int
	}{
		{"inside first", mgl32.Vec3{0, 0, 0}, 0, []int{0}},
		{"between boxes", mgl32.Vec3{2, 0, 0}, 1, []int{0, 1}},
		{"nothing near", mgl32.Vec3{0, -20, 0}, 5, nil},
		{"reaches sphere bounds", mgl32.Vec3{0, 5, 0}, 4, []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Within(tt.point, tt.radius, shapes)
			if len(got) != len(tt.want) {
				t.Fatalf("Within = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Within = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestTask(t *testing.T) {
	data := make([]int, 103)
	for i := range data {
		data[i] = i
	}

	for _, workers := range []int{0, 1, 4, 200} {
		out := make([]int, len(data))
		task(workers, data, func(i int, v int) {
			out[i] = v * 2
		})
		for i, v := range out {
			if v != i*2 {
				t.Fatalf("workers=%d: out[%d] = %d, want %d", workers, i, v, i*2)
			}
		}
	}
}

func BenchmarkLargeBroadPhase(b *testing.B) {
	shapes := randomShapes(0, 1000, 100)
	grid := NewSpatialGrid(6.0, 4096)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range BroadPhase(grid, shapes, 4) {
		}
	}
}

func BenchmarkRaycastAll(b *testing.B) {
	shapes := randomShapes(0, 1000, 100)
	rays := make([]raycast.Ray, 1024)
	for i := range rays {
		rays[i] = raycast.Ray{
			Origin:      mgl32.Vec3{0, float32(i % 100), float32(i / 10)},
			Direction:   mgl32.Vec3{1, 0, 0},
			MaxDistance: 100,
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		RaycastAll(rays, shapes, 4)
	}
}
