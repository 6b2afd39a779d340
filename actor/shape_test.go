package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Helper functions
func vec3Equal(a, b mgl32.Vec3, tolerance float32) bool {
	return floatEqual(a.X(), b.X(), tolerance) &&
		floatEqual(a.Y(), b.Y(), tolerance) &&
		floatEqual(a.Z(), b.Z(), tolerance)
}

func floatEqual(a, b, tolerance float32) bool {
	return mgl32.Abs(a-b) <= tolerance
}

func TestBoxComputeAABB(t *testing.T) {
	tests := []struct {
		name        string
		box         *Box
		transform   Transform
		expectedMin mgl32.Vec3
		expectedMax mgl32.Vec3
	}{
		{
			name:        "box at origin",
			box:         &Box{HalfExtents: mgl32.Vec3{1, 2, 3}},
			transform:   NewTransform(),
			expectedMin: mgl32.Vec3{-1, -2, -3},
			expectedMax: mgl32.Vec3{1, 2, 3},
		},
		{
			name:        "box with offset position",
			box:         &Box{HalfExtents: mgl32.Vec3{0.5, 0.5, 0.5}},
			transform:   Transform{Position: mgl32.Vec3{3, -2, 5}},
			expectedMin: mgl32.Vec3{2.5, -2.5, 4.5},
			expectedMax: mgl32.Vec3{3.5, -1.5, 5.5},
		},
		{
			name:        "box with collider offset",
			box:         &Box{HalfExtents: mgl32.Vec3{0.5, 1, 0.5}, Offset: mgl32.Vec3{0, 1, 0}},
			transform:   Transform{Position: mgl32.Vec3{10, 0, 10}},
			expectedMin: mgl32.Vec3{9.5, 0, 9.5},
			expectedMax: mgl32.Vec3{10.5, 2, 10.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.box.ComputeAABB(tt.transform)
			aabb := tt.box.GetAABB()

			if !vec3Equal(aabb.Min, tt.expectedMin, 1e-6) {
				t.Errorf("Min = %v, want %v", aabb.Min, tt.expectedMin)
			}
			if !vec3Equal(aabb.Max, tt.expectedMax, 1e-6) {
				t.Errorf("Max = %v, want %v", aabb.Max, tt.expectedMax)
			}
		})
	}
}

func TestSphereComputeAABB(t *testing.T) {
	tests := []struct {
		name        string
		sphere      *Sphere
		transform   Transform
		expectedMin mgl32.Vec3
		expectedMax mgl32.Vec3
	}{
		{
			name:        "sphere at origin",
			sphere:      &Sphere{Radius: 2.0},
			transform:   NewTransform(),
			expectedMin: mgl32.Vec3{-2, -2, -2},
			expectedMax: mgl32.Vec3{2, 2, 2},
		},
		{
			name:        "sphere with offset position",
			sphere:      &Sphere{Radius: 1.5},
			transform:   Transform{Position: mgl32.Vec3{3, -2, 5}},
			expectedMin: mgl32.Vec3{1.5, -3.5, 3.5},
			expectedMax: mgl32.Vec3{4.5, -0.5, 6.5},
		},
		{
			name:        "sphere with collider offset",
			sphere:      &Sphere{Radius: 0.5, Offset: mgl32.Vec3{0, 0.5, 0}},
			transform:   Transform{Position: mgl32.Vec3{1, 1, 1}},
			expectedMin: mgl32.Vec3{0.5, 1, 0.5},
			expectedMax: mgl32.Vec3{1.5, 2, 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.sphere.ComputeAABB(tt.transform)
			aabb := tt.sphere.GetAABB()

			if !vec3Equal(aabb.Min, tt.expectedMin, 1e-6) {
				t.Errorf("Min = %v, want %v", aabb.Min, tt.expectedMin)
			}
			if !vec3Equal(aabb.Max, tt.expectedMax, 1e-6) {
				t.Errorf("Max = %v, want %v", aabb.Max, tt.expectedMax)
			}
			if !aabb.IsValid() {
				t.Errorf("Invalid AABB: Min %v > Max %v", aabb.Min, aabb.Max)
			}
		})
	}
}

func TestShapeRecomputeAfterMove(t *testing.T) {
	var shape ShapeInterface = &Box{HalfExtents: mgl32.Vec3{1, 1, 1}}

	shape.ComputeAABB(Transform{Position: mgl32.Vec3{0, 0, 0}})
	first := shape.GetAABB()

	shape.ComputeAABB(Transform{Position: mgl32.Vec3{5, 0, 0}})
	second := shape.GetAABB()

	if first.Overlaps(second) {
		t.Errorf("moved box %v should not overlap its previous bounds %v", second, first)
	}
	if !second.ContainsPoint(mgl32.Vec3{5, 0, 0}) {
		t.Errorf("moved box %v should contain its new position", second)
	}
}
