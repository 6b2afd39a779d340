package actor

import "github.com/go-gl/mathgl/mgl32"

// ShapeInterface is the interface that all collision shapes must implement
// Shapes belong to the caller; the geometry core only reads the AABB back.
type ShapeInterface interface {
	// ComputeAABB calculates the axis-aligned bounding box for the shape
	// at the given transform
	ComputeAABB(transform Transform)
	GetAABB() AABB
}

// Box represents an axis-aligned box collision shape
// The box is defined by its half-extents (half-width, half-height, half-depth)
// and an Offset from the transform position to the box center.
type Box struct {
	HalfExtents mgl32.Vec3
	Offset      mgl32.Vec3
	aabb        AABB
}

func (b *Box) ComputeAABB(transform Transform) {
	b.aabb = NewAABB(transform.Position, b.HalfExtents, b.Offset)
}

func (b *Box) GetAABB() AABB {
	return b.aabb
}

// Sphere is bounded by the cube of side 2*Radius around its center
type Sphere struct {
	Radius float32
	Offset mgl32.Vec3
	aabb   AABB
}

// ComputeAABB calculates the axis-aligned bounding box for the sphere
func (s *Sphere) ComputeAABB(transform Transform) {
	radiusVec := mgl32.Vec3{s.Radius, s.Radius, s.Radius}

	s.aabb = NewAABB(transform.Position, radiusVec, s.Offset)
}

func (s *Sphere) GetAABB() AABB {
	return s.aabb
}
