package actor

import (
	"math"

	"github.com/akmonengine/slab/internal/debug"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB represents an axis-aligned bounding box
// Valid boxes satisfy Min[i] <= Max[i] on every axis. All predicates treat the
// bounds as closed: touching faces overlap, boundary points are contained.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// GetBounds derives the corners of a box centered on position+offset.
// halfExtent components must be >= 0, otherwise min may exceed max.
func GetBounds(position, halfExtent, offset mgl32.Vec3) (min, max mgl32.Vec3) {
	debug.Extents(halfExtent)

	center := position.Add(offset)

	return center.Sub(halfExtent), center.Add(halfExtent)
}

// NewAABB builds the AABB returned by GetBounds
func NewAABB(position, halfExtent, offset mgl32.Vec3) AABB {
	min, max := GetBounds(position, halfExtent, offset)

	return AABB{Min: min, Max: max}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl32.Vec3) bool {
	debug.Box(a.Min, a.Max)

	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	debug.Box(a.Min, a.Max)
	debug.Box(other.Min, other.Max)

	// AABBs overlap if they overlap on all three axes
	return a.Min.X() <= other.Max.X() && a.Max.X() >= other.Min.X() &&
		a.Min.Y() <= other.Max.Y() && a.Max.Y() >= other.Min.Y() &&
		a.Min.Z() <= other.Max.Z() && a.Max.Z() >= other.Min.Z()
}

// ClosestPoint clamps each coordinate of point into the box
func (a AABB) ClosestPoint(point mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(point.X(), a.Min.X(), a.Max.X()),
		mgl32.Clamp(point.Y(), a.Min.Y(), a.Max.Y()),
		mgl32.Clamp(point.Z(), a.Min.Z(), a.Max.Z()),
	}
}

// DistanceToPoint returns the euclidean distance from point to the nearest
// point of the box. It is exactly 0 for points inside or on the boundary and
// strictly positive outside.
func (a AABB) DistanceToPoint(point mgl32.Vec3) float32 {
	debug.Box(a.Min, a.Max)

	// Squares are summed in float64: a float32 offset below ~1e-19 would
	// square to zero.
	d := point.Sub(a.ClosestPoint(point))
	dx, dy, dz := float64(d.X()), float64(d.Y()), float64(d.Z())

	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// Center returns the middle of the box
func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Size returns the full extent of the box on each axis
func (a AABB) Size() mgl32.Vec3 {
	return a.Max.Sub(a.Min)
}

// IsValid reports whether Min <= Max on every axis. NaN bounds are invalid.
func (a AABB) IsValid() bool {
	return a.Min.X() <= a.Max.X() && a.Min.Y() <= a.Max.Y() && a.Min.Z() <= a.Max.Z()
}
