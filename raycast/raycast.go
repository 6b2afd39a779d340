// Package raycast intersects rays with axis-aligned bounding boxes using the
// slab method.
//
// A box is the intersection of three slabs, each the space between two
// parallel planes. For every axis the ray enters its slab at t1 and leaves it
// at t2; the ray is inside the box on the interval [max(t1), min(t2)]. The
// running interval starts at [0, MaxDistance] and is narrowed axis by axis in
// the fixed order x, y, z. An empty interval means a miss.
//
// Normals:
//   - a ray starting outside reports the face of the axis that last raised the
//     entry bound. Corner and edge hits tie on several axes; the later axis in
//     x, y, z order wins.
//   - a ray starting inside reports the exit face, found by matching each
//     axis exit parameter against tMax within Epsilon.
//   - when neither resolves, the normal is the zero vector. This happens for a
//     ray starting inside whose exit lies past MaxDistance, or numerically
//     degenerate inputs. Callers must not treat it as a unit vector.
//
// All functions are pure and safe for concurrent use.
package raycast

import (
	"github.com/akmonengine/slab/actor"
	"github.com/akmonengine/slab/internal/debug"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the threshold below which a direction component counts as
// parallel, and the tolerance of the exit face match.
const Epsilon float32 = 1e-6

// Ray is a half line of bounded length
// Direction must be normalized by the caller.
type Ray struct {
	Origin      mgl32.Vec3
	Direction   mgl32.Vec3
	MaxDistance float32
}

// HitResult describes where a ray met a box
// Distance, Point and Normal are meaningful only when Hit is true.
type HitResult struct {
	Hit      bool
	Distance float32
	Point    mgl32.Vec3
	Normal   mgl32.Vec3
}

// Cast is RaycastBox with the ray fields
func (r Ray) Cast(box actor.AABB) HitResult {
	return RaycastBox(r.Origin, r.Direction, r.MaxDistance, box)
}

// At returns the point of the ray at parameter t
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// face identifies one side of a box: the axis and whether it is the min or
// max plane on that axis.
type face struct {
	axis  int
	isMax bool
}

// normal returns the outward unit vector of the face
func (f face) normal() mgl32.Vec3 {
	var n mgl32.Vec3
	if f.isMax {
		n[f.axis] = 1
	} else {
		n[f.axis] = -1
	}

	return n
}

// RaycastBox intersects the ray origin + direction*t, t in [0, maxDistance],
// with box. Touching a face or grazing an edge counts as a hit.
func RaycastBox(origin, direction mgl32.Vec3, maxDistance float32, box actor.AABB) HitResult {
	debug.Direction(direction)
	debug.Finite("ray origin", origin)
	debug.Box(box.Min, box.Max)

	tMin := float32(0)
	tMax := maxDistance

	var entry face
	entered := false

	for axis := 0; axis < 3; axis++ {
		if mgl32.Abs(direction[axis]) < Epsilon {
			// Parallel to the slab: either always inside it or never
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return HitResult{}
			}
			continue
		}

		t1 := (box.Min[axis] - origin[axis]) / direction[axis]
		t2 := (box.Max[axis] - origin[axis]) / direction[axis]
		isMax := false
		if t1 > t2 {
			// Travelling toward -axis: the max plane is crossed first
			t1, t2 = t2, t1
			isMax = true
		}

		// >= keeps ties on the later axis; t1 > 0 ignores slabs the origin
		// already sits in.
		if t1 > 0 && t1 >= tMin {
			tMin = t1
			entry = face{axis: axis, isMax: isMax}
			entered = true
		}
		if t2 < tMax {
			tMax = t2
		}

		if tMax < tMin {
			return HitResult{}
		}
	}

	t := tMax
	if entered {
		t = tMin
	}
	if t < 0 || t > maxDistance {
		return HitResult{}
	}

	result := HitResult{
		Hit:      true,
		Distance: t,
		Point:    origin.Add(direction.Mul(t)),
	}

	if entered {
		result.Normal = entry.normal()
	} else if tMax > 0 {
		if exit, ok := exitFace(origin, direction, tMax, box); ok {
			result.Normal = exit.normal()
		}
	}

	return result
}

// exitFace finds the first axis, in x, y, z order, whose exit plane lies at
// tMax. It fails when tMax was set by maxDistance rather than a plane.
func exitFace(origin, direction mgl32.Vec3, tMax float32, box actor.AABB) (face, bool) {
	for axis := 0; axis < 3; axis++ {
		if mgl32.Abs(direction[axis]) < Epsilon {
			continue
		}

		t1 := (box.Min[axis] - origin[axis]) / direction[axis]
		t2 := (box.Max[axis] - origin[axis]) / direction[axis]

		if mgl32.Abs(t2-tMax) < Epsilon {
			return face{axis: axis, isMax: true}, true
		}
		if mgl32.Abs(t1-tMax) < Epsilon {
			return face{axis: axis, isMax: false}, true
		}
	}

	return face{}, false
}

// Nearest returns the index of the hit with the smallest distance
// Ties keep the earliest index. ok is false when nothing was hit.
func Nearest(results []HitResult) (index int, ok bool) {
	index = -1
	for i, r := range results {
		if !r.Hit {
			continue
		}
		if index == -1 || r.Distance < results[index].Distance {
			index = i
		}
	}

	return index, index != -1
}
