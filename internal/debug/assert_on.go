//go:build slabdebug

package debug

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Enabled reports whether precondition checks panic
const Enabled = true

// Extents panics on a negative or non-finite half extent
func Extents(halfExtent mgl32.Vec3) {
	Finite("half extent", halfExtent)
	if halfExtent.X() < 0 || halfExtent.Y() < 0 || halfExtent.Z() < 0 {
		panic(fmt.Sprintf("slab: negative half extent %v", halfExtent))
	}
}

// Box panics when min exceeds max on any axis
func Box(min, max mgl32.Vec3) {
	Finite("box min", min)
	Finite("box max", max)
	if min.X() > max.X() || min.Y() > max.Y() || min.Z() > max.Z() {
		panic(fmt.Sprintf("slab: inverted box min=%v max=%v", min, max))
	}
}

// Direction panics when a ray direction is not unit length
func Direction(direction mgl32.Vec3) {
	Finite("ray direction", direction)
	if !mgl32.FloatEqualThreshold(direction.Len(), 1, 1e-3) {
		panic(fmt.Sprintf("slab: ray direction %v is not normalized", direction))
	}
}

// Finite panics when a component is NaN or infinite
func Finite(name string, v mgl32.Vec3) {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			panic(fmt.Sprintf("slab: %s %v is not finite", name, v))
		}
	}
}
