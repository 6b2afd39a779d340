package actor

import "github.com/go-gl/mathgl/mgl32"

// Transform represents a position in 3D space
// Axis-aligned boxes never rotate, so only the translation is kept.
type Transform struct {
	Position mgl32.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
	}
}
