//go:build !slabdebug

package debug

import "github.com/go-gl/mathgl/mgl32"

const Enabled = false

func Extents(mgl32.Vec3)        {}
func Box(_, _ mgl32.Vec3)       {}
func Direction(mgl32.Vec3)      {}
func Finite(string, mgl32.Vec3) {}
