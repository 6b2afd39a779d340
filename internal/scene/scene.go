// Package scene decodes YAML scene files describing boxes, rays and points
// for the diagnostic CLI.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/akmonengine/slab/actor"
	"github.com/akmonengine/slab/raycast"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// directionTolerance is how far from unit length a ray direction may be
const directionTolerance = 1e-3

var (
	ErrNegativeExtent   = errors.New("negative half extent")
	ErrInvalidDirection = errors.New("direction is not normalized")
	ErrNegativeDistance = errors.New("negative max distance")
	ErrDuplicateName    = errors.New("duplicate box name")
	ErrNotFinite        = errors.New("value is not finite")
)

// Vec3 is a YAML sequence of three numbers
type Vec3 [3]float32

func (v Vec3) Vec() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

func (v Vec3) finite() bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// BoxSpec describes one box collider
type BoxSpec struct {
	Name        string `yaml:"name"`
	Position    Vec3   `yaml:"position"`
	HalfExtents Vec3   `yaml:"half_extents"`
	Offset      Vec3   `yaml:"offset"`
}

// RaySpec describes one ray. Normalize rescales Direction to unit length
// before validation.
type RaySpec struct {
	Name        string  `yaml:"name"`
	Origin      Vec3    `yaml:"origin"`
	Direction   Vec3    `yaml:"direction"`
	MaxDistance float32 `yaml:"max_distance"`
	Normalize   bool    `yaml:"normalize"`
}

// PointSpec describes a probe point
type PointSpec struct {
	Name     string `yaml:"name"`
	Position Vec3   `yaml:"position"`
}

// Scene is the root of a scene file
type Scene struct {
	Boxes  []BoxSpec   `yaml:"boxes"`
	Rays   []RaySpec   `yaml:"rays"`
	Points []PointSpec `yaml:"points"`
}

// Load reads and parses the scene file at path
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}

	return s, nil
}

// Parse decodes and validates a scene document
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the preconditions the geometry core leaves to its callers.
// Unnamed entries are named after their index.
func (s *Scene) Validate() error {
	names := make(map[string]struct{}, len(s.Boxes))
	for i := range s.Boxes {
		b := &s.Boxes[i]
		if b.Name == "" {
			b.Name = fmt.Sprintf("box%d", i)
		}
		if _, ok := names[b.Name]; ok {
			return fmt.Errorf("box %q: %w", b.Name, ErrDuplicateName)
		}
		names[b.Name] = struct{}{}

		if !b.Position.finite() || !b.HalfExtents.finite() || !b.Offset.finite() {
			return fmt.Errorf("box %q: %w", b.Name, ErrNotFinite)
		}
		for _, h := range b.HalfExtents {
			if h < 0 {
				return fmt.Errorf("box %q: %w %v", b.Name, ErrNegativeExtent, b.HalfExtents)
			}
		}
	}

	for i := range s.Rays {
		r := &s.Rays[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("ray%d", i)
		}
		if !r.Origin.finite() || !r.Direction.finite() || !finite(r.MaxDistance) {
			return fmt.Errorf("ray %q: %w", r.Name, ErrNotFinite)
		}
		if r.MaxDistance < 0 {
			return fmt.Errorf("ray %q: %w %v", r.Name, ErrNegativeDistance, r.MaxDistance)
		}

		dir := r.Direction.Vec()
		if r.Normalize && dir.Len() > 0 {
			r.Direction = Vec3(dir.Normalize())
			dir = r.Direction.Vec()
		}
		if !mgl32.FloatEqualThreshold(dir.Len(), 1, directionTolerance) {
			return fmt.Errorf("ray %q: %w (length %v)", r.Name, ErrInvalidDirection, dir.Len())
		}
	}

	for i := range s.Points {
		p := &s.Points[i]
		if p.Name == "" {
			p.Name = fmt.Sprintf("point%d", i)
		}
		if !p.Position.finite() {
			return fmt.Errorf("point %q: %w", p.Name, ErrNotFinite)
		}
	}

	return nil
}

// Shapes builds one box collider per BoxSpec, AABBs already computed
func (s *Scene) Shapes() []actor.ShapeInterface {
	shapes := make([]actor.ShapeInterface, len(s.Boxes))
	for i, b := range s.Boxes {
		box := &actor.Box{HalfExtents: b.HalfExtents.Vec(), Offset: b.Offset.Vec()}
		box.ComputeAABB(actor.Transform{Position: b.Position.Vec()})
		shapes[i] = box
	}

	return shapes
}

// RayList converts the ray specs
func (s *Scene) RayList() []raycast.Ray {
	rays := make([]raycast.Ray, len(s.Rays))
	for i, r := range s.Rays {
		rays[i] = raycast.Ray{
			Origin:      r.Origin.Vec(),
			Direction:   r.Direction.Vec(),
			MaxDistance: r.MaxDistance,
		}
	}

	return rays
}
