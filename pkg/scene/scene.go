package scene

import (
	"fmt"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// Mover is implemented by hittables that can be repositioned between frames
type Mover interface {
	MoveTo(center core.Vec3)
}

// Scene is a flat, ordered list of hittables. Enumeration order matters for
// hit resolution, so shapes keep the order they were added in.
type Scene struct {
	Name        string
	Shapes      []core.Hittable // Objects in the scene
	FieldOfView float64         // Recommended vertical field of view in degrees

	animate func(s *Scene, frame int)
}

// NewScene creates an empty scene
func NewScene(name string, fieldOfView float64) *Scene {
	return &Scene{
		Name:        name,
		Shapes:      make([]core.Hittable, 0),
		FieldOfView: fieldOfView,
	}
}

// Add appends shapes in enumeration order
func (s *Scene) Add(shapes ...core.Hittable) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hittables implements renderer.Scene
func (s *Scene) Hittables() []core.Hittable {
	return s.Shapes
}

// Move repositions shape i. It must only be called between frames.
func (s *Scene) Move(i int, center core.Vec3) error {
	if i < 0 || i >= len(s.Shapes) {
		return fmt.Errorf("shape index %d out of range [0, %d)", i, len(s.Shapes))
	}
	mover, ok := s.Shapes[i].(Mover)
	if !ok {
		return fmt.Errorf("shape %d (%T) cannot be moved", i, s.Shapes[i])
	}
	mover.MoveTo(center)
	return nil
}

// Step advances scene animation to the given frame. Scenes without
// animation ignore it.
func (s *Scene) Step(frame int) {
	if s.animate != nil {
		s.animate(s, frame)
	}
}
