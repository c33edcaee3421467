package scene

import (
	"math"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/geometry"
)

// NewDefaultScene creates a ground sphere with three spheres resting on it.
// The ground comes first so the spheres in front of it win under last-hit resolution.
// The small sphere orbits the center sphere as frames advance.
func NewDefaultScene() *Scene {
	s := NewScene("default", 60)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), // Ground
		geometry.NewSphere(core.NewVec3(0, 0, -1.5), 0.5),
		geometry.NewSphere(core.NewVec3(-1.1, 0, -2), 0.5),
		geometry.NewSphere(core.NewVec3(1.1, 0, -2), 0.5),
		geometry.NewSphere(core.NewVec3(0.8, -0.3, -1.5), 0.2),
	)

	s.animate = func(s *Scene, frame int) {
		angle := float64(frame) * 0.1
		center := core.NewVec3(0.8*math.Cos(angle), -0.3, -1.5+0.8*math.Sin(angle))
		_ = s.Move(4, center)
	}

	return s
}

// NewPairScene creates two overlapping spheres, listed far first then near.
// Under last-hit resolution the near sphere covers the overlap; listing them
// the other way round would let the far sphere show through.
func NewPairScene() *Scene {
	s := NewScene("pair", 60)
	s.Add(
		geometry.NewSphere(core.NewVec3(0.4, 0, -4), 1.2),
		geometry.NewSphere(core.NewVec3(-0.4, 0, -2.5), 0.7),
	)
	return s
}

// NewEmptyScene creates a scene with nothing but sky
func NewEmptyScene() *Scene {
	return NewScene("empty", 60)
}
