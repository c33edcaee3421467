package scene

import (
	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/geometry"
)

// NewSphereGridScene creates a gridSize x gridSize wall of spheres facing the camera
func NewSphereGridScene() *Scene {
	const (
		gridSize = 10
		spacing  = 0.5
		radius   = 0.2
		depth    = -6.0
	)

	s := NewScene("spheregrid", 45)

	// Center the grid on the view axis
	offset := float64(gridSize-1) * spacing / 2
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			center := core.NewVec3(
				float64(col)*spacing-offset,
				float64(row)*spacing-offset,
				depth,
			)
			s.Add(geometry.NewSphere(center, radius))
		}
	}

	return s
}
