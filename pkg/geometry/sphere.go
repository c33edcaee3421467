package geometry

import (
	"math"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// Hit tests if a ray intersects with the sphere.
//
// Only the near root is ever returned and the [tMin, tMax] interval is not
// applied, so rays starting inside the sphere report the hit behind them.
// The returned point and normal are both center - ray.At(t).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, record *core.HitRecord) core.HitResult {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return core.EmptyHit
	}

	// a == 0 divides by zero here; the resulting NaN never validates
	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	point := s.Center.Subtract(ray.At(t))

	return core.NewHitResult(t, point, point)
}

// MoveTo repositions the sphere. Callers must not do this during a render pass.
func (s *Sphere) MoveTo(center core.Vec3) {
	s.Center = center
}
