package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit := sphere.Hit(ray, 0.001, 1000.0, &core.HitRecord{})
	if hit.IsValid() {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
	if hit != core.EmptyHit {
		t.Errorf("Expected empty sentinel, got %+v", hit)
	}
}

func TestSphere_Hit_TowardCenter(t *testing.T) {
	tests := []struct {
		name   string
		origin core.Vec3
		center core.Vec3
		radius float64
	}{
		{"along +z", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 5), 1.0},
		{"along -z", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -3), 0.5},
		{"oblique", core.NewVec3(1, 2, 3), core.NewVec3(4, -2, 10), 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius)
			direction := tt.center.Subtract(tt.origin).Normalize()
			hit := sphere.Hit(core.NewRay(tt.origin, direction), 0, 0, &core.HitRecord{})

			if !hit.IsValid() {
				t.Fatalf("Expected hit, got t=%f", hit.T)
			}

			distance := tt.center.Subtract(tt.origin).Length()
			if math.Abs(hit.T-(distance-tt.radius)) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", distance-tt.radius, hit.T)
			}

			// The point is center minus the hit position, so its length is the radius
			if math.Abs(hit.Point.Length()-tt.radius) > 1e-9 {
				t.Errorf("Expected |point|=%f, got %f", tt.radius, hit.Point.Length())
			}
			if hit.Point != hit.Normal {
				t.Errorf("Expected point and normal to match, got %v and %v", hit.Point, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1))

	hit := sphere.Hit(ray, 0, 0, &core.HitRecord{})
	if !hit.IsValid() {
		t.Fatal("Tangent ray should produce a single valid root")
	}
	if hit.T != 5 {
		t.Errorf("Expected t=5, got t=%f", hit.T)
	}
	expected := core.NewVec3(0, -1, 0)
	if hit.Normal != expected {
		t.Errorf("Expected normal %v, got %v", expected, hit.Normal)
	}
}

func TestSphere_Hit_IgnoresInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 10), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	intervals := []struct {
		name       string
		tMin, tMax float64
	}{
		{"zero interval", 0, 0},
		{"interval before hit", 0.001, 1},
		{"interval after hit", 50, 100},
	}

	for _, iv := range intervals {
		t.Run(iv.name, func(t *testing.T) {
			hit := sphere.Hit(ray, iv.tMin, iv.tMax, &core.HitRecord{})
			if !hit.IsValid() || hit.T != 9 {
				t.Errorf("Expected near root t=9 regardless of interval, got t=%f", hit.T)
			}
		})
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	// The near root lies behind the origin, so an inside ray reports no valid hit
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit := sphere.Hit(ray, 0, 0, &core.HitRecord{})
	if hit.T != -1 {
		t.Errorf("Expected near root t=-1, got t=%f", hit.T)
	}
	if hit.IsValid() {
		t.Error("Expected the near root behind the origin to be invalid")
	}
}

func TestSphere_Hit_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit := sphere.Hit(ray, 0, 0, &core.HitRecord{})
	if hit.IsValid() {
		t.Errorf("Sphere behind the ray should not be a valid hit, got t=%f", hit.T)
	}
}

func TestSphere_Hit_DegenerateDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	hit := sphere.Hit(ray, 0, 0, &core.HitRecord{})
	if !math.IsNaN(hit.T) {
		t.Errorf("Expected NaN parameter for zero direction, got %f", hit.T)
	}
	if hit.IsValid() {
		t.Error("Degenerate ray must never hit")
	}
}

func TestSphere_Hit_NonUnitDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 2))

	hit := sphere.Hit(ray, 0, 0, &core.HitRecord{})
	if math.Abs(hit.T-2) > 1e-12 {
		t.Errorf("Expected t=2 for doubled direction, got %f", hit.T)
	}
}

func TestSphere_MoveTo(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0)
	sphere.MoveTo(core.NewVec3(10, 0, 5))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if hit := sphere.Hit(ray, 0, 0, &core.HitRecord{}); hit.IsValid() {
		t.Error("Moved sphere should no longer be hit")
	}
}
