package core

import (
	"math"
	"testing"
)

func TestHitResult_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		hit   HitResult
		valid bool
	}{
		{"empty sentinel", EmptyHit, false},
		{"zero parameter", NewHitResult(0, Vec3{}, Vec3{}), false},
		{"negative parameter", NewHitResult(-0.5, Vec3{}, Vec3{}), false},
		{"positive parameter", NewHitResult(0.25, Vec3{}, Vec3{}), true},
		{"NaN parameter", NewHitResult(math.NaN(), Vec3{}, Vec3{}), false},
		{"infinite parameter", NewHitResult(math.Inf(1), Vec3{}, Vec3{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hit.IsValid(); got != tt.valid {
				t.Errorf("Expected IsValid()=%t, got %t", tt.valid, got)
			}
		})
	}
}

func TestEmptyHit_Sentinel(t *testing.T) {
	if EmptyHit.T != -1 {
		t.Errorf("Expected sentinel parameter -1, got %f", EmptyHit.T)
	}
	if EmptyHit.Point != (Vec3{}) || EmptyHit.Normal != (Vec3{}) {
		t.Errorf("Expected zero point and normal, got %v %v", EmptyHit.Point, EmptyHit.Normal)
	}
}

func TestHitRecord_Reset(t *testing.T) {
	record := HitRecord{Tests: 3, Hits: 2}
	record.Reset()
	if record.Tests != 0 || record.Hits != 0 {
		t.Errorf("Expected cleared record, got %+v", record)
	}
}
