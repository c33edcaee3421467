package core

// HitResult describes one ray-object intersection
type HitResult struct {
	T      float64 // Ray parameter at the intersection; <= 0 means no hit
	Point  Vec3
	Normal Vec3
}

// EmptyHit is the "no intersection" sentinel
var EmptyHit = HitResult{T: -1}

// NewHitResult creates a hit result
func NewHitResult(t float64, point, normal Vec3) HitResult {
	return HitResult{T: t, Point: point, Normal: normal}
}

// IsValid reports whether the result is an intersection in front of the ray origin.
// NaN parameters compare false, so degenerate rays never hit.
func (h HitResult) IsValid() bool {
	return h.T > 0
}

// HitRecord accumulates state across one intersection query chain.
// It is owned by a single pixel query and must not be shared between goroutines.
type HitRecord struct {
	Tests int // Hittables evaluated
	Hits  int // Valid results seen
}

// Reset clears the record for reuse
func (r *HitRecord) Reset() {
	*r = HitRecord{}
}
