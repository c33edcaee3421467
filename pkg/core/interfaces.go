package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is anything a ray can be tested against
type Hittable interface {
	// Hit intersects the ray with the object. tMin and tMax describe the accepted
	// parameter interval; implementations may treat it as advisory.
	Hit(ray Ray, tMin, tMax float64, record *HitRecord) HitResult
}
