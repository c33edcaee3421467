// Package host provides camera collaborators that map screen positions into
// world space the way an engine camera does.
package host

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/renderer"
)

// CameraConfig contains the pose and clip planes shared by both camera kinds
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	Target core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	Near   float64   // Near clip plane distance
	Far    float64   // Far clip plane distance
}

// DefaultCameraConfig looks down -Z from the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:    core.NewVec3(0, 0, 0),
		Target: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		Near:   0.1,
		Far:    1000,
	}
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

var nanVec3 = core.NewVec3(math.NaN(), math.NaN(), math.NaN())

// screenToWorld unprojects a bottom-left origin screen position and walks
// the resulting ray until it reaches view depth screen.Z along the camera's
// forward axis. Singular matrices produce a NaN vector.
func screenToWorld(screen core.Vec3, config CameraConfig, projection mgl64.Mat4, width, height int) core.Vec3 {
	view := mgl64.LookAtV(toMgl(config.Eye), toMgl(config.Target), toMgl(config.Up))

	nearPoint, err := mgl64.UnProject(mgl64.Vec3{screen.X, screen.Y, 0}, view, projection, 0, 0, width, height)
	if err != nil {
		return nanVec3
	}
	farPoint, err := mgl64.UnProject(mgl64.Vec3{screen.X, screen.Y, 1}, view, projection, 0, 0, width, height)
	if err != nil {
		return nanVec3
	}

	eye := toMgl(config.Eye)
	forward := toMgl(config.Target).Sub(eye).Normalize()
	direction := farPoint.Sub(nearPoint)

	// Parameter where the ray reaches the requested depth in front of the eye
	s := (screen.Z - nearPoint.Sub(eye).Dot(forward)) / direction.Dot(forward)
	return fromMgl(nearPoint.Add(direction.Mul(s)))
}

// PerspectiveCamera is a pinhole camera with a vertical field of view in degrees
type PerspectiveCamera struct {
	Width       int
	Height      int
	FieldOfView float64
	Config      CameraConfig
}

// NewPerspectiveCamera creates a perspective camera with the default pose
func NewPerspectiveCamera(width, height int, fieldOfView float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Width:       width,
		Height:      height,
		FieldOfView: fieldOfView,
		Config:      DefaultCameraConfig(),
	}
}

// Geometry implements renderer.Camera
func (c *PerspectiveCamera) Geometry() renderer.CameraGeometry {
	return renderer.CameraGeometry{PixelWidth: c.Width, PixelHeight: c.Height, FieldOfView: c.FieldOfView}
}

// Projection returns the perspective projection matrix
func (c *PerspectiveCamera) Projection() mgl64.Mat4 {
	aspect := float64(c.Width) / float64(c.Height)
	return mgl64.Perspective(mgl64.DegToRad(c.FieldOfView), aspect, c.Config.Near, c.Config.Far)
}

// ScreenToWorld implements renderer.Camera
func (c *PerspectiveCamera) ScreenToWorld(screen core.Vec3) core.Vec3 {
	return screenToWorld(screen, c.Config, c.Projection(), c.Width, c.Height)
}

// SetSize updates the pixel dimensions
func (c *PerspectiveCamera) SetSize(width, height int) {
	c.Width, c.Height = width, height
}

// OrthographicCamera is a parallel projection camera. Size is half the
// visible height in world units.
type OrthographicCamera struct {
	Width  int
	Height int
	Size   float64
	Config CameraConfig
}

// NewOrthographicCamera creates an orthographic camera with the default pose
func NewOrthographicCamera(width, height int, size float64) *OrthographicCamera {
	return &OrthographicCamera{
		Width:  width,
		Height: height,
		Size:   size,
		Config: DefaultCameraConfig(),
	}
}

// Geometry implements renderer.Camera. The orthographic size stands in for the field of view.
func (c *OrthographicCamera) Geometry() renderer.CameraGeometry {
	return renderer.CameraGeometry{PixelWidth: c.Width, PixelHeight: c.Height, FieldOfView: c.Size}
}

// Projection returns the orthographic projection matrix
func (c *OrthographicCamera) Projection() mgl64.Mat4 {
	aspect := float64(c.Width) / float64(c.Height)
	halfWidth := c.Size * aspect
	return mgl64.Ortho(-halfWidth, halfWidth, -c.Size, c.Size, c.Config.Near, c.Config.Far)
}

// ScreenToWorld implements renderer.Camera
func (c *OrthographicCamera) ScreenToWorld(screen core.Vec3) core.Vec3 {
	return screenToWorld(screen, c.Config, c.Projection(), c.Width, c.Height)
}

// SetSize updates the pixel dimensions
func (c *OrthographicCamera) SetSize(width, height int) {
	c.Width, c.Height = width, height
}
