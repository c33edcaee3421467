package renderer

import (
	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// planeDepth is the view-space depth of the image plane
const planeDepth = 1.0

// CameraGeometry is the camera state that drives the scene mapping.
// It doubles as the dirty-check key: any difference triggers a recomputation.
type CameraGeometry struct {
	PixelWidth  int
	PixelHeight int
	FieldOfView float64 // Vertical field of view, or orthographic size
}

// Camera is the host camera the renderer maps pixels through
type Camera interface {
	Geometry() CameraGeometry
	// ScreenToWorld maps a bottom-left origin screen position to world space.
	// screen.Z is the view-space depth.
	ScreenToWorld(screen core.Vec3) core.Vec3
}

// ImagePlane is the world-space rectangle pixels map onto
type ImagePlane struct {
	LowerLeft core.Vec3
	Width     float64
	Height    float64
}

// SceneMapper caches the image plane for the current camera geometry
type SceneMapper struct {
	plane          ImagePlane
	key            CameraGeometry
	configured     bool
	recomputations int
}

// NewSceneMapper creates an unconfigured mapper
func NewSceneMapper() *SceneMapper {
	return &SceneMapper{}
}

// Update recomputes the image plane if geom differs from the cached key
// and reports whether it did
func (m *SceneMapper) Update(geom CameraGeometry, camera Camera) bool {
	if m.configured && geom == m.key {
		return false
	}

	bl := camera.ScreenToWorld(core.NewVec3(0, 0, planeDepth))
	tr := camera.ScreenToWorld(core.NewVec3(float64(geom.PixelWidth), float64(geom.PixelHeight), planeDepth))

	m.plane = ImagePlane{
		LowerLeft: bl,
		Width:     tr.X - bl.X,
		Height:    tr.Y - bl.Y,
	}
	m.key = geom
	m.configured = true
	m.recomputations++
	return true
}

// Plane returns the current image plane
func (m *SceneMapper) Plane() ImagePlane {
	return m.plane
}

// Geometry returns the cached camera geometry
func (m *SceneMapper) Geometry() CameraGeometry {
	return m.key
}

// Recomputations returns how many times the plane has been derived
func (m *SceneMapper) Recomputations() int {
	return m.recomputations
}
