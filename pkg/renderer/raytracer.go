package renderer

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// Sky gradient endpoints in 0..255 channel space
var (
	colorWhite   = core.NewVec3(255, 255, 255)
	colorSkyBlue = core.NewVec3(127, 200, 255)
)

// Sampler is a source of uniform random numbers in [0, 1)
type Sampler interface {
	Float64() float64
}

// Raytracer resolves pixel colors against a flat list of hittables
type Raytracer struct {
	config RenderConfig
	random Sampler // Shared jitter stream, reused across pixels and frames
	passes int
}

// NewRaytracer creates a new raytracer seeded from config.Seed
func NewRaytracer(config RenderConfig) *Raytracer {
	return &Raytracer{
		config: config,
		random: rand.New(rand.NewSource(config.Seed)),
	}
}

// SetRenderConfig updates the rendering configuration. The random stream is kept.
func (rt *Raytracer) SetRenderConfig(config RenderConfig) {
	rt.config = config
}

// RenderConfig returns the current configuration
func (rt *Raytracer) RenderConfig() RenderConfig {
	return rt.config
}

// SetSampler replaces the shared jitter stream
func (rt *Raytracer) SetSampler(random Sampler) {
	rt.random = random
}

// hitWorld tests every hittable and resolves the result with the configured policy
func (rt *Raytracer) hitWorld(ray core.Ray, hittables []core.Hittable, record *core.HitRecord) core.HitResult {
	result := core.EmptyHit

	for _, h := range hittables {
		hit := h.Hit(ray, 0, math.Inf(1), record)
		record.Tests++
		if !hit.IsValid() {
			continue
		}
		record.Hits++

		if rt.config.HitPolicy == NearestHitWins && result.IsValid() && hit.T >= result.T {
			continue
		}
		result = hit
	}

	return result
}

// skyColor interpolates from white to sky blue along the ray's height on the image plane.
// The interpolation parameter is not clamped.
func skyColor(ray core.Ray, plane ImagePlane) core.Vec3 {
	t := (ray.Direction.Y + plane.Height*0.5) / plane.Height
	return colorWhite.Add(colorSkyBlue.Subtract(colorWhite).Multiply(t))
}

// normalColor maps |normal| onto 0..255 per channel
func normalColor(hit core.HitResult) core.Vec3 {
	n := hit.Normal.Abs().Multiply(255)
	return core.NewVec3(min(n.X, 255), min(n.Y, 255), min(n.Z, 255))
}

// RayColor returns the unquantized 0..255 color seen along a ray
func (rt *Raytracer) RayColor(ray core.Ray, hittables []core.Hittable, plane ImagePlane, record *core.HitRecord) core.Vec3 {
	hit := rt.hitWorld(ray, hittables, record)
	if hit.IsValid() {
		return normalColor(hit)
	}
	return skyColor(ray, plane)
}

// primaryRay builds the ray through normalized plane coordinates (u, v).
// Rays always start at the world origin.
func primaryRay(plane ImagePlane, u, v float64) core.Ray {
	direction := core.NewVec3(
		plane.LowerLeft.X+u*plane.Width,
		plane.LowerLeft.Y+v*plane.Height,
		plane.LowerLeft.Z,
	)
	return core.NewRay(core.Vec3{}, direction)
}

// vec3ToColor converts a 0..255 color to RGBA with clamping
func vec3ToColor(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

// RenderPixel computes the color of pixel (x, y) in a width x height image
func (rt *Raytracer) RenderPixel(x, y, width, height int, plane ImagePlane, hittables []core.Hittable, random Sampler, record *core.HitRecord) color.RGBA {
	if !rt.config.AntiAliasing {
		u := float64(x) / float64(width)
		v := float64(y) / float64(height)
		return vec3ToColor(rt.RayColor(primaryRay(plane, u, v), hittables, plane, record))
	}

	samples := rt.config.samples()
	colorAccum := core.Vec3{}
	for sample := 0; sample < samples; sample++ {
		// Jitter inside the pixel footprint
		u := (float64(x) + random.Float64()) / float64(width)
		v := (float64(y) + random.Float64()) / float64(height)
		colorAccum = colorAccum.Add(rt.RayColor(primaryRay(plane, u, v), hittables, plane, record))
	}

	return vec3ToColor(colorAccum.Multiply(1.0 / float64(samples)))
}

// renderRow renders one row of buf and accumulates its statistics
func (rt *Raytracer) renderRow(buf *PixelBuffer, y int, plane ImagePlane, hittables []core.Hittable, random Sampler, stats *FrameStats) {
	var record core.HitRecord
	for x := 0; x < buf.Width; x++ {
		buf.Pix[y*buf.Width+x] = rt.RenderPixel(x, y, buf.Width, buf.Height, plane, hittables, random, &record)
	}
	stats.Pixels += buf.Width
	stats.Samples += buf.Width * rt.config.samples()
	stats.RaysTested += record.Tests
	stats.Hits += record.Hits
}

// Render fills every pixel of buf. Hittables must not change while it runs.
func (rt *Raytracer) Render(buf *PixelBuffer, plane ImagePlane, hittables []core.Hittable) FrameStats {
	rt.passes++

	if rt.config.NumWorkers > 1 {
		pool := NewWorkerPool(rt, rt.config.NumWorkers)
		return pool.Render(buf, plane, hittables, rt.passes)
	}

	var stats FrameStats
	for y := 0; y < buf.Height; y++ {
		rt.renderRow(buf, y, plane, hittables, rt.random, &stats)
	}
	return stats
}
