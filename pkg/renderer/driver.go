package renderer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-minimal-raytracer/pkg/core"
)

// Scene supplies the hittables for a render pass
type Scene interface {
	Hittables() []core.Hittable
}

// Sink consumes finished frames
type Sink interface {
	Present(buf *PixelBuffer) error
}

// DebugInfo describes the current scene mapping
type DebugInfo struct {
	SessionID   string    `json:"sessionId"`
	Frame       int       `json:"frame"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	FieldOfView float64   `json:"fieldOfView"`
	LowerLeft   core.Vec3 `json:"lowerLeft"`
	PlaneWidth  float64   `json:"planeWidth"`
	PlaneHeight float64   `json:"planeHeight"`
}

// Lines formats the mapping for on-screen debug text
func (d DebugInfo) Lines() []string {
	ll := d.LowerLeft
	return []string{
		fmt.Sprintf("frame: %d (%dx%d, fov %.2f)", d.Frame, d.Width, d.Height, d.FieldOfView),
		fmt.Sprintf("lower left: (%.3f, %.3f, %.3f)", ll.X, ll.Y, ll.Z),
		fmt.Sprintf("scene width: %.4f", d.PlaneWidth),
		fmt.Sprintf("scene height: %.4f", d.PlaneHeight),
	}
}

// FrameDriver runs one frame at a time: reconfigure, clear, render, present.
// It is not safe for concurrent use and the host must not mutate the scene
// while RenderFrame runs.
type FrameDriver struct {
	id        string
	camera    Camera
	scene     Scene
	sink      Sink
	mapper    *SceneMapper
	buffer    *PixelBuffer
	raytracer *Raytracer
	logger    core.Logger
	frame     int
}

// NewFrameDriver creates a frame driver. sink and logger may be nil.
func NewFrameDriver(camera Camera, scene Scene, sink Sink, config RenderConfig, logger core.Logger) *FrameDriver {
	id := uuid.New().String()
	if logger == nil {
		logger = nopLogger{}
	}

	return &FrameDriver{
		id:        id,
		camera:    camera,
		scene:     scene,
		sink:      sink,
		mapper:    NewSceneMapper(),
		buffer:    &PixelBuffer{},
		raytracer: NewRaytracer(config),
		logger:    &prefixLogger{prefix: "[" + id[:8] + "] ", next: logger},
	}
}

// ID returns the session id used in log lines
func (d *FrameDriver) ID() string {
	return d.id
}

// Frame returns the number of frames rendered so far
func (d *FrameDriver) Frame() int {
	return d.frame
}

// Buffer returns the pixel buffer. It is reused across frames of the same size.
func (d *FrameDriver) Buffer() *PixelBuffer {
	return d.buffer
}

// Mapper returns the scene mapper
func (d *FrameDriver) Mapper() *SceneMapper {
	return d.mapper
}

// Raytracer returns the pixel renderer
func (d *FrameDriver) Raytracer() *Raytracer {
	return d.raytracer
}

// SetSink replaces the display sink
func (d *FrameDriver) SetSink(sink Sink) {
	d.sink = sink
}

// SetRenderConfig updates the render configuration for subsequent frames
func (d *FrameDriver) SetRenderConfig(config RenderConfig) {
	d.raytracer.SetRenderConfig(config)
}

// DebugInfo returns the current mapping
func (d *FrameDriver) DebugInfo() DebugInfo {
	plane := d.mapper.Plane()
	geom := d.mapper.Geometry()
	return DebugInfo{
		SessionID:   d.id,
		Frame:       d.frame,
		Width:       geom.PixelWidth,
		Height:      geom.PixelHeight,
		FieldOfView: geom.FieldOfView,
		LowerLeft:   plane.LowerLeft,
		PlaneWidth:  plane.Width,
		PlaneHeight: plane.Height,
	}
}

// Clear resets the buffer to the clear color, or to the debug gradient when enabled
func (d *FrameDriver) Clear() {
	config := d.raytracer.RenderConfig()
	if config.DebugGradientClear {
		d.buffer.FillDebugGradient()
		return
	}
	d.buffer.Fill(config.ClearColor)
}

// reconfigure remaps the scene and resizes and clears the buffer when the
// camera geometry changed. Otherwise the buffer is left untouched.
func (d *FrameDriver) reconfigure(geom CameraGeometry) bool {
	if !d.mapper.Update(geom, d.camera) {
		return false
	}

	d.buffer.Resize(geom.PixelWidth, geom.PixelHeight)
	d.Clear()

	plane := d.mapper.Plane()
	d.logger.Printf("reconfigured %dx%d fov=%.2f lowerLeft=(%.3f, %.3f, %.3f) plane=%.4fx%.4f\n",
		geom.PixelWidth, geom.PixelHeight, geom.FieldOfView,
		plane.LowerLeft.X, plane.LowerLeft.Y, plane.LowerLeft.Z, plane.Width, plane.Height)
	return true
}

// RenderFrame renders one frame and hands it to the sink.
// The only error source is the sink.
func (d *FrameDriver) RenderFrame() (FrameStats, error) {
	startTime := time.Now()
	d.frame++

	reconfigured := d.reconfigure(d.camera.Geometry())

	stats := d.raytracer.Render(d.buffer, d.mapper.Plane(), d.scene.Hittables())
	stats.Frame = d.frame
	stats.Reconfigured = reconfigured
	stats.Duration = time.Since(startTime)

	d.logger.Printf("%s, luminance %.3f\n", stats, AverageLuminance(d.buffer))

	if d.sink != nil {
		if err := d.sink.Present(d.buffer); err != nil {
			return stats, fmt.Errorf("present frame %d: %w", d.frame, err)
		}
	}

	return stats, nil
}
