package renderer

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/geometry"
)

// MockScene implements Scene for testing
type MockScene struct {
	hittables []core.Hittable
}

func (m *MockScene) Hittables() []core.Hittable { return m.hittables }

// MockSink records presented frames
type MockSink struct {
	frames [][]color.RGBA
	err    error
}

func (m *MockSink) Present(buf *PixelBuffer) error {
	frame := make([]color.RGBA, len(buf.Pix))
	copy(frame, buf.Pix)
	m.frames = append(m.frames, frame)
	return m.err
}

// recordingLogger captures log lines
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func newTestDriver(geom CameraGeometry, config RenderConfig) (*FrameDriver, *MockCamera, *MockSink) {
	camera := &MockCamera{geom: geom}
	scene := &MockScene{hittables: []core.Hittable{geometry.NewSphere(core.NewVec3(0, 0, 2), 1)}}
	sink := &MockSink{}
	return NewFrameDriver(camera, scene, sink, config, nil), camera, sink
}

func TestFrameDriver_RenderFrame(t *testing.T) {
	driver, _, sink := newTestDriver(CameraGeometry{PixelWidth: 8, PixelHeight: 4, FieldOfView: 1}, DefaultRenderConfig())

	stats, err := driver.RenderFrame()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !stats.Reconfigured {
		t.Error("First frame should reconfigure")
	}
	if stats.Frame != 1 || stats.Pixels != 32 {
		t.Errorf("Expected frame 1 with 32 pixels, got %+v", stats)
	}
	if len(sink.frames) != 1 || len(sink.frames[0]) != 32 {
		t.Fatalf("Expected one 32 pixel frame presented, got %d frames", len(sink.frames))
	}

	first := &driver.Buffer().Pix[0]
	stats, err = driver.RenderFrame()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.Reconfigured {
		t.Error("Unchanged geometry should not reconfigure")
	}
	if &driver.Buffer().Pix[0] != first {
		t.Error("Buffer should be reused when the size is stable")
	}
	if driver.Mapper().Recomputations() != 1 {
		t.Errorf("Expected 1 recomputation, got %d", driver.Mapper().Recomputations())
	}
	if driver.Frame() != 2 {
		t.Errorf("Expected frame count 2, got %d", driver.Frame())
	}
}

func TestFrameDriver_ReconfiguresOnResize(t *testing.T) {
	driver, camera, _ := newTestDriver(CameraGeometry{PixelWidth: 4, PixelHeight: 4, FieldOfView: 1}, DefaultRenderConfig())
	if _, err := driver.RenderFrame(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	camera.geom = CameraGeometry{PixelWidth: 6, PixelHeight: 2, FieldOfView: 1}
	stats, err := driver.RenderFrame()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !stats.Reconfigured {
		t.Error("Resize should reconfigure")
	}
	buf := driver.Buffer()
	if buf.Width != 6 || buf.Height != 2 || len(buf.Pix) != 12 {
		t.Errorf("Expected 6x2 buffer, got %dx%d", buf.Width, buf.Height)
	}
}

func TestFrameDriver_ClearOnlyOnReconfigure(t *testing.T) {
	geom := CameraGeometry{PixelWidth: 3, PixelHeight: 3, FieldOfView: 1}
	driver, _, _ := newTestDriver(geom, DefaultRenderConfig())

	if !driver.reconfigure(geom) {
		t.Fatal("First reconfigure should apply")
	}
	white := color.RGBA{255, 255, 255, 255}
	if got := driver.Buffer().At(1, 1); got != white {
		t.Errorf("Expected clear color %v, got %v", white, got)
	}

	marker := color.RGBA{1, 2, 3, 255}
	driver.Buffer().Set(1, 1, marker)
	if driver.reconfigure(geom) {
		t.Error("Unchanged geometry should skip reconfiguration")
	}
	if got := driver.Buffer().At(1, 1); got != marker {
		t.Errorf("Buffer contents should be preserved without a clear, got %v", got)
	}
}

func TestFrameDriver_DebugGradientClear(t *testing.T) {
	config := DefaultRenderConfig()
	config.DebugGradientClear = true
	geom := CameraGeometry{PixelWidth: 4, PixelHeight: 2, FieldOfView: 1}
	driver, _, _ := newTestDriver(geom, config)

	driver.reconfigure(geom)

	expected := NewPixelBuffer(4, 2)
	expected.FillDebugGradient()
	for i := range expected.Pix {
		if driver.Buffer().Pix[i] != expected.Pix[i] {
			t.Errorf("Pixel %d: expected %v, got %v", i, expected.Pix[i], driver.Buffer().Pix[i])
		}
	}
}

func TestFrameDriver_SinkError(t *testing.T) {
	driver, _, sink := newTestDriver(CameraGeometry{PixelWidth: 2, PixelHeight: 2, FieldOfView: 1}, DefaultRenderConfig())
	sinkErr := errors.New("display gone")
	sink.err = sinkErr

	_, err := driver.RenderFrame()
	if !errors.Is(err, sinkErr) {
		t.Errorf("Expected wrapped sink error, got %v", err)
	}
}

func TestFrameDriver_NilSink(t *testing.T) {
	camera := &MockCamera{geom: CameraGeometry{PixelWidth: 2, PixelHeight: 2, FieldOfView: 1}}
	logger := &recordingLogger{}
	driver := NewFrameDriver(camera, &MockScene{}, nil, DefaultRenderConfig(), logger)

	if _, err := driver.RenderFrame(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(logger.lines) != 2 {
		t.Fatalf("Expected reconfigure and frame log lines, got %v", logger.lines)
	}
	prefix := "[" + driver.ID()[:8] + "] "
	for _, line := range logger.lines {
		if !strings.HasPrefix(line, prefix) {
			t.Errorf("Expected log line to start with %q, got %q", prefix, line)
		}
	}
}

func TestFrameDriver_DebugInfo(t *testing.T) {
	geom := CameraGeometry{PixelWidth: 10, PixelHeight: 10, FieldOfView: 1}
	driver, _, _ := newTestDriver(geom, DefaultRenderConfig())
	if _, err := driver.RenderFrame(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info := driver.DebugInfo()
	if info.Frame != 1 || info.Width != 10 || info.Height != 10 {
		t.Errorf("Unexpected debug info %+v", info)
	}
	if info.LowerLeft != core.NewVec3(-1, -1, 1) || info.PlaneWidth != 2 || info.PlaneHeight != 2 {
		t.Errorf("Unexpected mapping in debug info %+v", info)
	}
	if info.SessionID != driver.ID() {
		t.Errorf("Expected session id %s, got %s", driver.ID(), info.SessionID)
	}

	lines := info.Lines()
	if len(lines) != 4 || !strings.Contains(lines[1], "(-1.000, -1.000, 1.000)") {
		t.Errorf("Unexpected debug lines %v", lines)
	}
}
