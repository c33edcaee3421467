// Package display shows frames in a desktop window and drives the render loop.
package display

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/df07/go-minimal-raytracer/pkg/renderer"
)

// Resizer is a camera whose pixel size follows the window
type Resizer interface {
	SetSize(width, height int)
}

// Stepper advances scene animation between frames
type Stepper interface {
	Step(frame int)
}

// WindowConfig contains window configuration
type WindowConfig struct {
	Title    string
	Width    int           // Initial render width in pixels
	Height   int           // Initial render height in pixels
	Scale    int           // Window pixels per rendered pixel
	Interval time.Duration // Minimum time between rendered frames
	Debug    bool          // Print the scene mapping over the frame
}

// DefaultWindowConfig returns sensible default values
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:    "Minimal Raytracer",
		Width:    320,
		Height:   180,
		Scale:    2,
		Interval: time.Second,
		Debug:    false,
	}
}

// Window is an ebiten game that renders a frame every Interval and shows the
// latest finished frame. It is the driver's sink.
type Window struct {
	config     WindowConfig
	driver     *renderer.FrameDriver
	camera     Resizer
	scene      Stepper
	img        *ebiten.Image
	pix        []byte
	width      int
	height     int
	dirty      bool
	lastRender time.Time
}

// NewWindow creates a window and installs it as the driver's sink.
// camera and scene may be nil when they do not resize or animate.
func NewWindow(driver *renderer.FrameDriver, camera Resizer, scene Stepper, config WindowConfig) *Window {
	if config.Scale < 1 {
		config.Scale = 1
	}
	w := &Window{
		config: config,
		driver: driver,
		camera: camera,
		scene:  scene,
	}
	driver.SetSink(w)
	return w
}

// Run opens the window and blocks until it closes
func (w *Window) Run() error {
	ebiten.SetWindowTitle(w.config.Title)
	ebiten.SetWindowSize(w.config.Width*w.config.Scale, w.config.Height*w.config.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(w)
}

// Present implements renderer.Sink by staging the frame for the next Draw
func (w *Window) Present(buf *renderer.PixelBuffer) error {
	size := buf.Width * buf.Height * 4
	if len(w.pix) != size {
		w.pix = make([]byte, size)
	}
	buf.CopyTo(w.pix)
	w.width, w.height = buf.Width, buf.Height
	w.dirty = true
	return nil
}

// Update renders a new frame once the interval has elapsed
func (w *Window) Update() error {
	if !w.lastRender.IsZero() && time.Since(w.lastRender) < w.config.Interval {
		return nil
	}
	w.lastRender = time.Now()

	if w.scene != nil {
		w.scene.Step(w.driver.Frame() + 1)
	}
	_, err := w.driver.RenderFrame()
	return err
}

// Draw uploads the staged frame and blits it to the screen
func (w *Window) Draw(screen *ebiten.Image) {
	if w.width == 0 || w.height == 0 {
		return
	}

	if w.img == nil || w.img.Bounds().Dx() != w.width || w.img.Bounds().Dy() != w.height {
		if w.img != nil {
			w.img.Deallocate()
		}
		w.img = ebiten.NewImage(w.width, w.height)
		w.dirty = true
	}
	if w.dirty {
		w.img.WritePixels(w.pix)
		w.dirty = false
	}

	screen.DrawImage(w.img, nil)

	if w.config.Debug {
		ebitenutil.DebugPrint(screen, strings.Join(w.driver.DebugInfo().Lines(), "\n"))
	}
}

// Layout maps the window size to the render size and resizes the camera to match
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	width := max(outsideWidth/w.config.Scale, 1)
	height := max(outsideHeight/w.config.Scale, 1)
	if w.camera != nil {
		w.camera.SetSize(width, height)
	}
	return width, height
}
