package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/display"
	"github.com/df07/go-minimal-raytracer/pkg/host"
	"github.com/df07/go-minimal-raytracer/pkg/renderer"
	"github.com/df07/go-minimal-raytracer/pkg/scene"
	"github.com/df07/go-minimal-raytracer/pkg/snapshot"
)

// Config holds the parsed command line
type Config struct {
	SceneType   string
	Width       int
	Height      int
	FieldOfView float64
	Render      renderer.RenderConfig
	Frames      int
	OutputDir   string
	Format      snapshot.Format
	Scale       int
	Debug       bool
	Window      bool
	Interval    time.Duration
}

func main() {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	config, help, err := parseFlags(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	// Show help if requested
	if help {
		showHelp(fs)
		return
	}

	fmt.Println("Starting Minimal Raytracer...")

	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fov := config.FieldOfView
	if fov <= 0 {
		fov = selectedScene.FieldOfView
	}
	camera := host.NewPerspectiveCamera(config.Width, config.Height, fov)
	logger := renderer.NewDefaultLogger()
	driver := renderer.NewFrameDriver(camera, selectedScene, nil, config.Render, logger)

	if config.Window {
		windowConfig := display.DefaultWindowConfig()
		windowConfig.Title = "Minimal Raytracer - " + selectedScene.Name
		windowConfig.Width = config.Width
		windowConfig.Height = config.Height
		windowConfig.Scale = max(config.Scale, 1)
		windowConfig.Interval = config.Interval
		windowConfig.Debug = config.Debug

		if err := display.NewWindow(driver, camera, selectedScene, windowConfig).Run(); err != nil {
			fmt.Printf("Window error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := renderFrames(driver, selectedScene, config, logger); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into a Config. help reports whether -help was given.
func parseFlags(fs *flag.FlagSet, args []string) (Config, bool, error) {	defaults := renderer.DefaultRenderConfig()

	sceneType := fs.String("scene", "default", "Scene name (see -help)")
	width := fs.Int("width", 320, "Frame width in pixels")
	height := fs.Int("height", 180, "Frame height in pixels")
	fov := fs.Float64("fov", 0, "Vertical field of view in degrees (0 uses the scene's)")
	aa := fs.Bool("aa", defaults.AntiAliasing, "Average jittered samples per pixel")
	samples := fs.Int("samples", defaults.SamplesPerPixel, "Samples per pixel with -aa")
	policy := fs.String("policy", defaults.HitPolicy.String(), "Hit resolution: 'last' or 'nearest'")
	gradient := fs.Bool("gradient", false, "Clear with the debug gradient instead of white")
	workers := fs.Int("workers", defaults.NumWorkers, "Number of row workers (0 = one per CPU)")
	seed := fs.Int64("seed", defaults.Seed, "Seed for anti-aliasing jitter")
	frames := fs.Int("frames", 1, "Number of frames to render to files")
	out := fs.String("out", "output", "Base output directory")
	format := fs.String("format", "png", "Output format: png, bmp or tiff")
	scale := fs.Int("scale", 1, "Integer upscale factor for output and window")
	debug := fs.Bool("debug", false, "Draw the scene mapping onto frames")
	window := fs.Bool("window", false, "Show frames in a window instead of writing files")
	interval := fs.Duration("interval", time.Second, "Time between frames in window mode")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return Config{}, false, err
	}

	hitPolicy, err := renderer.ParseHitPolicy(*policy)
	if err != nil {
		return Config{}, false, err
	}
	imageFormat, err := snapshot.ParseFormat(*format)
	if err != nil {
		return Config{}, false, err
	}
	if *width < 0 || *height < 0 {
		return Config{}, false, fmt.Errorf("width and height must not be negative, got %dx%d", *width, *height)
	}
	if *frames < 1 {
		return Config{}, false, fmt.Errorf("frames must be at least 1, got %d", *frames)
	}

	render := defaults
	render.AntiAliasing = *aa
	render.SamplesPerPixel = *samples
	render.HitPolicy = hitPolicy
	render.DebugGradientClear = *gradient
	render.NumWorkers = *workers
	if render.NumWorkers == 0 {
		render.NumWorkers = runtime.NumCPU()
	}
	render.Seed = *seed

	return Config{
		SceneType:   *sceneType,
		Width:       *width,
		Height:      *height,
		FieldOfView: *fov,
		Render:      render,
		Frames:      *frames,
		OutputDir:   *out,
		Format:      imageFormat,
		Scale:       *scale,
		Debug:       *debug,
		Window:      *window,
		Interval:    *interval,
	}, *help, nil
}

// showHelp displays usage information
func showHelp(fs *flag.FlagSet) {
	fmt.Println("Minimal Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/frame_NNNN.<format>")
}

// createScene creates a built-in scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Create(sceneType)
}

// createOutputDir returns the output directory for a scene
func createOutputDir(base, sceneType string) string {
	return filepath.Join(base, sceneType)
}

// renderFrames renders config.Frames frames into image files, advancing the
// scene animation before each one
func renderFrames(driver *renderer.FrameDriver, s *scene.Scene, config Config, logger core.Logger) error {
	sink, err := snapshot.NewFileSink(snapshot.FileSinkConfig{
		Dir:    createOutputDir(config.OutputDir, s.Name),
		Format: config.Format,
		Scale:  config.Scale,
		Debug:  config.Debug,
	}, driver.DebugInfo, logger)
	if err != nil {
		return err
	}
	driver.SetSink(sink)

	startTime := time.Now()
	for frame := 1; frame <= config.Frames; frame++ {
		s.Step(frame)
		if _, err := driver.RenderFrame(); err != nil {
			return err
		}
	}

	fmt.Printf("Rendered %d frame(s) in %v\n", config.Frames, time.Since(startTime))
	return nil
}
