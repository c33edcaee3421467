package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/host"
	"github.com/df07/go-minimal-raytracer/pkg/renderer"
	"github.com/df07/go-minimal-raytracer/pkg/scene"
	"github.com/df07/go-minimal-raytracer/pkg/snapshot"
)

// Config contains web server configuration
type Config struct {
	Port        int                   // Port to listen on
	Scene       string                // Initial scene name
	Width       int                   // Initial frame width
	Height      int                   // Initial frame height
	FieldOfView float64               // Initial vertical field of view in degrees, 0 uses the scene's
	Render      renderer.RenderConfig // Render configuration for every frame
}

// DefaultConfig returns the default server configuration
func DefaultConfig() Config {
	return Config{
		Port:   8080,
		Scene:  "default",
		Width:  320,
		Height: 240,
		Render: renderer.DefaultRenderConfig(),
	}
}

// Server renders frames on demand and serves them over HTTP.
// A single driver is shared by all requests; frames are rendered one at a time.
type Server struct {
	mu      sync.Mutex
	config  Config
	scene   *scene.Scene
	camera  *host.PerspectiveCamera
	driver  *renderer.FrameDriver
	last    *image.RGBA
	stats   renderer.FrameStats
	console *Console
	logger  core.Logger
}

// FrameResponse describes the most recent frame
type FrameResponse struct {
	Scene   string             `json:"scene"`
	Mapping renderer.DebugInfo `json:"mapping"`
	Samples int                `json:"samples"`
	Tests   int                `json:"tests"`
	Hits    int                `json:"hits"`
}

// NewServer creates a web server with the configured initial scene
func NewServer(config Config) (*Server, error) {
	s := &Server{
		config:  config,
		console: NewConsole(200),
	}

	consoleChan := make(chan ConsoleMessage, 64)
	go s.console.Drain(consoleChan)
	s.logger = NewWebLogger("server", consoleChan)

	if err := s.loadScene(config.Scene); err != nil {
		return nil, err
	}
	return s, nil
}

// loadScene replaces the scene and starts a new driver session for it
func (s *Server) loadScene(name string) error {
	sceneObj, err := scene.Create(name)
	if err != nil {
		return err
	}

	fov := s.config.FieldOfView
	if fov <= 0 {
		fov = sceneObj.FieldOfView
	}

	s.scene = sceneObj
	s.camera = host.NewPerspectiveCamera(s.config.Width, s.config.Height, fov)
	s.stats = renderer.FrameStats{}
	s.driver = renderer.NewFrameDriver(s.camera, sceneObj, s, s.config.Render, s.logger)
	s.logger.Printf("Loaded scene %s (session %s)\n", name, s.driver.ID())
	return nil
}

// Present implements renderer.Sink by keeping a copy of the frame
func (s *Server) Present(buf *renderer.PixelBuffer) error {
	s.last = buf.ToImage()
	return nil
}

// Handler returns the HTTP routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/mapping", s.handleMapping)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// frameRequest holds the validated query parameters of a frame request
type frameRequest struct {
	scene       string
	width       int
	height      int
	fieldOfView float64
	format      snapshot.Format
	debug       bool
}

// parseFrameRequest parses request parameters, defaulting to the current state
func (s *Server) parseFrameRequest(r *http.Request) (*frameRequest, error) {
	query := r.URL.Query()
	req := &frameRequest{scene: s.scene.Name, format: snapshot.FormatPNG}

	if name := query.Get("scene"); name != "" {
		req.scene = name
	}

	var err error
	if req.width, err = parseIntParam(query, "width", s.camera.Width, 1, 2000); err != nil {
		return nil, err
	}
	if req.height, err = parseIntParam(query, "height", s.camera.Height, 1, 2000); err != nil {
		return nil, err
	}
	if req.fieldOfView, err = parseFloatParam(query, "fov", s.camera.FieldOfView, 1, 179); err != nil {
		return nil, err
	}
	if name := query.Get("format"); name != "" {
		if req.format, err = snapshot.ParseFormat(name); err != nil {
			return nil, err
		}
	}
	if value := query.Get("debug"); value != "" {
		if req.debug, err = strconv.ParseBool(value); err != nil {
			return nil, fmt.Errorf("invalid debug: %s", value)
		}
	}

	return req, nil
}

// handleFrame renders the next frame and returns it as an image
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.parseFrameRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	if req.scene != s.scene.Name {
		if err := s.loadScene(req.scene); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
	}

	s.camera.SetSize(req.width, req.height)
	s.camera.FieldOfView = req.fieldOfView
	s.scene.Step(s.driver.Frame() + 1)

	stats, err := s.driver.RenderFrame()
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}
	s.stats = stats

	img := s.last
	if req.debug {
		img = copyRGBA(img)
		snapshot.Overlay(img, s.driver.DebugInfo().Lines(), color.White)
	}

	var body bytes.Buffer
	if err := snapshot.Encode(&body, img, req.format); err != nil {
		http.Error(w, fmt.Sprintf("Encode error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/"+string(req.format))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Frame", strconv.Itoa(stats.Frame))
	w.Write(body.Bytes())
}

// handleMapping returns the current scene mapping and last frame summary
func (s *Server) handleMapping(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	response := FrameResponse{
		Scene:   s.scene.Name,
		Mapping: s.driver.DebugInfo(),
		Samples: s.stats.Samples,
		Tests:   s.stats.RaysTested,
		Hits:    s.stats.Hits,
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scene.List())
}

// handleConsole returns recent log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.console.Messages())
}

// copyRGBA returns a copy so overlays never touch the presented frame
func copyRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
