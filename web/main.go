package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/df07/go-minimal-raytracer/web/server"
)

func main() {
	config := server.DefaultConfig()

	// Parse command line flags
	flag.IntVar(&config.Port, "port", config.Port, "Port to serve on")
	flag.StringVar(&config.Scene, "scene", config.Scene, "Initial scene")
	flag.IntVar(&config.Width, "width", config.Width, "Initial frame width")
	flag.IntVar(&config.Height, "height", config.Height, "Initial frame height")
	flag.Float64Var(&config.FieldOfView, "fov", 0, "Vertical field of view in degrees (0 uses the scene's)")
	aa := flag.Bool("aa", false, "Enable anti-aliasing")
	workers := flag.Int("workers", 1, "Number of row workers (0 = one per CPU)")
	flag.Parse()

	config.Render.AntiAliasing = *aa
	config.Render.NumWorkers = *workers
	if config.Render.NumWorkers == 0 {
		config.Render.NumWorkers = runtime.NumCPU()
	}

	// Create and start web server
	webServer, err := server.NewServer(config)
	if err != nil {
		log.Printf("Error creating server: %v", err)
		os.Exit(1)
	}

	log.Printf("Minimal Raytracer Web Server")
	log.Printf("Visit http://localhost:%d/api/frame to render a frame", config.Port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
