package snapshot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/df07/go-minimal-raytracer/pkg/core"
	"github.com/df07/go-minimal-raytracer/pkg/renderer"
)

// FileSinkConfig contains file output configuration
type FileSinkConfig struct {
	Dir    string // Output directory, created if missing
	Format Format // Image format
	Scale  int    // Integer upscale factor (<= 1 keeps the native size)
	Debug  bool   // Draw the scene mapping onto each frame
}

// FileSink writes every presented frame to Dir/frame_NNNN.ext
type FileSink struct {
	config  FileSinkConfig
	debug   func() renderer.DebugInfo
	logger  core.Logger
	written []string
}

// NewFileSink creates the output directory and returns a sink writing into it.
// debugInfo supplies the overlay text when config.Debug is set and may be nil otherwise.
func NewFileSink(config FileSinkConfig, debugInfo func() renderer.DebugInfo, logger core.Logger) (*FileSink, error) {
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &FileSink{config: config, debug: debugInfo, logger: logger}, nil
}

// Present implements renderer.Sink
func (fs *FileSink) Present(buf *renderer.PixelBuffer) error {
	img := buf.ToImage()
	if fs.config.Debug && fs.debug != nil {
		Overlay(img, fs.debug().Lines(), color.White)
	}
	img = Scale(img, fs.config.Scale)

	filename := filepath.Join(fs.config.Dir, fmt.Sprintf("frame_%04d%s", len(fs.written)+1, fs.config.Format.Extension()))
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, img, fs.config.Format); err != nil {
		return err
	}

	fs.written = append(fs.written, filename)
	fs.logger.Printf("Frame saved as %s\n", filename)
	return nil
}

// Written returns the files written so far
func (fs *FileSink) Written() []string {
	return fs.written
}
