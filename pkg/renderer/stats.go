package renderer

import (
	"fmt"
	"time"
)

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	Frame        int           // Frame number, starting at 1
	Pixels       int           // Total number of pixels rendered
	Samples      int           // Total number of primary rays
	RaysTested   int           // Ray-hittable intersection tests
	Hits         int           // Valid intersections found
	Reconfigured bool          // Whether the camera geometry changed this frame
	Duration     time.Duration // Wall time spent in the render pass
}

// merge adds the counters of other into s
func (s *FrameStats) merge(other FrameStats) {
	s.Pixels += other.Pixels
	s.Samples += other.Samples
	s.RaysTested += other.RaysTested
	s.Hits += other.Hits
}

// String formats the statistics for logs
func (s FrameStats) String() string {
	return fmt.Sprintf("frame %d: %d pixels, %d samples, %d tests, %d hits in %v",
		s.Frame, s.Pixels, s.Samples, s.RaysTested, s.Hits, s.Duration)
}

// AverageLuminance returns the mean Rec. 709 luminance of the buffer in [0, 1]
func AverageLuminance(buf *PixelBuffer) float64 {
	if len(buf.Pix) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range buf.Pix {
		r := float64(c.R) / 255.0
		g := float64(c.G) / 255.0
		b := float64(c.B) / 255.0
		total += 0.2126*r + 0.7152*g + 0.0722*b
	}
	return total / float64(len(buf.Pix))
}
