package renderer

import (
	"fmt"
	"image/color"
	"strings"
)

// HitPolicy selects how multiple hits along one ray are resolved
type HitPolicy int

const (
	// LastHitWins keeps the valid hit from the last hittable in enumeration order
	LastHitWins HitPolicy = iota
	// NearestHitWins keeps the valid hit with the smallest ray parameter
	NearestHitWins
)

// String returns the flag name of the policy
func (p HitPolicy) String() string {
	switch p {
	case LastHitWins:
		return "last"
	case NearestHitWins:
		return "nearest"
	default:
		return fmt.Sprintf("HitPolicy(%d)", int(p))
	}
}

// ParseHitPolicy parses "last" or "nearest"
func ParseHitPolicy(name string) (HitPolicy, error) {
	switch strings.ToLower(name) {
	case "last", "":
		return LastHitWins, nil
	case "nearest":
		return NearestHitWins, nil
	default:
		return LastHitWins, fmt.Errorf("unknown hit policy %q (want 'last' or 'nearest')", name)
	}
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	AntiAliasing       bool       // Average several jittered samples per pixel
	SamplesPerPixel    int        // Samples per pixel when anti-aliasing
	HitPolicy          HitPolicy  // Multi-object hit resolution
	DebugGradientClear bool       // Clear with a coordinate gradient instead of ClearColor
	ClearColor         color.RGBA // Flat clear color
	NumWorkers         int        // Row workers; 1 renders sequentially on the shared random stream
	Seed               int64      // Seed for the jitter stream
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		AntiAliasing:       false,
		SamplesPerPixel:    8,
		HitPolicy:          LastHitWins,
		DebugGradientClear: false,
		ClearColor:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
		NumWorkers:         1,
		Seed:               42,
	}
}

// samples returns the effective sample count for a pixel
func (c RenderConfig) samples() int {
	if !c.AntiAliasing || c.SamplesPerPixel < 1 {
		return 1
	}
	return c.SamplesPerPixel
}
