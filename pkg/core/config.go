package core

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a sampling configuration cannot be rendered
var ErrInvalidConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for the per-row random generators
}

// DefaultSamplingConfig returns the settings of the reference render
func DefaultSamplingConfig() SamplingConfig {
	width := 1200
	return SamplingConfig{
		Width:           width,
		Height:          HeightForAspect(width, 16.0/9.0),
		SamplesPerPixel: 10,
		MaxDepth:        50,
		Seed:            42,
	}
}

// HeightForAspect derives an image height from a width and aspect ratio, truncating
func HeightForAspect(width int, aspectRatio float64) int {
	return int(float64(width) / aspectRatio)
}

// Validate checks that the configuration describes a renderable image.
// Width and height must be at least 2 because jitter is scaled by 1/(W-1) and 1/(H-1).
func (c SamplingConfig) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: image must be at least 2x2, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Merge returns c with every non-zero field of override applied
func (c SamplingConfig) Merge(override SamplingConfig) SamplingConfig {
	result := c
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}
