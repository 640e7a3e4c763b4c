package renderer

import (
	"context"
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// Scene is everything the raytracer reads while rendering
type Scene interface {
	integrator.Scene
	GetCamera() *Camera
}

// Raytracer turns a scene into pixels, one scanline at a time
type Raytracer struct {
	scene      Scene
	camera     *Camera
	integrator integrator.Integrator
	config     core.SamplingConfig
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the scene. The sampling config is validated up front.
func NewRaytracer(scene Scene, config core.SamplingConfig, logger core.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("creating raytracer: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		scene:      scene,
		camera:     scene.GetCamera(),
		integrator: integrator.NewPathTracingIntegrator(),
		config:     config,
		logger:     logger,
	}, nil
}

// GetSamplingConfig returns the validated sampling configuration
func (rt *Raytracer) GetSamplingConfig() core.SamplingConfig {
	return rt.config
}

// SamplePixel averages SamplesPerPixel jittered rays through pixel (i, j) and returns
// the linear color. j counts from the bottom of the image.
func (rt *Raytracer) SamplePixel(i, j int, sampler core.Sampler) core.Vec3 {
	var ps PixelStats
	width := float64(rt.config.Width - 1)
	height := float64(rt.config.Height - 1)

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + core.RandomRange(sampler, -1, 1)) / width
		v := (float64(j) + core.RandomRange(sampler, -1, 1)) / height

		ray := rt.camera.GetRay(u, v, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, sampler, rt.config.MaxDepth))
	}

	return ps.GetColor()
}

// RenderRow fills pixels with image row y (0 = top) and returns the number of samples taken.
// ctx is checked before every pixel; a cancelled row is left partially written.
func (rt *Raytracer) RenderRow(ctx context.Context, y int, pixels []RGB, sampler core.Sampler) (int, error) {
	j := rt.config.Height - 1 - y
	samples := 0
	for i := 0; i < rt.config.Width; i++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		pixels[i] = ToRGB(rt.SamplePixel(i, j, sampler))
		samples += rt.config.SamplesPerPixel
	}
	return samples, nil
}

// ToRGB converts a linear color to display bytes with gamma 2.0
func ToRGB(color core.Vec3) RGB {
	return RGB{
		R: channelToByte(color.X),
		G: channelToByte(color.Y),
		B: channelToByte(color.Z),
	}
}

func channelToByte(c float64) uint8 {
	if math.IsNaN(c) || c < 0 {
		c = 0
	}
	c = math.Min(math.Sqrt(c), 0.999)
	return uint8(256 * c)
}
