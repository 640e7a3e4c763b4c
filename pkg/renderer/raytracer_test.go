package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// testScene implements Scene for testing
type testScene struct {
	world       *geometry.HittableList
	camera      *Camera
	topColor    core.Vec3
	bottomColor core.Vec3
}

func (s *testScene) GetWorld() geometry.Shape { return s.world }
func (s *testScene) GetCamera() *Camera       { return s.camera }
func (s *testScene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.topColor, s.bottomColor
}

// newSingleSphereScene looks straight at a half-unit sphere from one unit away
func newSingleSphereScene() *testScene {
	return &testScene{
		world: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		),
		camera: NewCamera(CameraConfig{
			Center:      core.NewVec3(0, 0, 1),
			LookAt:      core.NewVec3(0, 0, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       11,
			AspectRatio: 1.0,
			VFov:        90.0,
		}),
		topColor:    core.NewVec3(0.5, 0.7, 1.0),
		bottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"black", 0.0, 0},
		{"white", 1.0, 255},
		{"over range clamps", 4.0, 255},
		{"quarter is gamma corrected to half", 0.25, 128},
		{"negative clamps to zero", -0.5, 0},
		{"NaN becomes zero", math.NaN(), 0},
		{"positive infinity clamps", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToRGB(core.NewVec3(tt.input, tt.input, tt.input))
			want := RGB{tt.expected, tt.expected, tt.expected}
			if got != want {
				t.Errorf("ToRGB(%f) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestNewRaytracer_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config core.SamplingConfig
	}{
		{"zero width", core.SamplingConfig{Width: 0, Height: 10, SamplesPerPixel: 1, MaxDepth: 1}},
		{"single row", core.SamplingConfig{Width: 10, Height: 1, SamplesPerPixel: 1, MaxDepth: 1}},
		{"no samples", core.SamplingConfig{Width: 10, Height: 10, SamplesPerPixel: 0, MaxDepth: 1}},
		{"negative depth", core.SamplingConfig{Width: 10, Height: 10, SamplesPerPixel: 1, MaxDepth: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRaytracer(newSingleSphereScene(), tt.config, nil)
			if !errors.Is(err, core.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRaytracer_SamplePixelDepthZeroIsBlack(t *testing.T) {
	config := core.SamplingConfig{Width: 11, Height: 11, SamplesPerPixel: 4, MaxDepth: 0, Seed: 1}
	raytracer, err := NewRaytracer(newSingleSphereScene(), config, nil)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	sampler := core.NewSeededSampler(42)
	for _, pixel := range [][2]int{{0, 0}, {5, 5}, {10, 10}} {
		if color := raytracer.SamplePixel(pixel[0], pixel[1], sampler); color != (core.Vec3{}) {
			t.Errorf("Expected black at %v with depth 0, got %v", pixel, color)
		}
	}
}
