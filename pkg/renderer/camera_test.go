package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCameraGetRay_PinholeCornersAndCenter(t *testing.T) {
	// 90 degree fov with unit focus distance gives a viewport spanning [-1,1]
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        90.0,
	}
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
		{"upper left", 0, 1, core.NewVec3(-1, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Origin != config.Center {
				t.Errorf("Pinhole ray should start at the camera center, got %v", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCameraGetRay_ApertureJittersOriginWithinLens(t *testing.T) {
	config := CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         200,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	forward := config.LookAt.Subtract(config.Center).Normalize()

	moved := false
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)
		offset := ray.Origin.Subtract(config.Center)

		if offset.Length() >= config.Aperture/2+1e-12 {
			t.Fatalf("Lens offset %v exceeds lens radius %f", offset, config.Aperture/2)
		}
		// The lens lies in the plane perpendicular to the view direction
		if math.Abs(offset.Dot(forward)) > 1e-9 {
			t.Fatalf("Lens offset %v is not in the lens plane", offset)
		}
		if offset.Length() > 0 {
			moved = true
		}

		// Every ray through the viewport center converges on the focus plane
		focusPoint := config.Center.Add(forward.Multiply(config.FocusDistance))
		if !vecClose(ray.At(1.0), focusPoint, 1e-9) {
			t.Fatalf("Expected ray to pass through %v, got %v", focusPoint, ray.At(1.0))
		}
	}

	if !moved {
		t.Error("Expected a non-zero aperture to move ray origins")
	}
}

func TestCameraAutoFocusDistance(t *testing.T) {
	config := CameraConfig{
		Center:      core.NewVec3(0, 0, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        90.0,
	}
	camera := NewCamera(config)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// With focus distance 4 the center ray reaches the look-at point at t=1
	ray := camera.GetRay(0.5, 0.5, sampler)
	if !vecClose(ray.At(1.0), config.LookAt, 1e-9) {
		t.Errorf("Expected center ray to reach %v at t=1, got %v", config.LookAt, ray.At(1.0))
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	override := CameraConfig{
		Width: 400,
		VFov:  40,
	}

	merged := MergeCameraConfig(base, override)

	if merged.Width != 400 || merged.VFov != 40 {
		t.Errorf("Expected overrides to apply, got width %d vfov %f", merged.Width, merged.VFov)
	}
	if merged.Center != base.Center || merged.LookAt != base.LookAt || merged.Aperture != base.Aperture {
		t.Errorf("Expected zero fields to keep base values, got %+v", merged)
	}
	if merged.AspectRatio != 16.0/9.0 || merged.FocusDistance != 10.0 {
		t.Errorf("Unexpected defaults carried: %+v", merged)
	}
}
