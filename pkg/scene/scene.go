package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering.
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.HittableList // Objects in the scene
	TopColor       core.Vec3              // Sky color straight up
	BottomColor    core.Vec3              // Sky color straight down
	SamplingConfig core.SamplingConfig
	CameraConfig   renderer.CameraConfig
}

// newScene creates an empty scene with the standard sky gradient
func newScene(cameraConfig renderer.CameraConfig, samplesPerPixel, maxDepth, capacity int) *Scene {
	return &Scene{
		Camera:      renderer.NewCamera(cameraConfig),
		World:       geometry.NewHittableListWithCapacity(capacity),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: core.SamplingConfig{
			Width:           cameraConfig.Width,
			Height:          core.HeightForAspect(cameraConfig.Width, cameraConfig.AspectRatio),
			SamplesPerPixel: samplesPerPixel,
			MaxDepth:        maxDepth,
			Seed:            42,
		},
		CameraConfig: cameraConfig,
	}
}

// GetWorld returns the shapes to intersect
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
