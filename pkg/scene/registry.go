package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by Create for names not in List
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID              string `json:"id"`
	DisplayName     string `json:"displayName"`
	Description     string `json:"description"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	SamplesPerPixel int    `json:"samplesPerPixel"`
	MaxDepth        int    `json:"maxDepth"`
}

// Options tunes scene construction
type Options struct {
	Size   int                   // Grid half extent for the random scene
	Seed   int64                 // Layout seed for the random scene
	Camera renderer.CameraConfig // Camera overrides; zero fields keep scene defaults
}

// DefaultOptions returns the options of the cover render
func DefaultOptions() Options {
	return Options{Size: DefaultRandomSceneSize, Seed: 42}
}

type entry struct {
	id          string
	displayName string
	description string
	build       func(Options) *Scene
}

var registry = []entry{
	{
		id:          "random",
		displayName: "Random Spheres",
		description: "Hundreds of small random spheres around three large ones",
		build: func(o Options) *Scene {
			return NewRandomSpheresScene(o.Size, o.Seed, o.Camera)
		},
	},
	{
		id:          "default",
		displayName: "Material Showcase",
		description: "One sphere of each material on a ground sphere",
		build: func(o Options) *Scene {
			return NewDefaultScene(o.Camera)
		},
	},
	{
		id:          "single-sphere",
		displayName: "Single Sphere",
		description: "A diffuse sphere against the sky",
		build: func(o Options) *Scene {
			return NewSingleSphereScene(o.Camera)
		},
	},
}

// Create builds the named scene
func Create(name string, options Options) (*Scene, error) {
	if options.Size < 0 {
		return nil, fmt.Errorf("%w: scene size must not be negative, got %d", core.ErrInvalidConfig, options.Size)
	}
	for _, e := range registry {
		if e.id == name {
			return e.build(options), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// List returns the built-in scenes with their default render settings.
// The random scene is described at a small size so listing stays cheap.
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		s := e.build(Options{Size: 0, Seed: 42})
		infos = append(infos, SceneInfo{
			ID:              e.id,
			DisplayName:     e.displayName,
			Description:     e.description,
			Width:           s.SamplingConfig.Width,
			Height:          s.SamplingConfig.Height,
			SamplesPerPixel: s.SamplingConfig.SamplesPerPixel,
			MaxDepth:        s.SamplingConfig.MaxDepth,
		})
	}
	return infos
}

// Names returns the ids accepted by Create
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.id)
	}
	return names
}
