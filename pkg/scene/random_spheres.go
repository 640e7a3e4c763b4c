package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// DefaultRandomSceneSize is the grid half extent of the classic cover image
const DefaultRandomSceneSize = 11

// Placement is one sphere considered by the random spheres builder
type Placement struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	Skipped  bool // Too close to the large metal sphere
}

// keep-out point for small spheres, under the large metal sphere
var metalSphereBase = core.NewVec3(4, 0.2, 0)

// RandomSceneCapacity returns the number of placements considered for a grid
// half extent: one ground sphere, three large spheres and (2·size+1)² small ones.
func RandomSceneCapacity(size int) int {
	n := 2*size + 1
	return 4 + n*n
}

// RandomSpheresPlacements lays out the random spheres scene. The ground sphere and
// three large spheres are never skipped; small spheres within 0.9 of (4, 0.2, 0) are.
func RandomSpheresPlacements(size int, sampler core.Sampler) []Placement {
	placements := make([]Placement, 0, RandomSceneCapacity(size))

	placements = append(placements, Placement{
		Center:   core.NewVec3(0, -1000, 0),
		Radius:   1000,
		Material: material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	})

	for a := -size; a <= size; a++ {
		for b := -size; b <= size; b++ {
			chooseMaterial := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*core.RandomRange(sampler, -1, 1),
				0.2,
				float64(b)+0.9*core.RandomRange(sampler, -1, 1),
			)

			placements = append(placements, Placement{
				Center:   center,
				Radius:   0.2,
				Material: randomMaterial(chooseMaterial, sampler),
				Skipped:  center.Subtract(metalSphereBase).Length() <= 0.9,
			})
		}
	}

	placements = append(placements,
		Placement{
			Center:   core.NewVec3(0, 1, 0),
			Radius:   1.0,
			Material: material.NewDielectric(1.5),
		},
		Placement{
			Center:   core.NewVec3(-4, 1, 0),
			Radius:   1.0,
			Material: material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)),
		},
		Placement{
			Center:   core.NewVec3(4, 1, 0),
			Radius:   1.0,
			Material: material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0),
		},
	)

	return placements
}

// randomMaterial picks diffuse 80%, metal 15% and glass 5% of the time
func randomMaterial(choose float64, sampler core.Sampler) material.Material {
	switch {
	case choose < 0.8:
		albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
		return material.NewLambertian(albedo)
	case choose < 0.95:
		albedo := core.NewVec3(
			core.RandomRange(sampler, 0.5, 1),
			core.RandomRange(sampler, 0.5, 1),
			core.RandomRange(sampler, 0.5, 1),
		)
		fuzz := core.RandomRange(sampler, 0, 0.5)
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}

// NewRandomSpheresScene creates the cover scene: a field of small random spheres
// around three large ones. layoutSeed fixes the arrangement.
func NewRandomSpheresScene(size int, layoutSeed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	placements := RandomSpheresPlacements(size, core.NewSeededSampler(layoutSeed))

	s := newScene(cameraConfig, 10, 50, len(placements))
	for _, p := range placements {
		if p.Skipped {
			continue
		}
		s.World.Add(geometry.NewSphere(p.Center, p.Radius, p.Material))
	}

	return s
}
