package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestPixelStats_AddSample(t *testing.T) {
	ps := &PixelStats{}

	if ps.GetColor() != (core.Vec3{}) {
		t.Errorf("Expected black for an empty pixel, got %v", ps.GetColor())
	}

	ps.AddSample(core.NewVec3(1.0, 0.5, 0.2))
	ps.AddSample(core.NewVec3(0.0, 0.5, 0.4))

	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}

	color := ps.GetColor()
	expected := core.NewVec3(0.5, 0.5, 0.3)
	if math.Abs(color.X-expected.X) > 1e-9 ||
		math.Abs(color.Y-expected.Y) > 1e-9 ||
		math.Abs(color.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected average %v, got %v", expected, color)
	}
}

func TestRenderStats_AverageSamples(t *testing.T) {
	if avg := (RenderStats{}).AverageSamples(); avg != 0 {
		t.Errorf("Expected 0 for an empty render, got %f", avg)
	}

	stats := RenderStats{TotalPixels: 10, TotalSamples: 40}
	if avg := stats.AverageSamples(); avg != 4 {
		t.Errorf("Expected 4, got %f", avg)
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	if n := DefaultWorkerCount(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}
