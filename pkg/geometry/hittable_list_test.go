package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty list should never report a hit")
	}
	if list.Len() != 0 {
		t.Errorf("Expected empty list, got %d shapes", list.Len())
	}
}

func TestHittableList_ClosestHitWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, DummyMaterial{})
	far := NewSphere(core.NewVec3(0, 0, -6), 0.5, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name   string
		shapes []Shape
	}{
		{"near first", []Shape{near, far}},
		{"far first", []Shape{far, near}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.shapes...)
			hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected closest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_RespectsTMax(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -6), 0.5, DummyMaterial{}))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, 5.0); isHit {
		t.Error("Expected miss when the only sphere lies beyond tMax")
	}
}

type taggedMaterial struct {
	DummyMaterial
	tag string
}

func TestHittableList_TieKeepsScanOrder(t *testing.T) {
	first := NewSphere(core.NewVec3(0, 0, -2), 0.5, taggedMaterial{tag: "first"})
	second := NewSphere(core.NewVec3(0, 0, -2), 0.5, taggedMaterial{tag: "second"})
	list := NewHittableList(first, second)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	mat, ok := hit.Material.(taggedMaterial)
	if !ok || mat.tag != "first" {
		t.Errorf("Expected the earlier shape to win a tie, got %v", hit.Material)
	}
	if list.Len() != 2 || len(list.Shapes()) != 2 {
		t.Errorf("Expected 2 shapes, got %d", list.Len())
	}
}
