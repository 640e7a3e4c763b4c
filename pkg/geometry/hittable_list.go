package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// HittableList is an ordered collection of shapes tested by linear scan.
// Shapes are appended while the scene is built; the list is read-only during rendering.
type HittableList struct {
	shapes []Shape
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{}
	list.shapes = append(list.shapes, shapes...)
	return list
}

// NewHittableListWithCapacity creates an empty list with room for capacity shapes
func NewHittableListWithCapacity(capacity int) *HittableList {
	return &HittableList{shapes: make([]Shape, 0, capacity)}
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes
func (l *HittableList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in insertion order
func (l *HittableList) Shapes() []Shape {
	return l.shapes
}

// Hit returns the closest intersection among all shapes.
// On equal t the earlier shape wins.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			if closestHit == nil || hit.T < closestHit.T {
				closestHit = hit
				closestSoFar = hit.T
			}
		}
	}

	return closestHit, closestHit != nil
}
