package geometry

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
)

// HittableList is an ordered collection of shapes queried for the nearest hit.
// Without an acceleration structure every query visits every shape.
type HittableList struct {
	shapes []Shape
}

// NewHittableList creates a list from the given shapes
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{shapes: make([]Shape, 0, len(shapes))}
	list.shapes = append(list.shapes, shapes...)
	return list
}

// Add appends a shape to the list
func (l *HittableList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HittableList) Len() int {
	return len(l.shapes)
}

// Shapes returns a copy of the shapes in the list
func (l *HittableList) Shapes() []Shape {
	out := make([]Shape, len(l.shapes))
	copy(out, l.shapes)
	return out
}

// Hit returns the nearest intersection over all shapes.
// Each shape is queried with the upper bound shrunk to the closest hit so far,
// so the last record kept is the nearest one.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
