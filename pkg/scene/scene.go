package scene

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/geometry"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
	"github.com/df07/go-ppm-pathtracer/pkg/renderer"
)

// Sky gradient used by every builtin scene
var (
	DefaultTopColor    = core.NewVec3(0.5, 0.7, 1.0)
	DefaultBottomColor = core.NewVec3(1.0, 1.0, 1.0)
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	Shapes         []geometry.Shape // Objects in the scene, in insertion order
	TopColor       core.Vec3        // Sky color straight up
	BottomColor    core.Vec3        // Sky color straight down
	SamplingConfig renderer.SamplingConfig
}

// newScene creates an empty scene with the classic camera and sky
func newScene() *Scene {
	return &Scene{
		Camera:         renderer.NewCamera(),
		Shapes:         make([]geometry.Shape, 0),
		TopColor:       DefaultTopColor,
		BottomColor:    DefaultBottomColor,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors implements renderer.Scene
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapes implements renderer.Scene
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// AddSphere adds a sphere to the scene and returns it
func (s *Scene) AddSphere(center core.Vec3, radius float32, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.Shapes = append(s.Shapes, sphere)
	return sphere
}
