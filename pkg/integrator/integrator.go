package integrator

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray. depth is the number
	// of bounces already taken; callers start at 0.
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3
}
