package integrator

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the bounce at which rays are treated as absorbed
	DefaultMaxDepth = 50

	// MinHitDistance skips hits at the ray origin (shadow acne)
	MinHitDistance = 0.001
)

// Config contains path tracing settings
type Config struct {
	MaxDepth    int       // Bounces before a ray is absorbed
	TopColor    core.Vec3 // Background color straight up
	BottomColor core.Vec3 // Background color straight down
}

// DefaultConfig returns the standard sky: white at the bottom, sky blue at the top
func DefaultConfig() Config {
	return Config{
		MaxDepth:    DefaultMaxDepth,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}
}

var _ Integrator = (*PathTracingIntegrator)(nil)

// PathTracingIntegrator implements unidirectional path tracing lit only by the background
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
// A non-positive MaxDepth falls back to DefaultMaxDepth
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{config: config}
}

// Config returns the integrator settings
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, MinHitDistance, math32.Inf(1))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth >= pt.config.MaxDepth {
		return core.Vec3{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth+1))
}

// backgroundGradient returns a gradient color based on ray direction
func (pt *PathTracingIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return pt.config.BottomColor.Multiply(1.0 - t).Add(pt.config.TopColor.Multiply(t))
}
