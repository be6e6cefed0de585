package integrator

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/geometry"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
)

// alwaysHit is a shape that every ray hits at t=1 with a fixed material.
// The normal is the unit ray direction scaled by normalSign.
type alwaysHit struct {
	material   material.Material
	normalSign float32
	calls      int
}

func (s *alwaysHit) Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool) {
	s.calls++
	return material.HitRecord{
		T:        1,
		Point:    ray.At(1),
		Normal:   ray.Direction.Normalize().Multiply(s.normalSign),
		Material: s.material,
	}, true
}

func vecNear(a, b core.Vec3, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}

func TestPathTracing_MissReturnsBackgroundGradient(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())
	world := geometry.NewHittableList()
	sampler := core.NewSeededSampler(42)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon is the midpoint", core.NewVec3(0, 0, -3), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := integrator.RayColor(ray, world, sampler, 0)
			if !vecNear(got, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracing_CustomBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator(Config{
		TopColor:    core.NewVec3(0, 0, 1),
		BottomColor: core.NewVec3(1, 0, 0),
	})
	if integrator.Config().MaxDepth != DefaultMaxDepth {
		t.Errorf("Expected MaxDepth to default to %d, got %d", DefaultMaxDepth, integrator.Config().MaxDepth)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	got := integrator.RayColor(ray, geometry.NewHittableList(), core.NewSeededSampler(1), 0)
	if got != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected top color, got %v", got)
	}
}

func TestPathTracing_AttenuationTintsBounce(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())
	albedo := core.NewVec3(0.5, 0.6, 0.7)
	mirror := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewMetal(albedo, 0))
	world := geometry.NewHittableList(mirror)

	// Reflects straight back toward +z, which sees the horizon color
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, core.NewSequenceSampler(0.5), 0)

	expected := albedo.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))
	if !vecNear(got, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPathTracing_AbsorbedRayIsBlack(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())
	// Normal along the ray: the mirror reflection points below the surface
	world := &alwaysHit{material: material.NewMetal(core.NewVec3(1, 1, 1), 0), normalSign: 1}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, core.NewSequenceSampler(0.5), 0)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed ray, got %v", got)
	}
	if world.calls != 1 {
		t.Errorf("Expected absorption to stop after one hit, got %d", world.calls)
	}
}

func TestPathTracing_DepthCap(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())
	// Normal against the ray: a perfect mirror bounces forever
	world := &alwaysHit{material: material.NewMetal(core.NewVec3(1, 1, 1), 0), normalSign: -1}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, core.NewSequenceSampler(0.5), 0)

	if got != (core.Vec3{}) {
		t.Errorf("Expected black after depth exhaustion, got %v", got)
	}
	// Hits at depths 0 through 50; the last is absorbed without scattering
	if world.calls != DefaultMaxDepth+1 {
		t.Errorf("Expected %d scene queries, got %d", DefaultMaxDepth+1, world.calls)
	}
}

func TestPathTracing_MirroredEnclosureTerminates(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())

	// Negative radius turns the normal inward, making a closed mirror room
	room := geometry.NewSphere(core.NewVec3(0, 0, 0), -10, material.NewMetal(core.NewVec3(1, 1, 1), 0))
	world := geometry.NewHittableList(room)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, world, core.NewSeededSampler(5), 0)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black from a closed mirror room, got %v", got)
	}
}

func TestPathTracing_DepthAlreadyExhausted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDepth = 3
	integrator := NewPathTracingIntegrator(cfg)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1)))
	world := geometry.NewHittableList(sphere)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := integrator.RayColor(ray, world, core.NewSeededSampler(1), 3); got != (core.Vec3{}) {
		t.Errorf("Expected black when hitting at max depth, got %v", got)
	}

	// A miss still sees the sky at any depth
	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if got := integrator.RayColor(up, world, core.NewSeededSampler(1), 3); got != core.NewVec3(0.5, 0.7, 1.0) {
		t.Errorf("Expected sky at max depth, got %v", got)
	}
}

func TestPathTracing_Deterministic(t *testing.T) {
	integrator := NewPathTracingIntegrator(DefaultConfig())
	white := material.NewLambertian(core.NewVec3(1, 1, 1))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, white))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	render := func(seed int64) []core.Vec3 {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		colors := make([]core.Vec3, 100)
		for i := range colors {
			colors[i] = integrator.RayColor(ray, world, sampler, 0)
		}
		return colors
	}

	first := render(42)
	second := render(42)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Sample %d differs between runs: %v vs %v", i, first[i], second[i])
		}
		// White diffuse surface only redirects sky light, never exceeds it
		c := first[i]
		if c.X < 0 || c.X > 1 || c.Y < 0 || c.Y > 1 || c.Z < 0 || c.Z > 1 {
			t.Fatalf("Sample %d out of range: %v", i, c)
		}
	}
}
