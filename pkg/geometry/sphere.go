package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
// A negative radius keeps the same surface but turns the normal inward (hollow shells)
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere. Panics on a zero radius or a material without a kind.
func NewSphere(center core.Vec3, radius float32, mat material.Material) *Sphere {
	if radius == 0 {
		panic(fmt.Errorf("sphere at %v: zero radius: %w", center, core.ErrDivideByZero))
	}
	if !mat.Valid() {
		panic(fmt.Sprintf("sphere at %v: material has no kind", center))
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// NewUnitSphere creates a sphere of radius 1 at the origin
func NewUnitSphere(mat material.Material) *Sphere {
	return NewSphere(core.NewVec3(0, 0, 0), 1, mat)
}

// NewUnitSphereAt creates a sphere of radius 1 at center
func NewUnitSphereAt(center core.Vec3, mat material.Material) *Sphere {
	return NewSphere(center, 1, mat)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if root <= tMin || root >= tMax {
		// Try the farther intersection point
		root = (-b + sqrtD) / (2 * a)
		if root <= tMin || root >= tMax {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	return material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Divide(s.Radius),
		Material: s.Material,
	}, true
}
