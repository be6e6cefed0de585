package material

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit outward geometric normal
	T        float32   // Parameter t along the ray
	Material Material  // Copy of the hit surface's material
}
