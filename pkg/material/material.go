package material

import (
	"fmt"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// Kind selects the scattering law of a Material
type Kind int

const (
	// KindNone is the zero value; a Material of this kind is invalid
	KindNone Kind = iota
	KindLambertian
	KindMetal
	KindDielectric
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return "none"
	}
}

// Material is a closed tagged variant over the supported surface kinds.
// Only the fields belonging to its kind are meaningful. Materials are
// values: hit records carry copies, never references.
type Material struct {
	kind            Kind
	albedo          core.Vec3
	fuzz            float32
	refractiveIndex float32
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{kind: KindLambertian, albedo: albedo}
}

// NewMetal creates a metallic material.
// fuzz is expected in [0, 1]: 0 is a perfect mirror. It is not clamped.
func NewMetal(albedo core.Vec3, fuzz float32) Material {
	return Material{kind: KindMetal, albedo: albedo, fuzz: fuzz}
}

// NewDielectric creates a clear transparent material such as glass (1.5) or water (1.33).
// Panics if refractiveIndex is not positive.
func NewDielectric(refractiveIndex float32) Material {
	if refractiveIndex <= 0 {
		panic(fmt.Sprintf("dielectric refractive index must be positive, got %g", refractiveIndex))
	}
	return Material{kind: KindDielectric, refractiveIndex: refractiveIndex}
}

// Kind returns the active variant
func (m Material) Kind() Kind { return m.kind }

// Valid reports whether exactly one kind is active
func (m Material) Valid() bool {
	return m.kind == KindLambertian || m.kind == KindMetal || m.kind == KindDielectric
}

// Albedo returns the base reflectance (lambertian and metal)
func (m Material) Albedo() core.Vec3 { return m.albedo }

// Fuzz returns the metal reflection blur
func (m Material) Fuzz() float32 { return m.fuzz }

// RefractiveIndex returns the dielectric index of refraction
func (m Material) RefractiveIndex() float32 { return m.refractiveIndex }

func (m Material) String() string {
	switch m.kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v)", m.albedo)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.albedo, m.fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%g)", m.refractiveIndex)
	default:
		return "material(none)"
	}
}

// Scatter produces the attenuation and outgoing ray for rayIn hitting this material.
// Returns false when the ray is absorbed. Panics on a material without a kind.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		panic("scatter on material with no kind")
	}
}
