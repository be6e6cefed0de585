package material

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// scatterDielectric chooses between reflection and refraction with Schlick's probability
func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := rayIn.Direction
	dirDotNormal := direction.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float32
	if dirDotNormal > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = m.refractiveIndex
		cosine = m.refractiveIndex * dirDotNormal / direction.Length()
	} else {
		// Entering the material
		outwardNormal = hit.Normal
		niOverNt = 1 / m.refractiveIndex
		cosine = -dirDotNormal / direction.Length()
	}

	reflectProbability := float32(1)
	refracted, canRefract := direction.Refract(outwardNormal, niOverNt)
	if canRefract {
		reflectProbability = Reflectance(cosine, m.refractiveIndex)
	}

	// Exactly one draw per scatter, even under total internal reflection
	var scattered core.Ray
	if sampler.Get1D() < reflectProbability {
		scattered = core.NewRay(hit.Point, direction.Reflect(hit.Normal))
	} else {
		scattered = core.NewRay(hit.Point, refracted)
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float32) float32 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
