package material

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// scatterLambertian bounces toward a random point in the unit sphere tangent to the hit point
func (m Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	scattered := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, true
}
