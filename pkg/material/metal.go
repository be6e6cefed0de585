package material

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// scatterMetal reflects about the normal, perturbed by fuzz
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.fuzz))
	scattered := core.NewRay(hit.Point, direction)

	// Fuzzed rays that end up below the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.albedo,
	}, scatters
}
