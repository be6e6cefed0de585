package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float32
	Get2D() (float32, float32)
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float32 in [0, 1)
func (r *RandomSampler) Get1D() float32 {
	return r.random.Float32()
}

// Get2D returns two random float32 values in [0, 1)
func (r *RandomSampler) Get2D() (float32, float32) {
	return r.random.Float32(), r.random.Float32()
}

// Get3D returns three random float32 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float32(), r.random.Float32(), r.random.Float32())
}

// SequenceSampler replays a fixed list of values, wrapping around at the end
type SequenceSampler struct {
	values []float32
	next   int
}

// NewSequenceSampler creates a sampler that cycles through values.
// Panics if no values are given or any value is outside [0, 1).
func NewSequenceSampler(values ...float32) *SequenceSampler {
	if len(values) == 0 {
		panic("sequence sampler needs at least one value")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic("sequence sampler values must be in [0, 1)")
		}
	}
	return &SequenceSampler{values: values}
}

// Get1D returns the next value of the sequence
func (s *SequenceSampler) Get1D() float32 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Get2D returns the next two values of the sequence
func (s *SequenceSampler) Get2D() (float32, float32) {
	return s.Get1D(), s.Get1D()
}

// Get3D returns the next three values of the sequence
func (s *SequenceSampler) Get3D() Vec3 {
	return NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}

// RandomInUnitSphere returns a point strictly inside the unit sphere by rejection sampling
// Each attempt maps one Get3D sample from [0,1)³ to [-1,1)³
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
