package scene

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
)

// NewDefaultScene creates the two diffuse spheres: a small one resting on a huge ground sphere
func NewDefaultScene() *Scene {
	s := newScene()

	lambertianGray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianGray)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGray)

	return s
}

// NewMaterialsScene shows one sphere per material: diffuse center, metal sides, glass in front
func NewMaterialsScene() *Scene {
	s := newScene()

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGreen)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver)
	s.AddSphere(core.NewVec3(0, -0.25, -0.5), 0.2, glass)

	return s
}

// NewHollowGlassScene places a glass bubble (outer shell plus a negative-radius
// inner surface) to the left of a diffuse sphere
func NewHollowGlassScene() *Scene {
	s := newScene()

	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGreen)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	// Hollow glass sphere
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.45, glass)

	return s
}
