package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/material"
	"github.com/df07/go-ppm-pathtracer/pkg/renderer"
)

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float32

// Vec converts to a core.Vec3
func (v Vec3Cfg) Vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg describes the image plane. Omitted vectors keep the classic camera's values.
type CameraCfg struct {
	Origin          *Vec3Cfg `json:"origin,omitempty"`
	LowerLeftCorner *Vec3Cfg `json:"lowerLeftCorner,omitempty"`
	Horizontal      *Vec3Cfg `json:"horizontal,omitempty"`
	Vertical        *Vec3Cfg `json:"vertical,omitempty"`
}

type BackgroundCfg struct {
	Top    Vec3Cfg `json:"top"`
	Bottom Vec3Cfg `json:"bottom"`
}

type LambertianCfg struct {
	Albedo Vec3Cfg `json:"albedo"`
}

type MetalCfg struct {
	Albedo Vec3Cfg `json:"albedo"`
	Fuzz   float32 `json:"fuzz"`
}

type DielectricCfg struct {
	RefractiveIndex float32 `json:"refractiveIndex"`
}

// SphereCfg is one sphere. Exactly one material block must be present.
type SphereCfg struct {
	Center     Vec3Cfg        `json:"center"`
	Radius     float32        `json:"radius"`
	Lambertian *LambertianCfg `json:"lambertian,omitempty"`
	Metal      *MetalCfg      `json:"metal,omitempty"`
	Dielectric *DielectricCfg `json:"dielectric,omitempty"`
}

// Config is the JSON form of a scene file
type Config struct {
	Name        string                  `json:"name,omitempty"`
	Description string                  `json:"description,omitempty"`
	Camera      *CameraCfg              `json:"camera,omitempty"`
	Sampling    renderer.SamplingConfig `json:"sampling"`
	Background  *BackgroundCfg          `json:"background,omitempty"`
	Spheres     []SphereCfg             `json:"spheres"`
}

// Material validates the material block and builds it
func (sc SphereCfg) Material() (material.Material, error) {
	count := 0
	for _, set := range []bool{sc.Lambertian != nil, sc.Metal != nil, sc.Dielectric != nil} {
		if set {
			count++
		}
	}
	if count != 1 {
		return material.Material{}, fmt.Errorf("sphere needs exactly one of lambertian, metal or dielectric, got %d", count)
	}

	switch {
	case sc.Lambertian != nil:
		return material.NewLambertian(sc.Lambertian.Albedo.Vec()), nil
	case sc.Metal != nil:
		return material.NewMetal(sc.Metal.Albedo.Vec(), sc.Metal.Fuzz), nil
	default:
		if sc.Dielectric.RefractiveIndex <= 0 {
			return material.Material{}, fmt.Errorf("refractive index must be > 0, got %g", sc.Dielectric.RefractiveIndex)
		}
		return material.NewDielectric(sc.Dielectric.RefractiveIndex), nil
	}
}

// validateCamera rejects image planes that would produce a zero ray direction
func validateCamera(camera renderer.CameraConfig) error {
	if camera.Horizontal == (core.Vec3{}) || camera.Vertical == (core.Vec3{}) {
		return fmt.Errorf("horizontal and vertical must be non-zero")
	}
	normal := camera.Horizontal.Cross(camera.Vertical)
	if normal == (core.Vec3{}) {
		return fmt.Errorf("horizontal and vertical must not be parallel")
	}
	if camera.LowerLeftCorner.Subtract(camera.Origin).Dot(normal) == 0 {
		return fmt.Errorf("origin must not lie on the image plane")
	}
	return nil
}

// Build converts the config into a scene
func (c *Config) Build() (*Scene, error) {
	s := newScene()

	if c.Camera != nil {
		camera := renderer.DefaultCameraConfig()
		if c.Camera.Origin != nil {
			camera.Origin = c.Camera.Origin.Vec()
		}
		if c.Camera.LowerLeftCorner != nil {
			camera.LowerLeftCorner = c.Camera.LowerLeftCorner.Vec()
		}
		if c.Camera.Horizontal != nil {
			camera.Horizontal = c.Camera.Horizontal.Vec()
		}
		if c.Camera.Vertical != nil {
			camera.Vertical = c.Camera.Vertical.Vec()
		}
		if err := validateCamera(camera); err != nil {
			return nil, fmt.Errorf("camera: %w", err)
		}
		s.Camera = renderer.NewCameraFromConfig(camera)
	}

	if c.Background != nil {
		s.TopColor = c.Background.Top.Vec()
		s.BottomColor = c.Background.Bottom.Vec()
	}

	// Zero fields keep the defaults
	if c.Sampling.Width > 0 {
		s.SamplingConfig.Width = c.Sampling.Width
	}
	if c.Sampling.Height > 0 {
		s.SamplingConfig.Height = c.Sampling.Height
	}
	if c.Sampling.SamplesPerPixel > 0 {
		s.SamplingConfig.SamplesPerPixel = c.Sampling.SamplesPerPixel
	}
	if c.Sampling.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = c.Sampling.MaxDepth
	}

	for i, sc := range c.Spheres {
		mat, err := sc.Material()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if sc.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: radius must be non-zero", i)
		}
		s.AddSphere(sc.Center.Vec(), sc.Radius, mat)
	}

	return s, nil
}

// ParseConfig decodes a scene file, rejecting unknown fields
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads a scene file from disk
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadScene reads and builds a scene file
func LoadScene(path string) (*Scene, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
