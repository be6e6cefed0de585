package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/geometry"
	"github.com/df07/go-ppm-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int `json:"width"`           // Image width in pixels
	Height          int `json:"height"`          // Image height in pixels
	SamplesPerPixel int `json:"samplesPerPixel"` // Number of rays per pixel
	MaxDepth        int `json:"maxDepth"`        // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
	}
}

// Validate reports the first invalid setting
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("invalid samples per pixel %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []geometry.Shape
}

// Raytracer drives the per-pixel sampling loop on a single goroutine
type Raytracer struct {
	scene      Scene
	world      *geometry.HittableList
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	config.Width = width
	config.Height = height

	rt := &Raytracer{
		scene:   scene,
		world:   geometry.NewHittableList(scene.GetShapes()...),
		sampler: core.NewSeededSampler(42), // Deterministic for testing
		logger:  nopLogger{},
	}
	rt.SetSamplingConfig(config)
	return rt
}

// SetSamplingConfig updates the sampling configuration and resets the integrator
// to a path tracer with the scene's background
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config

	top, bottom := rt.scene.GetBackgroundColors()
	rt.integrator = integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth:    config.MaxDepth,
		TopColor:    top,
		BottomColor: bottom,
	})
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// SetSampler replaces the random source. Each concurrent render needs its own sampler.
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetLogger sets where progress messages go
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SamplingConfig returns the current sampling configuration
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.config
}

// SamplePixel returns the averaged linear color of pixel (i, j), with j counted up from the bottom row
func (rt *Raytracer) SamplePixel(i, j int) core.Vec3 {
	camera := rt.scene.GetCamera()
	nx := float32(rt.config.Width)
	ny := float32(rt.config.Height)

	var stats PixelStats
	for s := 0; s < rt.config.SamplesPerPixel; s++ {
		du, dv := rt.sampler.Get2D()
		u := (float32(i) + du) / nx
		v := (float32(j) + dv) / ny
		ray := camera.GetRay(u, v)
		stats.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler, 0))
	}
	return stats.GetColor()
}

// Render samples every pixel and returns the gamma-corrected image.
// Rows are produced top to bottom; ctx is checked once per row.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	startTime := time.Now()

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, max depth %d, %d shapes\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, rt.world.Len())

	var luminance float32
	progressStep := max(1, height/10)
	for row := 0; row < height; row++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, fmt.Errorf("render cancelled at row %d: %w", row, err)
		}

		j := height - 1 - row
		for i := 0; i < width; i++ {
			c := rt.SamplePixel(i, j)
			luminance += c.Luminance()
			img.SetRGBA(i, row, color.RGBA{R: ToByte(c.X), G: ToByte(c.Y), B: ToByte(c.Z), A: 255})
		}

		if (row+1)%progressStep == 0 || row == height-1 {
			rt.logger.Printf("Scanlines remaining: %d\n", height-1-row)
		}
	}

	totalPixels := width * height
	stats := RenderStats{
		TotalPixels:      totalPixels,
		TotalSamples:     totalPixels * rt.config.SamplesPerPixel,
		SamplesPerPixel:  rt.config.SamplesPerPixel,
		MaxDepth:         rt.config.MaxDepth,
		AverageLuminance: luminance / float32(totalPixels),
		Duration:         time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v\n", stats.Duration)

	return img, stats, nil
}
