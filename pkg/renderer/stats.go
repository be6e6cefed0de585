package renderer

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	SamplesPerPixel  int           // Samples taken for every pixel
	MaxDepth         int           // Bounce limit used
	AverageLuminance float32       // Mean luminance of the averaged (pre-gamma) pixel colors
	Duration         time.Duration // Wall time of the render
}

// PixelStats accumulates samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Divide(float32(ps.SampleCount))
}

// ToByte converts a linear channel value to 8 bits: gamma 2, scaled by 255.99, truncated
func ToByte(linear float32) uint8 {
	if linear <= 0 {
		return 0
	}
	scaled := int(255.99 * math32.Sqrt(linear))
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
