package renderer

import (
	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// Camera generates rays through an axis-aligned image plane
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// CameraConfig describes the image plane explicitly
type CameraConfig struct {
	Origin          core.Vec3 `json:"origin"`
	LowerLeftCorner core.Vec3 `json:"lowerLeftCorner"`
	Horizontal      core.Vec3 `json:"horizontal"`
	Vertical        core.Vec3 `json:"vertical"`
}

// DefaultCameraConfig is a 2:1 image plane one unit down -z from the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:          core.NewVec3(0, 0, 0),
		LowerLeftCorner: core.NewVec3(-2, -1, -1),
		Horizontal:      core.NewVec3(4, 0, 0),
		Vertical:        core.NewVec3(0, 2, 0),
	}
}

// NewCamera creates the default camera
func NewCamera() *Camera {
	return NewCameraFromConfig(DefaultCameraConfig())
}

// NewCameraFromConfig creates a camera from explicit image plane vectors
func NewCameraFromConfig(config CameraConfig) *Camera {
	return &Camera{
		origin:          config.Origin,
		lowerLeftCorner: config.LowerLeftCorner,
		horizontal:      config.Horizontal,
		vertical:        config.Vertical,
	}
}

// Config returns the image plane vectors of this camera
func (c *Camera) Config() CameraConfig {
	return CameraConfig{
		Origin:          c.origin,
		LowerLeftCorner: c.lowerLeftCorner,
		Horizontal:      c.horizontal,
		Vertical:        c.vertical,
	}
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1
// (0, 0) is the lower left corner of the image plane
func (c *Camera) GetRay(u, v float32) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
