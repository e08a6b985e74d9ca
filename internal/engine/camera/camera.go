// Package camera provides the perspective camera used to project hatch
// lines into 2D.
package camera

import (
	gomath "math"

	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// Camera is a perspective camera. The engine treats it as an immutable
// projection function for the duration of one invocation.
type Camera struct {
	Position math.Vec3
	LookAt   math.Vec3
	FovDeg   float64
	Near     float64
	Far      float64
	Aspect   float64
}

// Default returns a camera with plot-friendly defaults.
func Default() Camera {
	return Camera{
		Position: math.Vec3{X: 0, Y: 2, Z: 8},
		LookAt:   math.Vec3{},
		FovDeg:   60,
		Near:     0.1,
		Far:      1000,
		Aspect:   4.0 / 3.0,
	}
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, c.LookAt, up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	fovRad := c.FovDeg * gomath.Pi / 180.0
	return math.Perspective(fovRad, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view (world-to-clip).
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
