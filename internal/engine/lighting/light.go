// Package lighting defines the light variants and the per-triangle
// illumination classifier for hatch generation.
package lighting

import (
	gomath "math"

	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// Light is a closed sum of the supported light variants. Anything else
// reaching the engine contributes no segments.
type Light interface {
	isLight()
}

// Directional is a light with parallel rays. Position and Target define the
// ray direction only; the position's magnitude is irrelevant.
type Directional struct {
	Position      math.Vec3
	Target        math.Vec3
	HatchAngleDeg float64 // rotation of the hatch family about the ray axis, [0, 360)
	Intensity     float64 // density control, conventionally 0.05-2.0
}

func (Directional) isLight() {}

// Spot is a cone-limited light with an apex at Position aimed at Target.
type Spot struct {
	Position         math.Vec3
	Target           math.Vec3
	HatchAngleDeg    float64
	Intensity        float64
	ConeHalfAngleDeg float64
}

func (Spot) isLight() {}

// SpotNearDistance is the fixed distance along the spot axis before which
// intersection points are discarded. The same distance anchors the radial
// cutting-plane construction.
const SpotNearDistance = 0.1

// Ray returns the light's origin and normalized ray direction. Returns
// false for unsupported variants or a degenerate (zero-length) ray.
func Ray(l Light) (origin, dir math.Vec3, ok bool) {
	var pos, target math.Vec3
	switch v := l.(type) {
	case Directional:
		pos, target = v.Position, v.Target
	case Spot:
		pos, target = v.Position, v.Target
	default:
		return math.Vec3{}, math.Vec3{}, false
	}
	d := target.Sub(pos)
	if d.LengthSq() == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}
	return pos, d.Normalize(), true
}

// HatchAngle returns the light's hatch rotation in radians. Unsupported
// variants report zero.
func HatchAngle(l Light) float64 {
	var deg float64
	switch v := l.(type) {
	case Directional:
		deg = v.HatchAngleDeg
	case Spot:
		deg = v.HatchAngleDeg
	}
	return deg * gomath.Pi / 180.0
}

// Contains reports whether p falls inside the spot's cone.
func (s Spot) Contains(p math.Vec3) bool {
	_, dir, ok := Ray(s)
	if !ok {
		return false
	}
	to := p.Sub(s.Position)
	if to.LengthSq() == 0 {
		return true
	}
	cosAngle := to.Normalize().Dot(dir)
	return cosAngle >= gomath.Cos(s.ConeHalfAngleDeg*gomath.Pi/180.0)
}

// BeyondNear reports whether p lies beyond the fixed near distance along
// the spot's axis.
func (s Spot) BeyondNear(p math.Vec3) bool {
	_, dir, ok := Ray(s)
	if !ok {
		return false
	}
	return p.Sub(s.Position).Dot(dir) > SpotNearDistance
}
