// Package export projects 3D hatch paths into 2D device coordinates and
// serializes them as an SVG document for plotting.
package export

import "github.com/neurofuzzy/hatchplot3d/pkg/math"

// ProjectPoint transforms p by the world-to-clip matrix (perspective divide
// included) and scales the normalized device coordinates by half the
// viewport size. No translation is applied: the output frame is expected to
// place the origin at the viewport center with Y up. Out-of-frame
// coordinates pass through unclipped.
func ProjectPoint(p math.Vec3, viewProj math.Mat4, width, height float64) math.Vec2 {
	ndc := viewProj.TransformPoint(p)
	return math.Vec2{
		X: ndc.X * width / 2,
		Y: ndc.Y * height / 2,
	}
}
