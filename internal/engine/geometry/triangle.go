// Package geometry provides the triangle, mesh, and bounds types the
// hatching engine consumes. All coordinates are world space; object
// transforms are expected to be baked in before the engine sees them.
package geometry

import "github.com/neurofuzzy/hatchplot3d/pkg/math"

// degenerateAreaSq is the squared cross-product length below which a
// triangle is treated as degenerate and skipped.
const degenerateAreaSq = 1e-4

// Triangle is a world-space triangle.
type Triangle struct {
	A, B, C math.Vec3
}

// Normal returns the unit normal of the triangle. Returns false when the
// triangle is degenerate (near-zero area).
func (t Triangle) Normal() (math.Vec3, bool) {
	cross := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if cross.LengthSq() < degenerateAreaSq {
		return math.Vec3{}, false
	}
	return cross.Normalize(), true
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() math.Vec3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3.0)
}

// Edges returns the three edges as endpoint pairs, in vertex order.
func (t Triangle) Edges() [3][2]math.Vec3 {
	return [3][2]math.Vec3{
		{t.A, t.B},
		{t.B, t.C},
		{t.C, t.A},
	}
}

// Barycentric returns the barycentric coordinates (u, v, w) of p with
// respect to the triangle, where p = u*A + v*B + w*C. The point is assumed
// to lie on (or near) the triangle's plane.
func (t Triangle) Barycentric(p math.Vec3) (u, v, w float64) {
	v0 := t.B.Sub(t.A)
	v1 := t.C.Sub(t.A)
	v2 := p.Sub(t.A)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 0, 0, 0
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

// PlaneDistance returns the distance from p to the triangle's plane.
// Degenerate triangles report zero distance.
func (t Triangle) PlaneDistance(p math.Vec3) float64 {
	n, ok := t.Normal()
	if !ok {
		return 0
	}
	d := n.Dot(p.Sub(t.A))
	if d < 0 {
		return -d
	}
	return d
}
