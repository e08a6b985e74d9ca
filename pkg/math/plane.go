package math

// Plane is an infinite plane in Hessian form: Normal·p = Offset.
type Plane struct {
	Normal Vec3
	Offset float64
}

// PlaneFromPointNormal builds a plane through point with the given normal.
// The normal is normalized; a zero normal yields a zero plane.
func PlaneFromPointNormal(point, normal Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Offset: n.Dot(point)}
}

// PlaneFromPoints builds a plane through three points.
// Returns false if the points are collinear (degenerate normal).
func PlaneFromPoints(a, b, c Vec3, eps float64) (Plane, bool) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.LengthSq() < eps*eps {
		return Plane{}, false
	}
	n = n.Normalize()
	return Plane{Normal: n, Offset: n.Dot(a)}, true
}

// SignedDistance returns the signed distance from p to the plane.
func (pl Plane) SignedDistance(p Vec3) float64 {
	return pl.Normal.Dot(p) - pl.Offset
}

// IntersectSegment intersects the plane with the bounded segment a→b.
// Returns false when the segment is parallel to the plane (within eps)
// or the crossing lies outside [0, 1] along the segment.
func (pl Plane) IntersectSegment(a, b Vec3, eps float64) (Vec3, bool) {
	ab := b.Sub(a)
	denom := pl.Normal.Dot(ab)
	if denom > -eps && denom < eps {
		return Vec3{}, false
	}
	t := (pl.Offset - pl.Normal.Dot(a)) / denom
	if t < 0 || t > 1 {
		return Vec3{}, false
	}
	return a.Add(ab.Scale(t)), true
}
