package math

// IntersectCoplanarLines returns the intersection point of two lines assumed
// to be coplanar, given a point and direction for each. Returns false when
// the lines are parallel (cross product of the normalized directions has
// squared length below eps²) or the solve is numerically degenerate.
func IntersectCoplanarLines(p1, d1, p2, d2 Vec3, eps float64) (Vec3, bool) {
	n1 := d1.Normalize()
	n2 := d2.Normalize()
	if n1.Cross(n2).LengthSq() < eps*eps {
		return Vec3{}, false
	}

	// Closest-point parameter on line 1 via the triple-product solve.
	cross := d1.Cross(d2)
	denom := cross.LengthSq()
	if denom < eps*eps {
		return Vec3{}, false
	}
	t := p2.Sub(p1).Cross(d2).Dot(cross) / denom
	return p1.Add(d1.Scale(t)), true
}

// PointOnSegment reports whether p lies on the segment a→b.
// Collinearity uses a cross-product magnitude test scaled by the squared
// segment length; the projection parameter must fall in [-eps, |ab|²+eps].
func PointOnSegment(p, a, b Vec3, eps float64) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return ap.LengthSq() <= eps*eps
	}
	if ap.Cross(ab).LengthSq() > eps*lenSq {
		return false
	}
	t := ap.Dot(ab)
	return t >= -eps && t <= lenSq+eps
}
