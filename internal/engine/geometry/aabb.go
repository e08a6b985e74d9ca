package geometry

import "github.com/neurofuzzy/hatchplot3d/pkg/math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// EmptyAABB returns an inverted box that extends to nothing.
func EmptyAABB() AABB {
	const huge = 1e30
	return AABB{
		Min: math.Vec3{X: huge, Y: huge, Z: huge},
		Max: math.Vec3{X: -huge, Y: -huge, Z: -huge},
	}
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Center returns the box's center point.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extend grows the box to include p.
func (b AABB) Extend(p math.Vec3) AABB {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// UnionBounds returns the union bounding box of all non-helper meshes.
// Returns false when no non-helper mesh contributes any vertex.
func UnionBounds(meshes []Mesh) (AABB, bool) {
	box := EmptyAABB()
	for _, m := range meshes {
		if m.Helper {
			continue
		}
		for _, tri := range m.Triangles {
			box = box.Extend(tri.A)
			box = box.Extend(tri.B)
			box = box.Extend(tri.C)
		}
	}
	if box.IsEmpty() {
		return AABB{}, false
	}
	return box, true
}
