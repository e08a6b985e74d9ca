package scene

import (
	"fmt"
	gomath "math"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// buildMesh tessellates an object document into a world-space mesh.
func buildMesh(od objectDoc) (geometry.Mesh, error) {
	var tris []geometry.Triangle
	switch od.Kind {
	case "quad":
		w, h := 1.0, 1.0
		if len(od.Size) >= 1 && od.Size[0] > 0 {
			w = od.Size[0]
		}
		if len(od.Size) >= 2 && od.Size[1] > 0 {
			h = od.Size[1]
		}
		tris = quadTriangles(w, h)
	case "box":
		sx, sy, sz := 1.0, 1.0, 1.0
		if len(od.Size) >= 3 {
			if od.Size[0] > 0 {
				sx = od.Size[0]
			}
			if od.Size[1] > 0 {
				sy = od.Size[1]
			}
			if od.Size[2] > 0 {
				sz = od.Size[2]
			}
		}
		tris = boxTriangles(sx, sy, sz)
	case "triangles":
		var err error
		tris, err = rawTriangles(od.Vertices)
		if err != nil {
			return geometry.Mesh{}, err
		}
	default:
		return geometry.Mesh{}, fmt.Errorf("unknown object kind %q", od.Kind)
	}

	transform := bakeTransform(od.Position, od.RotationDeg, od.Scale)
	for i := range tris {
		tris[i].A = transform.TransformPoint(tris[i].A)
		tris[i].B = transform.TransformPoint(tris[i].B)
		tris[i].C = transform.TransformPoint(tris[i].C)
	}

	return geometry.Mesh{Name: od.Name, Triangles: tris, Helper: od.Helper}, nil
}

// bakeTransform composes translate * rotateZ * rotateY * rotateX * scale.
func bakeTransform(position, rotationDeg, scale []float64) math.Mat4 {
	m := math.Identity()
	if len(position) == 3 {
		m = math.Translate(position[0], position[1], position[2])
	}
	if len(rotationDeg) == 3 {
		rad := func(deg float64) float64 { return deg * gomath.Pi / 180.0 }
		m = m.Mul(math.RotateZ(rad(rotationDeg[2]))).
			Mul(math.RotateY(rad(rotationDeg[1]))).
			Mul(math.RotateX(rad(rotationDeg[0])))
	}
	if len(scale) == 3 {
		m = m.Mul(math.Scale(scale[0], scale[1], scale[2]))
	}
	return m
}

// quadTriangles returns a width x height quad in the XY plane, centered at
// the origin, facing +Z, split along the (-,-)→(+,+) diagonal.
func quadTriangles(width, height float64) []geometry.Triangle {
	hw, hh := width/2, height/2
	bl := math.Vec3{X: -hw, Y: -hh}
	br := math.Vec3{X: hw, Y: -hh}
	tr := math.Vec3{X: hw, Y: hh}
	tl := math.Vec3{X: -hw, Y: hh}
	return []geometry.Triangle{
		{A: bl, B: br, C: tr},
		{A: bl, B: tr, C: tl},
	}
}

// boxTriangles returns an axis-aligned box centered at the origin with
// outward-facing normals, 12 triangles.
func boxTriangles(sx, sy, sz float64) []geometry.Triangle {
	hx, hy, hz := sx/2, sy/2, sz/2

	corner := func(x, y, z float64) math.Vec3 {
		return math.Vec3{X: x * hx, Y: y * hy, Z: z * hz}
	}

	// Each face as four corners in CCW order seen from outside.
	faces := [6][4]math.Vec3{
		{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)},     // +Z
		{corner(1, -1, -1), corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1)}, // -Z
		{corner(1, -1, 1), corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1)},     // +X
		{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)}, // -X
		{corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1), corner(-1, 1, -1)},     // +Y
		{corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)}, // -Y
	}

	tris := make([]geometry.Triangle, 0, 12)
	for _, f := range faces {
		tris = append(tris,
			geometry.Triangle{A: f[0], B: f[1], C: f[2]},
			geometry.Triangle{A: f[0], B: f[2], C: f[3]},
		)
	}
	return tris
}

// rawTriangles consumes explicit [x, y, z] vertex triples, three per
// triangle.
func rawTriangles(vertices [][]float64) ([]geometry.Triangle, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("vertex count %d is not a multiple of 3", len(vertices))
	}
	tris := make([]geometry.Triangle, 0, len(vertices)/3)
	for i := 0; i < len(vertices); i += 3 {
		a, okA := vec3From(vertices[i])
		b, okB := vec3From(vertices[i+1])
		c, okC := vec3From(vertices[i+2])
		if !okA || !okB || !okC {
			return nil, fmt.Errorf("vertex %d: must be [x, y, z]", i)
		}
		tris = append(tris, geometry.Triangle{A: a, B: b, C: c})
	}
	return tris, nil
}
