package geometry

import (
	"testing"

	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

func TestAABBExtend(t *testing.T) {
	box := EmptyAABB()
	if !box.IsEmpty() {
		t.Fatal("fresh box should be empty")
	}

	box = box.Extend(math.Vec3{X: 1, Y: 2, Z: 3})
	box = box.Extend(math.Vec3{X: -1, Y: 0, Z: 5})

	if box.IsEmpty() {
		t.Fatal("extended box should not be empty")
	}
	if box.Min != (math.Vec3{X: -1, Y: 0, Z: 3}) {
		t.Errorf("Min = %v", box.Min)
	}
	if box.Max != (math.Vec3{X: 1, Y: 2, Z: 5}) {
		t.Errorf("Max = %v", box.Max)
	}
	if c := box.Center(); c != (math.Vec3{X: 0, Y: 1, Z: 4}) {
		t.Errorf("Center = %v", c)
	}
}

func TestUnionBounds(t *testing.T) {
	tri := Triangle{
		A: math.Vec3{X: -1, Y: -1},
		B: math.Vec3{X: 1, Y: -1},
		C: math.Vec3{X: 1, Y: 1},
	}
	meshes := []Mesh{
		{Name: "quad", Triangles: []Triangle{tri}},
		{Name: "grid", Helper: true, Triangles: []Triangle{{
			A: math.Vec3{X: -100},
			B: math.Vec3{X: 100},
			C: math.Vec3{Y: 100},
		}}},
	}

	box, ok := UnionBounds(meshes)
	if !ok {
		t.Fatal("expected bounds from the non-helper mesh")
	}
	if box.Min.X != -1 || box.Max.X != 1 {
		t.Errorf("helper geometry leaked into bounds: %v", box)
	}
}

func TestUnionBoundsHelpersOnly(t *testing.T) {
	meshes := []Mesh{
		{Name: "grid", Helper: true, Triangles: []Triangle{{
			B: math.Vec3{X: 1},
			C: math.Vec3{Y: 1},
		}}},
	}
	if _, ok := UnionBounds(meshes); ok {
		t.Error("helper-only scenes should have no bounds")
	}
	if _, ok := UnionBounds(nil); ok {
		t.Error("empty scenes should have no bounds")
	}
}
