package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/export"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/lighting"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

const basicScene = `
camera:
  position: [0, 0, 5]
  look_at: [0, 0, 0]
  fov_deg: 60
  aspect: 1.0
lights:
  - kind: directional
    position: [0, 0, 5]
    target: [0, 0, 0]
    intensity: 0.5
objects:
  - name: floor
    kind: quad
    size: [2, 2]
`

func TestParseBasicScene(t *testing.T) {
	s, err := Parse([]byte(basicScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := len(s.Meshes()); got != 1 {
		t.Fatalf("mesh count = %d, want 1", got)
	}
	if got := len(s.Lights()); got != 1 {
		t.Fatalf("light count = %d, want 1", got)
	}

	cam := s.Camera()
	if cam.Position != (math.Vec3{Z: 5}) {
		t.Errorf("camera position = %v", cam.Position)
	}
	if cam.Aspect != 1.0 {
		t.Errorf("camera aspect = %f", cam.Aspect)
	}

	mesh := s.Meshes()[0]
	if mesh.Name != "floor" || len(mesh.Triangles) != 2 {
		t.Errorf("mesh = %q with %d triangles", mesh.Name, len(mesh.Triangles))
	}

	l, ok := s.Lights()[0].(lighting.Directional)
	if !ok {
		t.Fatalf("light type = %T, want Directional", s.Lights()[0])
	}
	if l.Intensity != 0.5 {
		t.Errorf("intensity = %f", l.Intensity)
	}
}

func TestParsePathsEndToEnd(t *testing.T) {
	s, err := Parse([]byte(basicScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	paths := s.Paths()
	if len(paths) == 0 {
		t.Fatal("expected hatch paths from the lit quad")
	}
	if s.Dirty() {
		t.Error("scene should be clean after Paths")
	}
}

func TestDirtyFlag(t *testing.T) {
	s := New()
	if !s.Dirty() {
		t.Fatal("fresh scene should start dirty")
	}

	first := s.Paths()
	if len(first) != 0 {
		t.Errorf("empty scene should have no paths, got %d", len(first))
	}
	if s.Dirty() {
		t.Fatal("Paths should clear the dirty flag")
	}

	s.AddMesh(geometry.Mesh{Name: "quad", Triangles: []geometry.Triangle{
		{A: math.Vec3{X: -1, Y: -1}, B: math.Vec3{X: 1, Y: -1}, C: math.Vec3{X: 1, Y: 1}},
		{A: math.Vec3{X: -1, Y: -1}, B: math.Vec3{X: 1, Y: 1}, C: math.Vec3{X: -1, Y: 1}},
	}})
	if !s.Dirty() {
		t.Fatal("AddMesh should mark the scene dirty")
	}
	s.AddLight(lighting.Directional{Position: math.Vec3{Z: 5}, Intensity: 1})

	recomputed := s.Paths()
	if len(recomputed) == 0 {
		t.Error("expected paths after adding geometry and a light")
	}

	// No mutation: the cached slice comes back untouched.
	again := s.Paths()
	if &again[0] != &recomputed[0] {
		t.Error("clean scene should return the cached paths")
	}
}

func TestParseLightDefaults(t *testing.T) {
	s, err := Parse([]byte(`
lights:
  - kind: spot
    position: [0, 1, 4]
    target: [0, 0, 0]
    cone_half_angle_deg: 25
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l, ok := s.Lights()[0].(lighting.Spot)
	if !ok {
		t.Fatalf("light type = %T, want Spot", s.Lights()[0])
	}
	if l.Intensity != 1.0 {
		t.Errorf("omitted intensity should default to 1, got %f", l.Intensity)
	}
	if l.ConeHalfAngleDeg != 25 {
		t.Errorf("cone half angle = %f", l.ConeHalfAngleDeg)
	}
}

func TestParseUnknownLightKind(t *testing.T) {
	_, err := Parse([]byte(`
lights:
  - kind: area
    position: [0, 0, 5]
    target: [0, 0, 0]
`))
	if err == nil {
		t.Fatal("unknown light kind should fail")
	}
	if !strings.Contains(err.Error(), "area") {
		t.Errorf("error should name the kind: %v", err)
	}
}

func TestParseUnknownObjectKind(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  - name: blob
    kind: sphere
`))
	if err == nil {
		t.Fatal("unknown object kind should fail")
	}
}

func TestParseRawTriangles(t *testing.T) {
	s, err := Parse([]byte(`
objects:
  - name: wedge
    kind: triangles
    vertices:
      - [0, 0, 0]
      - [1, 0, 0]
      - [0, 1, 0]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(s.Meshes()[0].Triangles); got != 1 {
		t.Errorf("triangle count = %d, want 1", got)
	}
}

func TestParseRawTrianglesBadCount(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  - name: wedge
    kind: triangles
    vertices:
      - [0, 0, 0]
      - [1, 0, 0]
`))
	if err == nil {
		t.Fatal("vertex count not a multiple of 3 should fail")
	}
}

func TestParseBoxWithTransform(t *testing.T) {
	s, err := Parse([]byte(`
objects:
  - name: crate
    kind: box
    size: [2, 2, 2]
    position: [0, 0, 10]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mesh := s.Meshes()[0]
	if len(mesh.Triangles) != 12 {
		t.Fatalf("box triangle count = %d, want 12", len(mesh.Triangles))
	}
	bounds, ok := geometry.UnionBounds(s.Meshes())
	if !ok {
		t.Fatal("expected bounds")
	}
	if c := bounds.Center(); c.Distance(math.Vec3{Z: 10}) > 1e-9 {
		t.Errorf("translated box center = %v, want (0, 0, 10)", c)
	}
	if bounds.Max.X-bounds.Min.X != 2 {
		t.Errorf("box width = %f, want 2", bounds.Max.X-bounds.Min.X)
	}
}

func TestParseHelperObject(t *testing.T) {
	s, err := Parse([]byte(`
camera:
  position: [0, 0, 5]
lights:
  - kind: directional
    position: [0, 0, 5]
    target: [0, 0, 0]
objects:
  - name: grid
    kind: quad
    helper: true
    size: [10, 10]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !s.Meshes()[0].Helper {
		t.Fatal("helper flag not carried through")
	}
	if paths := s.Paths(); len(paths) != 0 {
		t.Errorf("helper-only scene should produce no paths, got %d", len(paths))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(basicScene), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Meshes()) != 1 || len(s.Lights()) != 1 {
		t.Errorf("meshes = %d, lights = %d", len(s.Meshes()), len(s.Lights()))
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestExportSVG(t *testing.T) {
	s, err := Parse([]byte(basicScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc := s.ExportSVG(800, 600, export.DefaultStyle())
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "<polyline") {
		t.Error("export should contain an svg document with polylines")
	}
}
