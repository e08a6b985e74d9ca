package export

import (
	"strings"
	"testing"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/camera"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/hatch"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

func TestProjectPointIdentity(t *testing.T) {
	id := math.Identity()

	p := ProjectPoint(math.Vec3{}, id, 800, 600)
	if p.X != 0 || p.Y != 0 {
		t.Errorf("origin should project to (0, 0), got %v", p)
	}

	p = ProjectPoint(math.Vec3{X: 1, Y: 1}, id, 800, 600)
	if p.X != 400 || p.Y != 300 {
		t.Errorf("NDC corner should scale to half the viewport, got %v", p)
	}

	p = ProjectPoint(math.Vec3{X: -1, Y: 0.5}, id, 800, 600)
	if p.X != -400 || p.Y != 150 {
		t.Errorf("ProjectPoint = %v, want (-400, 150)", p)
	}
}

func TestProjectPointCamera(t *testing.T) {
	cam := camera.Camera{
		Position: math.Vec3{Z: 5},
		LookAt:   math.Vec3{},
		FovDeg:   60,
		Near:     0.1,
		Far:      100,
		Aspect:   1,
	}
	p := ProjectPoint(cam.LookAt, cam.ViewProjection(), 800, 600)
	if p.X > 1e-6 || p.X < -1e-6 || p.Y > 1e-6 || p.Y < -1e-6 {
		t.Errorf("look-at point should land on the viewport center, got %v", p)
	}
}

func TestSVGDocument(t *testing.T) {
	cam := camera.Default()
	paths := []hatch.Path{
		{Segments: []hatch.Segment{{
			Start: math.Vec3{X: -1},
			End:   math.Vec3{X: 1},
		}}},
		{Segments: []hatch.Segment{{
			Start: math.Vec3{Y: -1},
			End:   math.Vec3{Y: 1},
		}}},
	}

	doc := SVG(paths, &cam, 800, 600, DefaultStyle())

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="800" height="600"`,
		`translate(400,300) scale(1,-1)`,
		`stroke="#1a1a1a"`,
		`stroke-width="1"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if got := strings.Count(doc, "<polyline"); got != 2 {
		t.Errorf("polyline count = %d, want 2", got)
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestSVGSkipsEmptyPaths(t *testing.T) {
	cam := camera.Default()
	paths := []hatch.Path{
		{},
		{Segments: []hatch.Segment{{
			Start: math.Vec3{X: -1},
			End:   math.Vec3{X: 1},
		}}},
	}

	doc := SVG(paths, &cam, 400, 400, DefaultStyle())
	if got := strings.Count(doc, "<polyline"); got != 1 {
		t.Errorf("polyline count = %d, want 1", got)
	}
}

func TestSVGStyle(t *testing.T) {
	cam := camera.Default()
	style := Style{StrokeWidth: 0.5, Stroke: "#ff0000"}

	doc := SVG(nil, &cam, 100, 100, style)
	if !strings.Contains(doc, `stroke="#ff0000"`) {
		t.Error("custom stroke color not applied")
	}
	if !strings.Contains(doc, `stroke-width="0.5"`) {
		t.Error("custom stroke width not applied")
	}
}
