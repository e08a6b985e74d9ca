package camera

import (
	"testing"

	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

func frontCamera() Camera {
	return Camera{
		Position: math.Vec3{Z: 5},
		LookAt:   math.Vec3{},
		FovDeg:   60,
		Near:     0.1,
		Far:      100,
		Aspect:   1,
	}
}

func TestViewProjectionCenter(t *testing.T) {
	cam := frontCamera()
	ndc := cam.ViewProjection().TransformPoint(cam.LookAt)
	if ndc.X > 1e-9 || ndc.X < -1e-9 || ndc.Y > 1e-9 || ndc.Y < -1e-9 {
		t.Errorf("look-at point should project to the NDC center, got %v", ndc)
	}
}

func TestViewProjectionOrientation(t *testing.T) {
	cam := frontCamera()
	vp := cam.ViewProjection()

	right := vp.TransformPoint(math.Vec3{X: 1})
	if right.X <= 0 {
		t.Errorf("point right of center should have positive NDC x, got %v", right)
	}
	up := vp.TransformPoint(math.Vec3{Y: 1})
	if up.Y <= 0 {
		t.Errorf("point above center should have positive NDC y, got %v", up)
	}
}

func TestPerspectiveDepthShrinks(t *testing.T) {
	cam := frontCamera()
	vp := cam.ViewProjection()

	nearPt := vp.TransformPoint(math.Vec3{X: 1})
	farPt := vp.TransformPoint(math.Vec3{X: 1, Z: -5})
	if farPt.X >= nearPt.X {
		t.Errorf("distant point should project closer to center: near %f, far %f", nearPt.X, farPt.X)
	}
}

func TestDefault(t *testing.T) {
	cam := Default()
	if cam.FovDeg != 60 {
		t.Errorf("FovDeg = %f, want 60", cam.FovDeg)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		t.Errorf("invalid clip range: near %f, far %f", cam.Near, cam.Far)
	}
	if cam.Aspect != 4.0/3.0 {
		t.Errorf("Aspect = %f", cam.Aspect)
	}
}
