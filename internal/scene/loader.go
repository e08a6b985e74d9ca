package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/camera"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/lighting"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// sceneDoc is the YAML shape of a scene file.
type sceneDoc struct {
	Camera  *cameraDoc  `yaml:"camera"`
	Lights  []lightDoc  `yaml:"lights"`
	Objects []objectDoc `yaml:"objects"`
}

type cameraDoc struct {
	Position []float64 `yaml:"position"`
	LookAt   []float64 `yaml:"look_at"`
	FovDeg   float64   `yaml:"fov_deg"`
	Near     float64   `yaml:"near"`
	Far      float64   `yaml:"far"`
	Aspect   float64   `yaml:"aspect"`
}

type lightDoc struct {
	Kind             string    `yaml:"kind"`
	Position         []float64 `yaml:"position"`
	Target           []float64 `yaml:"target"`
	HatchAngleDeg    float64   `yaml:"hatch_angle_deg"`
	Intensity        float64   `yaml:"intensity"`
	ConeHalfAngleDeg float64   `yaml:"cone_half_angle_deg"`
}

type objectDoc struct {
	Name        string      `yaml:"name"`
	Kind        string      `yaml:"kind"`
	Helper      bool        `yaml:"helper"`
	Position    []float64   `yaml:"position"`
	RotationDeg []float64   `yaml:"rotation_deg"`
	Scale       []float64   `yaml:"scale"`
	Size        []float64   `yaml:"size"`
	Vertices    [][]float64 `yaml:"vertices"`
}

// Load reads a YAML scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML bytes. Object transforms are baked into
// world-space triangles here; the engine never sees transforms.
func Parse(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	s := New()

	if doc.Camera != nil {
		cam := camera.Default()
		if v, ok := vec3From(doc.Camera.Position); ok {
			cam.Position = v
		}
		if v, ok := vec3From(doc.Camera.LookAt); ok {
			cam.LookAt = v
		}
		if doc.Camera.FovDeg > 0 {
			cam.FovDeg = doc.Camera.FovDeg
		}
		if doc.Camera.Near > 0 {
			cam.Near = doc.Camera.Near
		}
		if doc.Camera.Far > 0 {
			cam.Far = doc.Camera.Far
		}
		if doc.Camera.Aspect > 0 {
			cam.Aspect = doc.Camera.Aspect
		}
		s.SetCamera(cam)
	}

	for i, ld := range doc.Lights {
		l, err := buildLight(ld)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(l)
	}

	for i, od := range doc.Objects {
		m, err := buildMesh(od)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, od.Name, err)
		}
		s.AddMesh(m)
	}

	return s, nil
}

func buildLight(ld lightDoc) (lighting.Light, error) {
	pos, ok := vec3From(ld.Position)
	if !ok {
		return nil, fmt.Errorf("position must be [x, y, z]")
	}
	target, ok := vec3From(ld.Target)
	if !ok {
		return nil, fmt.Errorf("target must be [x, y, z]")
	}
	intensity := ld.Intensity
	if intensity <= 0 {
		intensity = 1.0
	}

	switch ld.Kind {
	case "directional":
		return lighting.Directional{
			Position:      pos,
			Target:        target,
			HatchAngleDeg: ld.HatchAngleDeg,
			Intensity:     intensity,
		}, nil
	case "spot":
		return lighting.Spot{
			Position:         pos,
			Target:           target,
			HatchAngleDeg:    ld.HatchAngleDeg,
			Intensity:        intensity,
			ConeHalfAngleDeg: ld.ConeHalfAngleDeg,
		}, nil
	default:
		return nil, fmt.Errorf("unknown light kind %q", ld.Kind)
	}
}

func vec3From(v []float64) (math.Vec3, bool) {
	if len(v) != 3 {
		return math.Vec3{}, false
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, true
}
