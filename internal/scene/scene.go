// Package scene owns the editable scene document: meshes, lights, and the
// camera, plus the dirty flag that gates hatch recomputation. The engine
// itself is pull-based; mutations here only mark the scene dirty, and the
// next Paths call recomputes from scratch.
package scene

import (
	"github.com/neurofuzzy/hatchplot3d/internal/engine"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/camera"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/export"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/hatch"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/lighting"
)

// Scene holds the hatchable world. The zero value is unusable; use New or
// Load.
type Scene struct {
	meshes []geometry.Mesh
	lights []lighting.Light
	cam    camera.Camera

	dirty bool
	paths []hatch.Path
}

// New returns an empty scene with a default camera.
func New() *Scene {
	return &Scene{
		cam:   camera.Default(),
		dirty: true,
	}
}

// AddMesh appends a mesh and marks the scene dirty.
func (s *Scene) AddMesh(m geometry.Mesh) {
	s.meshes = append(s.meshes, m)
	s.dirty = true
}

// AddLight appends a light and marks the scene dirty.
func (s *Scene) AddLight(l lighting.Light) {
	s.lights = append(s.lights, l)
	s.dirty = true
}

// SetCamera replaces the camera and marks the scene dirty.
func (s *Scene) SetCamera(c camera.Camera) {
	s.cam = c
	s.dirty = true
}

// Meshes returns the scene's meshes.
func (s *Scene) Meshes() []geometry.Mesh { return s.meshes }

// Lights returns the scene's lights.
func (s *Scene) Lights() []lighting.Light { return s.lights }

// Camera returns the scene's camera.
func (s *Scene) Camera() *camera.Camera { return &s.cam }

// MarkDirty forces the next Paths call to recompute.
func (s *Scene) MarkDirty() { s.dirty = true }

// Dirty reports whether a recompute is pending.
func (s *Scene) Dirty() bool { return s.dirty }

// Paths returns the hatch paths, recomputing if anything changed since the
// last call.
func (s *Scene) Paths() []hatch.Path {
	if s.dirty {
		s.paths = engine.GenerateHatchLines(s.meshes, s.lights, &s.cam)
		s.dirty = false
	}
	return s.paths
}

// ExportSVG serializes the current paths through the scene camera.
func (s *Scene) ExportSVG(width, height uint32, style export.Style) string {
	return engine.ExportToVectorFormat(s.Paths(), &s.cam, width, height, style)
}
