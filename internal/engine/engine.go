// Package engine exposes the two entry points collaborators use: hatch
// generation and vector export. The engine holds no state between calls.
package engine

import (
	"github.com/neurofuzzy/hatchplot3d/internal/engine/camera"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/export"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/hatch"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/lighting"
)

// GenerateHatchLines computes hatch paths for the scene. Generation itself
// is camera independent; the camera is part of the invocation contract so a
// caller re-running on any scene change (objects, lights, or camera) passes
// the same inputs to both entry points.
func GenerateHatchLines(meshes []geometry.Mesh, lights []lighting.Light, cam *camera.Camera) []hatch.Path {
	_ = cam
	return hatch.Generate(meshes, lights)
}

// ExportToVectorFormat serializes paths as an SVG document sized exactly
// width x height, projected through the camera.
func ExportToVectorFormat(paths []hatch.Path, cam *camera.Camera, width, height uint32, style export.Style) string {
	return export.SVG(paths, cam, width, height, style)
}
