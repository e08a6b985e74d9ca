// Package hatch generates pen-plottable hatch-line segments on lit
// triangle surfaces by sweeping cutting planes across the scene.
package hatch

import (
	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/lighting"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// Segment is a single hatch chord lying on one triangle for one light.
type Segment struct {
	Start, End math.Vec3
}

// Path is an ordered, non-empty run of connected segments. The generator
// emits one segment per path; joining collinear neighbors into longer
// polylines is a plotting optimization left to later passes.
type Path struct {
	Segments []Segment
}

const (
	// directionalDensity scales master-line count for directional lights:
	// n = max(1, floor(intensity * scanRange * directionalDensity)).
	directionalDensity = 20.0

	// Spot lights derive their count from intensity alone.
	spotLineFactor = 20.0
	minSpotLines   = 5

	// Segments shorter than this (squared) are degenerate and dropped.
	minSegmentLengthSq = 1e-4

	// Intersection points closer than this (squared) collapse into one.
	pointMergeDistSq = 1e-12

	parallelAxisLimit = 0.99
	minBasisLengthSq  = 0.1
	minScanRange      = 1e-3
	planeEps          = 1e-9
)

// Generate computes hatch paths for every (light, lit triangle) pair.
// It is a pure function of its inputs: no state survives the call, and
// identical inputs yield identical output. Degenerate configurations
// contribute nothing rather than failing the whole computation.
func Generate(meshes []geometry.Mesh, lights []lighting.Light) []Path {
	bounds, ok := geometry.UnionBounds(meshes)
	if !ok {
		return nil
	}

	var paths []Path
	for _, l := range lights {
		paths = append(paths, generateForLight(meshes, l, bounds)...)
	}
	return paths
}

func generateForLight(meshes []geometry.Mesh, l lighting.Light, bounds geometry.AABB) []Path {
	origin, dir, ok := lighting.Ray(l)
	if !ok {
		return nil
	}

	h, s, ok := hatchBasis(dir, lighting.HatchAngle(l))
	if !ok {
		return nil
	}

	p0 := bounds.Center()
	minScan, maxScan, ok := scanExtent(meshes, p0, dir, s)
	if !ok {
		return nil
	}
	scanRange := maxScan - minScan

	n := lineCount(l, scanRange)
	if n == 0 {
		return nil
	}
	spacing := scanRange / float64(n+1)

	spot, isSpot := l.(lighting.Spot)
	var spotFilter *lighting.Spot
	if isSpot {
		spotFilter = &spot
	}

	var paths []Path
	for i := 1; i <= n; i++ {
		var plane math.Plane
		if isSpot {
			plane, ok = spotCuttingPlane(spot, origin, dir, h, s, i, n)
		} else {
			offset := minScan + spacing*float64(i)
			plane = math.PlaneFromPointNormal(p0.Add(s.Scale(offset)), s)
			ok = true
		}
		if !ok {
			continue
		}

		required := lighting.RequiredAlignment(i)
		for _, mesh := range meshes {
			if mesh.Helper {
				continue
			}
			for _, tri := range mesh.Triangles {
				align, eligible := lighting.Alignment(l, tri)
				if !eligible || align < required {
					continue
				}
				pts := clipTriangle(plane, tri, spotFilter)
				if seg, found := segmentFromPoints(pts, h); found {
					paths = append(paths, Path{Segments: []Segment{seg}})
				}
			}
		}
	}
	return paths
}
