package hatch

import (
	gomath "math"
	"sort"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/lighting"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// hatchBasis builds the hatch-line direction h and the scan direction s
// for a light ray direction. The starting axis walks X, Y, Z until one is
// not nearly parallel to the ray and survives projection onto the plane
// perpendicular to it; h is then rotated about the ray by angle (radians).
// Returns false when no stable basis exists.
func hatchBasis(dir math.Vec3, angle float64) (h, s math.Vec3, ok bool) {
	axes := [3]math.Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}

	var projected math.Vec3
	found := false
	for _, axis := range axes {
		d := axis.Dot(dir)
		if d > parallelAxisLimit || d < -parallelAxisLimit {
			continue
		}
		projected = axis.Sub(dir.Scale(d))
		if projected.LengthSq() >= minBasisLengthSq {
			found = true
			break
		}
	}
	if !found {
		return math.Vec3{}, math.Vec3{}, false
	}

	h = projected.Normalize()
	if angle != 0 {
		h = math.RotateAxis(dir, angle).TransformDirection(h)
	}

	cross := h.Cross(dir)
	if cross.LengthSq() < minBasisLengthSq {
		return math.Vec3{}, math.Vec3{}, false
	}
	return h, cross.Normalize(), true
}

// scanExtent projects every non-helper vertex onto the scan direction,
// through the plane passing p0 perpendicular to the ray, and returns the
// covered range. Returns false when the range is too small to sweep.
func scanExtent(meshes []geometry.Mesh, p0, dir, s math.Vec3) (minScan, maxScan float64, ok bool) {
	first := true
	project := func(v math.Vec3) {
		rel := v.Sub(p0)
		planar := rel.Sub(dir.Scale(rel.Dot(dir)))
		coord := planar.Dot(s)
		if first || coord < minScan {
			minScan = coord
		}
		if first || coord > maxScan {
			maxScan = coord
		}
		first = false
	}

	for _, m := range meshes {
		if m.Helper {
			continue
		}
		for _, tri := range m.Triangles {
			project(tri.A)
			project(tri.B)
			project(tri.C)
		}
	}
	if first || maxScan-minScan < minScanRange {
		return 0, 0, false
	}
	return minScan, maxScan, true
}

// lineCount returns the number of master scan lines for a light. Spot
// counts depend on intensity alone; directional counts scale with the
// scene's scan range.
func lineCount(l lighting.Light, scanRange float64) int {
	switch v := l.(type) {
	case lighting.Spot:
		n := int(gomath.Floor(v.Intensity * spotLineFactor))
		if n < minSpotLines {
			n = minSpotLines
		}
		return n
	case lighting.Directional:
		n := int(gomath.Floor(v.Intensity * scanRange * directionalDensity))
		if n < 1 {
			n = 1
		}
		return n
	}
	return 0
}

// spotCuttingPlane builds the i-th radial cutting plane for a spot light:
// the plane through the cone's apex and two points symmetric about the
// scan offset on the near plane, so every slice passes through the apex.
func spotCuttingPlane(spot lighting.Spot, origin, dir, h, s math.Vec3, i, n int) (math.Plane, bool) {
	halfAngle := spot.ConeHalfAngleDeg * gomath.Pi / 180.0
	halfWidth := lighting.SpotNearDistance * gomath.Tan(halfAngle)
	if halfWidth <= 0 {
		return math.Plane{}, false
	}

	center := origin.Add(dir.Scale(lighting.SpotNearDistance))
	offset := -halfWidth + float64(i)*(2*halfWidth/float64(n+1))
	at := center.Add(s.Scale(offset))

	p1 := at.Add(h.Scale(halfWidth))
	p2 := at.Sub(h.Scale(halfWidth))
	return math.PlaneFromPoints(origin, p1, p2, planeEps)
}

// clipTriangle intersects the cutting plane with the triangle's three
// bounded edges, applying the spot's near/cone filters when present, and
// merges near-coincident points.
func clipTriangle(plane math.Plane, tri geometry.Triangle, spot *lighting.Spot) []math.Vec3 {
	var pts []math.Vec3
	for _, edge := range tri.Edges() {
		p, ok := plane.IntersectSegment(edge[0], edge[1], planeEps)
		if !ok {
			continue
		}
		if spot != nil && (!spot.BeyondNear(p) || !spot.Contains(p)) {
			continue
		}
		dup := false
		for _, q := range pts {
			if q.DistanceSq(p) < pointMergeDistSq {
				dup = true
				break
			}
		}
		if !dup {
			pts = append(pts, p)
		}
	}
	return pts
}

// segmentFromPoints reduces the clipped points to one chord. Two points
// form the segment directly; more than two (coplanar edge cases) keep the
// extremes along the hatch direction. Degenerate chords are dropped.
func segmentFromPoints(pts []math.Vec3, h math.Vec3) (Segment, bool) {
	switch {
	case len(pts) < 2:
		return Segment{}, false
	case len(pts) > 2:
		sort.Slice(pts, func(i, j int) bool {
			return pts[i].Dot(h) < pts[j].Dot(h)
		})
		pts = []math.Vec3{pts[0], pts[len(pts)-1]}
	}
	if pts[0].DistanceSq(pts[1]) < minSegmentLengthSq {
		return Segment{}, false
	}
	return Segment{Start: pts[0], End: pts[1]}, true
}
