package lighting

import (
	"github.com/neurofuzzy/hatchplot3d/internal/engine/geometry"
)

// facingThreshold excludes triangles edge-on to the light, not just those
// facing away: eligibility requires dot(normal, ray) strictly below it.
const facingThreshold = -0.01

// Alternating density thresholds: even-indexed master lines hatch only
// strongly lit faces, odd-indexed lines include near-grazing ones. The
// alternation is the crosshatch-density effect, not a rounding artifact.
const (
	evenLineAlignment = 0.5
	oddLineAlignment  = 0.1
)

// Alignment returns the effective alignment of tri under l, in [0, 1], and
// whether the triangle is eligible for hatching at all. Degenerate
// triangles, back/edge-on faces, and (for spots) centroids outside the cone
// are not eligible.
func Alignment(l Light, tri geometry.Triangle) (float64, bool) {
	n, ok := tri.Normal()
	if !ok {
		return 0, false
	}
	_, dir, ok := Ray(l)
	if !ok {
		return 0, false
	}

	facing := n.Dot(dir)
	if facing >= facingThreshold {
		return 0, false
	}
	align := -facing

	if spot, isSpot := l.(Spot); isSpot {
		centroid := tri.Centroid()
		if !spot.Contains(centroid) {
			return 0, false
		}
		to := centroid.Sub(spot.Position)
		if to.LengthSq() == 0 {
			return align, true
		}
		cosAngle := to.Normalize().Dot(dir)
		align *= cosAngle * cosAngle
	}
	return align, true
}

// RequiredAlignment returns the alignment threshold for the 1-based master
// scan line index.
func RequiredAlignment(lineIndex int) float64 {
	if lineIndex%2 == 0 {
		return evenLineAlignment
	}
	return oddLineAlignment
}
