package export

import (
	"fmt"
	"strings"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/camera"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/hatch"
)

// Style controls how paths are stroked. The stroke color is resolved by the
// caller from its theme.
type Style struct {
	StrokeWidth float64
	Stroke      string
}

// DefaultStyle returns plotter-friendly stroke settings.
func DefaultStyle() Style {
	return Style{
		StrokeWidth: 1.0,
		Stroke:      "#1a1a1a",
	}
}

// SVG serializes the paths as a self-contained SVG document of the given
// pixel size. One polyline per path; a wrapping group moves the origin to
// the center and flips Y so the projected coordinates plot upright.
func SVG(paths []hatch.Path, cam *camera.Camera, width, height uint32, style Style) string {
	viewProj := cam.ViewProjection()
	w := float64(width)
	h := float64(height)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&b, `<g transform="translate(%g,%g) scale(1,-1)" fill="none" stroke="%s" stroke-width="%g">`+"\n",
		w/2, h/2, style.Stroke, style.StrokeWidth)

	for _, path := range paths {
		if len(path.Segments) == 0 {
			continue
		}
		b.WriteString(`<polyline points="`)
		first := ProjectPoint(path.Segments[0].Start, viewProj, w, h)
		fmt.Fprintf(&b, "%.3f,%.3f", first.X, first.Y)
		for _, seg := range path.Segments {
			end := ProjectPoint(seg.End, viewProj, w, h)
			fmt.Fprintf(&b, " %.3f,%.3f", end.X, end.Y)
		}
		b.WriteString("\"/>\n")
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String()
}
