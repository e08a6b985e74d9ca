// Package preview renders projected 2D hatch paths into an OpenGL window
// so a plot can be inspected before export.
package preview

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/neurofuzzy/hatchplot3d/internal/engine/camera"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/export"
	"github.com/neurofuzzy/hatchplot3d/internal/engine/hatch"
	"github.com/neurofuzzy/hatchplot3d/internal/logger"
	"github.com/neurofuzzy/hatchplot3d/pkg/math"
)

// Renderer draws line segments in device coordinates (origin at center,
// Y up) with a single flat-color shader.
type Renderer struct {
	width  int
	height int

	program uint32
	vao     uint32
	vbo     uint32

	// Interleaved x, y per endpoint.
	vertices []float32

	foreground Color
	background Color
}

// New initializes OpenGL and builds the line pipeline. Requires a current
// GL context.
func New(width, height int, foreground, background Color) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	logger.Info("OpenGL initialized", zap.String("version", version))

	r := &Renderer{
		width:      width,
		height:     height,
		foreground: foreground,
		background: background,
	}

	var err error
	r.program, err = compileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create line shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex format: pos(2) = 2 floats, 8 bytes
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return r, nil
}

// SetPaths projects the paths through the camera and replaces the line
// vertex buffer.
func (r *Renderer) SetPaths(paths []hatch.Path, cam *camera.Camera) {
	viewProj := cam.ViewProjection()
	w := float64(r.width)
	h := float64(r.height)

	r.vertices = r.vertices[:0]
	push := func(p math.Vec2) {
		r.vertices = append(r.vertices, float32(p.X), float32(p.Y))
	}
	for _, path := range paths {
		for _, seg := range path.Segments {
			push(export.ProjectPoint(seg.Start, viewProj, w, h))
			push(export.ProjectPoint(seg.End, viewProj, w, h))
		}
	}
}

// Draw clears the frame and draws the current lines.
func (r *Renderer) Draw() {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(r.background.R, r.background.G, r.background.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if len(r.vertices) == 0 {
		return
	}

	// Device coordinates already have the origin at center and Y up, so
	// the projection is a plain centered ortho.
	w := float64(r.width)
	h := float64(r.height)
	proj := math.Ortho(-w/2, w/2, -h/2, h/2, -1, 1).Float32()

	gl.UseProgram(r.program)
	projLoc := gl.GetUniformLocation(r.program, gl.Str("uProjection\x00"))
	gl.UniformMatrix4fv(projLoc, 1, false, &proj[0])
	colorLoc := gl.GetUniformLocation(r.program, gl.Str("uColor\x00"))
	gl.Uniform4f(colorLoc, r.foreground.R, r.foreground.G, r.foreground.B, 1)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(r.vertices)/2))

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

const lineVertexShader = `
	#version 410 core

	layout (location = 0) in vec2 aPos;

	uniform mat4 uProjection;

	void main() {
		gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	}
`

const lineFragmentShader = `
	#version 410 core

	uniform vec4 uColor;
	out vec4 FragColor;

	void main() {
		FragColor = uColor;
	}
`
