// Package renderer draws the scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/shader/glsl"
	"github.com/Faultbox/orrery/internal/logger"
)

// ClearColor is the background behind the starfield.
var ClearColor = [3]float32{0.02, 0.02, 0.05}

// Renderer owns the GL programs and draws frames.
type Renderer struct {
	width, height int

	body *shader.Program
	line *shader.Program
}

// New loads GL function pointers, sets the fixed pipeline state and builds
// the programs. Must be called after the GL context is current.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{}
	r.body = buildProgram("body", glsl.BodyVertex, glsl.BodyFragment)
	r.line = buildProgram("line", glsl.LineVertex, glsl.LineFragment)

	r.body.Use()
	r.body.SetInt("uTexture", 0)
	gl.UseProgram(0)

	r.Resize(width, height)
	return r, nil
}

// buildProgram logs shader errors and keeps whatever program GL produced.
func buildProgram(name, vert, frag string) *shader.Program {
	p, err := shader.Build(name, vert, frag)
	if err != nil {
		logger.Error("shader build failed", zap.String("program", name), zap.Error(err))
	} else {
		logger.Debug("shader built", zap.String("program", name), zap.Uint32("id", p.ID))
	}
	return p
}

// Close releases the programs.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.body.Delete()
	r.line.Delete()
}

// Resize sets the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows. Call it
// after Draw and before the buffers are swapped.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.width, r.height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
