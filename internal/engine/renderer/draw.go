package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/lighting"
)

// Draw renders f into the back buffer.
func (r *Renderer) Draw(f *Frame) {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.body.Use()
	r.body.SetMat4("uView", f.View)
	r.body.SetMat4("uProjection", f.Projection)
	r.body.SetVec3("uLightPos", f.Light.Position)
	r.body.SetVec3("uViewPos", f.Eye)
	gl.ActiveTexture(gl.TEXTURE0)

	if f.Sky != nil {
		r.drawSky(f)
	}

	r.body.SetVec3("uLightColor", f.Light.Color)
	for _, it := range DrawOrder(f.Items) {
		r.drawItem(it)
	}

	if f.Orbits != nil {
		r.line.Use()
		r.line.SetMat4("uMVP", f.Projection.Mul4(f.View))
		r.line.SetVec3("uColor", f.Orbits.Color)
		for _, m := range f.Orbits.Meshes {
			m.Draw()
		}
	}

	if f.HUD != nil {
		gl.Disable(gl.DEPTH_TEST)
		r.line.Use()
		r.line.SetMat4("uMVP", HUDMatrix(r.width, r.height, f.HUD.Inset, f.HUD.Radius))
		r.line.SetVec3("uColor", f.HUD.Color)
		f.HUD.Mesh.Draw()
		gl.Enable(gl.DEPTH_TEST)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// drawSky draws the inside of the star sphere behind everything else.
func (r *Renderer) drawSky(f *Frame) {
	gl.DepthMask(false)
	gl.CullFace(gl.FRONT)

	r.body.SetVec3("uLightColor", f.Sky.LightColor)
	r.setMaterial(f.Sky.Material, f.Sky.Texture)
	r.body.SetMat4("uModel", SkyModel(f.Eye))
	f.Sky.Mesh.Draw()

	gl.CullFace(gl.BACK)
	gl.DepthMask(true)
}

func (r *Renderer) drawItem(it Item) {
	if it.Material.Translucent {
		// Seen from both sides; must not hide what is drawn after it.
		gl.Disable(gl.CULL_FACE)
		gl.DepthMask(false)
		defer func() {
			gl.DepthMask(true)
			gl.Enable(gl.CULL_FACE)
		}()
	}
	r.setMaterial(it.Material, it.Texture)
	r.body.SetMat4("uModel", it.Model)
	it.Mesh.Draw()
}

func (r *Renderer) setMaterial(m lighting.Material, tex uint32) {
	r.body.SetBool("uUseTexture", tex != 0)
	r.body.SetBool("uTranslucent", m.Translucent)
	r.body.SetVec3("uBaseColor", m.BaseColor)
	r.body.SetVec3("uEmissive", m.Emissive)
	r.body.SetFloat("uShininess", m.Shininess)
	r.body.SetFloat("uSpecular", m.Specular)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}
