// Package shader compiles GLSL programs and sets their uniforms.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked GL program with a uniform location cache.
type Program struct {
	Name string
	ID   uint32

	uniforms map[string]int32
}

// Build compiles and links a program. A compile or link failure is returned
// as an error together with a usable (if broken) program so the caller can
// log it and keep running; drawing with it just produces nothing.
func Build(name, vertexSrc, fragmentSrc string) (*Program, error) {
	p := &Program{Name: name, uniforms: make(map[string]int32)}

	var errs []string
	vert, err := compile(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, "vertex: "+err.Error())
	}
	frag, err := compile(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, "fragment: "+err.Error())
	}

	p.ID = gl.CreateProgram()
	gl.AttachShader(p.ID, vert)
	gl.AttachShader(p.ID, frag)
	gl.LinkProgram(p.ID)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(p.ID, gl.INFO_LOG_LENGTH, &n)
		errs = append(errs, "link: "+infoLog(n, func(buf *uint8) {
			gl.GetProgramInfoLog(p.ID, n, nil, buf)
		}))
	}

	if len(errs) > 0 {
		return p, fmt.Errorf("shader %s: %s", name, strings.Join(errs, "; "))
	}
	return p, nil
}

func compile(source string, kind uint32) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		return sh, fmt.Errorf("%s", infoLog(n, func(buf *uint8) {
			gl.GetShaderInfoLog(sh, n, nil, buf)
		}))
	}
	return sh, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "no info log"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return trimLog(buf)
}

// trimLog strips the trailing NUL and whitespace GL leaves in info logs.
func trimLog(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Uniform returns the cached location of name, -1 if inactive.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Uniform(name), v[0], v[1], v[2])
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Uniform(name), v)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Uniform(name), i)
}
