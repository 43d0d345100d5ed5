//go:build xmobile

package gfx

import "golang.org/x/mobile/gl"

// FromMobile adapts a golang.org/x/mobile GL context.
func FromMobile(ctx gl.Context) Context {
	return mobile{ctx}
}

type mobile struct {
	gl gl.Context
}

func toProgram(p Program) gl.Program { return gl.Program{Init: p.Value != 0, Value: p.Value} }
func toShader(s Shader) gl.Shader    { return gl.Shader{Value: s.Value} }
func toBuffer(b Buffer) gl.Buffer    { return gl.Buffer{Value: b.Value} }
func toAttrib(a Attrib) gl.Attrib    { return gl.Attrib{Value: uint(a.Value)} }
func toUniform(l Location) gl.Uniform {
	return gl.Uniform{Value: l.Value}
}

func (m mobile) CreateShader(ty Enum) Shader {
	return Shader{Value: m.gl.CreateShader(gl.Enum(ty)).Value}
}

func (m mobile) ShaderSource(s Shader, src string) { m.gl.ShaderSource(toShader(s), src) }
func (m mobile) CompileShader(s Shader)            { m.gl.CompileShader(toShader(s)) }
func (m mobile) GetShaderInfoLog(s Shader) string  { return m.gl.GetShaderInfoLog(toShader(s)) }
func (m mobile) DeleteShader(s Shader)             { m.gl.DeleteShader(toShader(s)) }

func (m mobile) GetShaderi(s Shader, pname Enum) int {
	return m.gl.GetShaderi(toShader(s), gl.Enum(pname))
}

func (m mobile) CreateProgram() Program {
	p := m.gl.CreateProgram()
	if !p.Init {
		return Program{}
	}
	return Program{Value: p.Value}
}

func (m mobile) AttachShader(p Program, s Shader)    { m.gl.AttachShader(toProgram(p), toShader(s)) }
func (m mobile) LinkProgram(p Program)               { m.gl.LinkProgram(toProgram(p)) }
func (m mobile) GetProgramInfoLog(p Program) string { return m.gl.GetProgramInfoLog(toProgram(p)) }
func (m mobile) DeleteProgram(p Program)             { m.gl.DeleteProgram(toProgram(p)) }
func (m mobile) UseProgram(p Program)                { m.gl.UseProgram(toProgram(p)) }

func (m mobile) GetProgrami(p Program, pname Enum) int {
	return m.gl.GetProgrami(toProgram(p), gl.Enum(pname))
}

func (m mobile) GetActiveAttrib(p Program, index uint32) (string, int, Enum) {
	name, size, ty := m.gl.GetActiveAttrib(toProgram(p), index)
	return name, size, Enum(ty)
}

func (m mobile) GetAttribLocation(p Program, name string) Attrib {
	// x/mobile reports a missing attribute as the unsigned form of -1.
	return Attrib{Value: int32(m.gl.GetAttribLocation(toProgram(p), name).Value)}
}

func (m mobile) GetActiveUniform(p Program, index uint32) (string, int, Enum) {
	name, size, ty := m.gl.GetActiveUniform(toProgram(p), index)
	return name, size, Enum(ty)
}

func (m mobile) GetUniformLocation(p Program, name string) Location {
	return Location{Value: m.gl.GetUniformLocation(toProgram(p), name).Value}
}

func (m mobile) CreateBuffer() Buffer { return Buffer{Value: m.gl.CreateBuffer().Value} }
func (m mobile) DeleteBuffer(b Buffer) { m.gl.DeleteBuffer(toBuffer(b)) }

func (m mobile) BindBuffer(target Enum, b Buffer) { m.gl.BindBuffer(gl.Enum(target), toBuffer(b)) }

func (m mobile) BufferData(target Enum, src []byte, usage Enum) {
	m.gl.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (m mobile) EnableVertexAttribArray(a Attrib) { m.gl.EnableVertexAttribArray(toAttrib(a)) }

func (m mobile) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	m.gl.VertexAttribPointer(toAttrib(dst), size, gl.Enum(ty), normalized, stride, offset)
}

func (m mobile) Uniform1f(dst Location, v float32)        { m.gl.Uniform1f(toUniform(dst), v) }
func (m mobile) Uniform1fv(dst Location, src []float32)   { m.gl.Uniform1fv(toUniform(dst), src) }
func (m mobile) Uniform2fv(dst Location, src []float32)   { m.gl.Uniform2fv(toUniform(dst), src) }
func (m mobile) Uniform3fv(dst Location, src []float32)   { m.gl.Uniform3fv(toUniform(dst), src) }
func (m mobile) Uniform4fv(dst Location, src []float32)   { m.gl.Uniform4fv(toUniform(dst), src) }
func (m mobile) Uniform1i(dst Location, v int)            { m.gl.Uniform1i(toUniform(dst), v) }
func (m mobile) Uniform1iv(dst Location, src []int32)     { m.gl.Uniform1iv(toUniform(dst), src) }
func (m mobile) Uniform2iv(dst Location, src []int32)     { m.gl.Uniform2iv(toUniform(dst), src) }
func (m mobile) Uniform3iv(dst Location, src []int32)     { m.gl.Uniform3iv(toUniform(dst), src) }
func (m mobile) Uniform4iv(dst Location, src []int32)     { m.gl.Uniform4iv(toUniform(dst), src) }
func (m mobile) UniformMatrix2fv(dst Location, src []float32) {
	m.gl.UniformMatrix2fv(toUniform(dst), src)
}
func (m mobile) UniformMatrix3fv(dst Location, src []float32) {
	m.gl.UniformMatrix3fv(toUniform(dst), src)
}
func (m mobile) UniformMatrix4fv(dst Location, src []float32) {
	m.gl.UniformMatrix4fv(toUniform(dst), src)
}

func (m mobile) Viewport(x, y, width, height int) { m.gl.Viewport(x, y, width, height) }

func (m mobile) ClearColor(red, green, blue, alpha float32) {
	m.gl.ClearColor(red, green, blue, alpha)
}

func (m mobile) Clear(mask Enum) { m.gl.Clear(gl.Enum(mask)) }

func (m mobile) DrawArrays(mode Enum, first, count int) {
	m.gl.DrawArrays(gl.Enum(mode), first, count)
}
