package gfx

import "fmt"

type fakeVar struct {
	name     string
	size     int
	ty       Enum
	location int32
}

// fakeGL records calls against a single scripted program.
type fakeGL struct {
	attribs  []fakeVar
	uniforms []fakeVar

	compileFails map[Enum]string
	linkFails    string
	noShader     bool
	noProgram    bool
	noBuffer     bool
	// bufferLimit, when positive, fails CreateBuffer after that many buffers.
	bufferLimit int
	buffers     []uint32
	sources      map[Shader]string

	nextID  uint32
	calls   []string
	floats  map[string][]float32
	ints    map[string][]int32
	deleted []string
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		compileFails: make(map[Enum]string),
		sources:      make(map[Shader]string),
		floats:       make(map[string][]float32),
		ints:         make(map[string][]int32),
	}
}

func (f *fakeGL) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeGL) shaderType(s Shader) Enum {
	if s.Value%2 == 0 {
		return FragmentShader
	}
	return VertexShader
}

func (f *fakeGL) CreateShader(ty Enum) Shader {
	if f.noShader {
		return Shader{}
	}
	// Odd ids are vertex shaders and even ids fragment shaders.
	id := f.id()
	if (ty == VertexShader) != (id%2 == 1) {
		id = f.id()
	}
	return Shader{Value: id}
}

func (f *fakeGL) ShaderSource(s Shader, src string) { f.sources[s] = src }
func (f *fakeGL) CompileShader(s Shader)            { f.record("compile %d", s.Value) }

func (f *fakeGL) GetShaderi(s Shader, pname Enum) int {
	if _, ok := f.compileFails[f.shaderType(s)]; ok {
		return 0
	}
	return 1
}

func (f *fakeGL) GetShaderInfoLog(s Shader) string { return f.compileFails[f.shaderType(s)] }
func (f *fakeGL) DeleteShader(s Shader)            { f.deleted = append(f.deleted, fmt.Sprintf("shader %d", s.Value)) }

func (f *fakeGL) CreateProgram() Program {
	if f.noProgram {
		return Program{}
	}
	return Program{Value: 100}
}

func (f *fakeGL) AttachShader(p Program, s Shader) { f.record("attach %d", s.Value) }
func (f *fakeGL) LinkProgram(p Program)            { f.record("link %d", p.Value) }

func (f *fakeGL) GetProgrami(p Program, pname Enum) int {
	switch pname {
	case LinkStatus:
		if f.linkFails != "" {
			return 0
		}
		return 1
	case ActiveAttributes:
		return len(f.attribs)
	case ActiveUniforms:
		return len(f.uniforms)
	}
	panic(fmt.Sprintf("unexpected pname 0x%x", uint32(pname)))
}

func (f *fakeGL) GetProgramInfoLog(p Program) string { return f.linkFails }
func (f *fakeGL) DeleteProgram(p Program)            { f.deleted = append(f.deleted, fmt.Sprintf("program %d", p.Value)) }
func (f *fakeGL) UseProgram(p Program)               { f.record("use %d", p.Value) }

func (f *fakeGL) GetActiveAttrib(p Program, index uint32) (string, int, Enum) {
	v := f.attribs[index]
	return v.name, v.size, v.ty
}

func (f *fakeGL) GetAttribLocation(p Program, name string) Attrib {
	for _, v := range f.attribs {
		if v.name == name {
			return Attrib{Value: v.location}
		}
	}
	return Attrib{Value: -1}
}

func (f *fakeGL) GetActiveUniform(p Program, index uint32) (string, int, Enum) {
	v := f.uniforms[index]
	return v.name, v.size, v.ty
}

func (f *fakeGL) GetUniformLocation(p Program, name string) Location {
	for _, v := range f.uniforms {
		if v.name == name {
			return Location{Value: v.location}
		}
	}
	return Location{Value: -1}
}

func (f *fakeGL) CreateBuffer() Buffer {
	if f.noBuffer || (f.bufferLimit > 0 && len(f.buffers) >= f.bufferLimit) {
		return Buffer{}
	}
	b := Buffer{Value: f.id()}
	f.buffers = append(f.buffers, b.Value)
	return b
}

func (f *fakeGL) DeleteBuffer(b Buffer) { f.deleted = append(f.deleted, fmt.Sprintf("buffer %d", b.Value)) }

func (f *fakeGL) BindBuffer(target Enum, b Buffer) { f.record("bind 0x%x %d", uint32(target), b.Value) }

func (f *fakeGL) BufferData(target Enum, src []byte, usage Enum) {
	f.record("data 0x%x %d", uint32(target), len(src))
}

func (f *fakeGL) EnableVertexAttribArray(a Attrib) { f.record("enable %d", a.Value) }

func (f *fakeGL) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	f.record("pointer %d size=%d type=0x%x norm=%v stride=%d offset=%d", dst.Value, size, uint32(ty), normalized, stride, offset)
}

func (f *fakeGL) upload(call string, dst Location, v []float32) {
	f.record("%s %d", call, dst.Value)
	f.floats[call] = append([]float32(nil), v...)
}

func (f *fakeGL) uploadInts(call string, dst Location, v []int32) {
	f.record("%s %d", call, dst.Value)
	f.ints[call] = append([]int32(nil), v...)
}

func (f *fakeGL) Uniform1f(dst Location, v float32)      { f.upload("1f", dst, []float32{v}) }
func (f *fakeGL) Uniform1fv(dst Location, src []float32) { f.upload("1fv", dst, src) }
func (f *fakeGL) Uniform2fv(dst Location, src []float32) { f.upload("2fv", dst, src) }
func (f *fakeGL) Uniform3fv(dst Location, src []float32) { f.upload("3fv", dst, src) }
func (f *fakeGL) Uniform4fv(dst Location, src []float32) { f.upload("4fv", dst, src) }
func (f *fakeGL) Uniform1i(dst Location, v int)          { f.uploadInts("1i", dst, []int32{int32(v)}) }
func (f *fakeGL) Uniform1iv(dst Location, src []int32)   { f.uploadInts("1iv", dst, src) }
func (f *fakeGL) Uniform2iv(dst Location, src []int32)   { f.uploadInts("2iv", dst, src) }
func (f *fakeGL) Uniform3iv(dst Location, src []int32)   { f.uploadInts("3iv", dst, src) }
func (f *fakeGL) Uniform4iv(dst Location, src []int32)   { f.uploadInts("4iv", dst, src) }

func (f *fakeGL) UniformMatrix2fv(dst Location, src []float32) { f.upload("m2fv", dst, src) }
func (f *fakeGL) UniformMatrix3fv(dst Location, src []float32) { f.upload("m3fv", dst, src) }
func (f *fakeGL) UniformMatrix4fv(dst Location, src []float32) { f.upload("m4fv", dst, src) }

func (f *fakeGL) Viewport(x, y, width, height int) { f.record("viewport %d %d %d %d", x, y, width, height) }

func (f *fakeGL) ClearColor(red, green, blue, alpha float32) {
	f.record("clearcolor %v %v %v %v", red, green, blue, alpha)
}

func (f *fakeGL) Clear(mask Enum)                        { f.record("clear 0x%x", uint32(mask)) }
func (f *fakeGL) DrawArrays(mode Enum, first, count int) { f.record("draw 0x%x %d %d", uint32(mode), first, count) }

var _ Context = (*fakeGL)(nil)
