package gfx

// Enum is a GL enumerant.
type Enum uint32

// GL ES 2.0 enumerants used by the binder and the renderers.
const (
	Triangles      Enum = 0x0004
	Int            Enum = 0x1404
	Float          Enum = 0x1406
	ColorBufferBit Enum = 0x4000
	ArrayBuffer    Enum = 0x8892
	DynamicDraw    Enum = 0x88E8

	FragmentShader   Enum = 0x8B30
	VertexShader     Enum = 0x8B31
	FloatVec2        Enum = 0x8B50
	FloatVec3        Enum = 0x8B51
	FloatVec4        Enum = 0x8B52
	IntVec2          Enum = 0x8B53
	IntVec3          Enum = 0x8B54
	IntVec4          Enum = 0x8B55
	Bool             Enum = 0x8B56
	BoolVec2         Enum = 0x8B57
	BoolVec3         Enum = 0x8B58
	BoolVec4         Enum = 0x8B59
	FloatMat2        Enum = 0x8B5A
	FloatMat3        Enum = 0x8B5B
	FloatMat4        Enum = 0x8B5C
	Sampler2D        Enum = 0x8B5E
	SamplerCube      Enum = 0x8B60
	CompileStatus    Enum = 0x8B81
	LinkStatus       Enum = 0x8B82
	ActiveUniforms   Enum = 0x8B86
	ActiveAttributes Enum = 0x8B89
)

// Object handles. A zero Value means the object could not be created.
type (
	Program struct{ Value uint32 }
	Shader  struct{ Value uint32 }
	Buffer  struct{ Value uint32 }
)

// Attrib is a vertex attribute binding index. Negative values are invalid.
type Attrib struct{ Value int32 }

// Valid reports whether the attribute was resolved.
func (a Attrib) Valid() bool { return a.Value >= 0 }

// Location is a uniform storage location. Negative values are invalid.
type Location struct{ Value int32 }

// Valid reports whether the uniform was resolved.
func (l Location) Valid() bool { return l.Value >= 0 }

// Context is the subset of an OpenGL ES 2.0 context used by gridlife. Method
// names and semantics follow golang.org/x/mobile/gl.
type Context interface {
	CreateShader(ty Enum) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	GetActiveAttrib(p Program, index uint32) (name string, size int, ty Enum)
	GetAttribLocation(p Program, name string) Attrib
	GetActiveUniform(p Program, index uint32) (name string, size int, ty Enum)
	GetUniformLocation(p Program, name string) Location

	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BufferData(target Enum, src []byte, usage Enum)
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int)

	Uniform1f(dst Location, v float32)
	Uniform1fv(dst Location, src []float32)
	Uniform2fv(dst Location, src []float32)
	Uniform3fv(dst Location, src []float32)
	Uniform4fv(dst Location, src []float32)
	Uniform1i(dst Location, v int)
	Uniform1iv(dst Location, src []int32)
	Uniform2iv(dst Location, src []int32)
	Uniform3iv(dst Location, src []int32)
	Uniform4iv(dst Location, src []int32)
	UniformMatrix2fv(dst Location, src []float32)
	UniformMatrix3fv(dst Location, src []float32)
	UniformMatrix4fv(dst Location, src []float32)

	Viewport(x, y, width, height int)
	ClearColor(red, green, blue, alpha float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
}
