// Package gfx links GLSL programs and binds their active attributes and
// uniforms to typed setters.
package gfx

import (
	"fmt"
	"strings"

	"github.com/juju/loggo"
	"gopkg.in/errgo.v1"
)

var logger = loggo.GetLogger("gridlife.gfx")

// AttribOptions describes the vertex buffer layout feeding one attribute.
type AttribOptions struct {
	Buffer    Buffer
	Size      int // components per vertex, 1 to 4
	Type      Enum
	Normalize bool
	Stride    int
	Offset    int
}

// Attribute is the setter registered for one active vertex attribute.
type Attribute struct {
	Name     string
	Location Attrib
	Type     Enum
	Size     int

	gl Context
}

// Set binds o.Buffer as the array buffer, enables the attribute and points it
// at the buffer. A zero Type defaults to Float.
func (a *Attribute) Set(o AttribOptions) {
	ty := o.Type
	if ty == 0 {
		ty = Float
	}
	a.gl.BindBuffer(ArrayBuffer, o.Buffer)
	a.gl.EnableVertexAttribArray(a.Location)
	a.gl.VertexAttribPointer(a.Location, o.Size, ty, o.Normalize, o.Stride, o.Offset)
}

// Uniform is the setter registered for one active uniform. Array uniforms are
// registered under their base name and upload Size elements at once.
type Uniform struct {
	Name     string
	Kind     Kind
	Size     int
	Location Location

	floats func([]float32)
	ints   func([]int32)
}

// Floats uploads float, vector or matrix data. Matrices are column major and
// never transposed. It panics when the uniform holds integer data or when v
// is not a whole number of elements, at most Size of them.
func (u *Uniform) Floats(v ...float32) {
	if u.Kind.Integer() {
		panic("gfx: " + u.Kind.String() + " uniform " + u.Name + " takes integer data")
	}
	u.checkLen(len(v))
	u.floats(v)
}

// Ints uploads integer or boolean data. It panics when the uniform holds float
// data or when v is not a whole number of elements, at most Size of them.
func (u *Uniform) Ints(v ...int32) {
	if !u.Kind.Integer() {
		panic("gfx: " + u.Kind.String() + " uniform " + u.Name + " takes float data")
	}
	u.checkLen(len(v))
	u.ints(v)
}

func (u *Uniform) checkLen(n int) {
	per := u.Kind.Components()
	size := u.Size
	if size < 1 {
		size = 1
	}
	if n == 0 || n%per != 0 || n > per*size {
		panic(fmt.Sprintf("gfx: %s uniform %s got %d values, want a multiple of %d up to %d", u.Kind, u.Name, n, per, per*size))
	}
}

// Bools uploads boolean data as integers.
func (u *Uniform) Bools(v ...bool) {
	ints := make([]int32, len(v))
	for i, b := range v {
		if b {
			ints[i] = 1
		}
	}
	u.Ints(ints...)
}

// ProgramInfo is a linked program together with the setters for its active
// variables.
type ProgramInfo struct {
	Program    Program
	Attributes map[string]*Attribute
	Uniforms   map[string]*Uniform
	Buffers    map[string]Buffer
}

// Use makes the program current.
func (p *ProgramInfo) Use(gl Context) { gl.UseProgram(p.Program) }

// Bind enumerates the active attributes and uniforms of a linked program and
// builds a setter for each. It fails on the first variable it cannot resolve.
func Bind(gl Context, program Program) (*ProgramInfo, error) {
	info := &ProgramInfo{
		Program:    program,
		Attributes: make(map[string]*Attribute),
		Uniforms:   make(map[string]*Uniform),
		Buffers:    make(map[string]Buffer),
	}
	n := gl.GetProgrami(program, ActiveAttributes)
	for i := 0; i < n; i++ {
		a, err := bindAttribute(gl, program, uint32(i))
		if err != nil {
			return nil, errgo.Mask(err, errgo.Any)
		}
		info.Attributes[a.Name] = a
	}
	n = gl.GetProgrami(program, ActiveUniforms)
	for i := 0; i < n; i++ {
		u, err := bindUniform(gl, program, uint32(i))
		if err != nil {
			return nil, errgo.Mask(err, errgo.Any)
		}
		info.Uniforms[u.Name] = u
	}
	logger.Debugf("bound program %d: %d attributes, %d uniforms", program.Value, len(info.Attributes), len(info.Uniforms))
	return info, nil
}

func bindAttribute(gl Context, program Program, index uint32) (*Attribute, error) {
	name, size, ty := gl.GetActiveAttrib(program, index)
	if name == "" {
		return nil, errgo.WithCausef(nil, ErrQuery, "cannot query attribute %d", index)
	}
	loc := gl.GetAttribLocation(program, name)
	if !loc.Valid() {
		return nil, errgo.WithCausef(nil, ErrLocation, "attribute %q has no location", name)
	}
	return &Attribute{Name: name, Location: loc, Type: ty, Size: size, gl: gl}, nil
}

func bindUniform(gl Context, program Program, index uint32) (*Uniform, error) {
	name, size, ty := gl.GetActiveUniform(program, index)
	if name == "" {
		return nil, errgo.WithCausef(nil, ErrQuery, "cannot query uniform %d", index)
	}
	kind, ok := KindOf(ty)
	if !ok {
		return nil, errgo.WithCausef(nil, ErrUnsupportedType, "uniform %q has type 0x%x", name, uint32(ty))
	}
	array := size > 1 && strings.HasSuffix(name, "[0]")
	base := name
	if array {
		base = strings.TrimSuffix(name, "[0]")
	}
	loc := gl.GetUniformLocation(program, name)
	if !loc.Valid() {
		return nil, errgo.WithCausef(nil, ErrLocation, "uniform %q has no location", name)
	}
	u := &Uniform{Name: base, Kind: kind, Size: size, Location: loc}
	u.floats, u.ints = uniformUploader(gl, loc, kind, array)
	return u, nil
}

// uniformUploader selects the upload call for a kind. Exactly one of the
// returned functions is non-nil.
func uniformUploader(gl Context, loc Location, kind Kind, array bool) (func([]float32), func([]int32)) {
	switch kind {
	case KindFloat:
		if array {
			return func(v []float32) { gl.Uniform1fv(loc, v) }, nil
		}
		return func(v []float32) { gl.Uniform1f(loc, v[0]) }, nil
	case KindVec2:
		return func(v []float32) { gl.Uniform2fv(loc, v) }, nil
	case KindVec3:
		return func(v []float32) { gl.Uniform3fv(loc, v) }, nil
	case KindVec4:
		return func(v []float32) { gl.Uniform4fv(loc, v) }, nil
	case KindMat2:
		return func(v []float32) { gl.UniformMatrix2fv(loc, v) }, nil
	case KindMat3:
		return func(v []float32) { gl.UniformMatrix3fv(loc, v) }, nil
	case KindMat4:
		return func(v []float32) { gl.UniformMatrix4fv(loc, v) }, nil
	case KindInt:
		if array {
			return nil, func(v []int32) { gl.Uniform1iv(loc, v) }
		}
		return nil, func(v []int32) { gl.Uniform1i(loc, int(v[0])) }
	case KindBool:
		return nil, func(v []int32) { gl.Uniform1iv(loc, v) }
	case KindIVec2, KindBVec2:
		return nil, func(v []int32) { gl.Uniform2iv(loc, v) }
	case KindIVec3, KindBVec3:
		return nil, func(v []int32) { gl.Uniform3iv(loc, v) }
	case KindIVec4, KindBVec4:
		return nil, func(v []int32) { gl.Uniform4iv(loc, v) }
	}
	panic("gfx: no uploader for " + kind.String())
}
