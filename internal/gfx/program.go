package gfx

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gopkg.in/errgo.v1"
)

// CompileShader creates and compiles a shader of the given type. The shader
// is deleted again when compilation fails.
func CompileShader(gl Context, ty Enum, src string) (Shader, error) {
	s := gl.CreateShader(ty)
	if s.Value == 0 {
		return Shader{}, errgo.WithCausef(nil, ErrCreate, "cannot create shader of type 0x%x", uint32(ty))
	}
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if gl.GetShaderi(s, CompileStatus) == 0 {
		log := gl.GetShaderInfoLog(s)
		gl.DeleteShader(s)
		return Shader{}, errgo.WithCausef(nil, ErrCompile, "compile shader: %s", log)
	}
	return s, nil
}

// LinkProgram links a vertex and a fragment shader into a program. The
// program is deleted again when linking fails.
func LinkProgram(gl Context, vs, fs Shader) (Program, error) {
	p := gl.CreateProgram()
	if p.Value == 0 {
		return Program{}, errgo.WithCausef(nil, ErrCreate, "cannot create program")
	}
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)
	if gl.GetProgrami(p, LinkStatus) == 0 {
		log := gl.GetProgramInfoLog(p)
		gl.DeleteProgram(p)
		return Program{}, errgo.WithCausef(nil, ErrLink, "link program: %s", log)
	}
	return p, nil
}

// ProgramOptions names the shader sources and vertex buffers of a program.
type ProgramOptions struct {
	VertexShader   string
	FragmentShader string
	// Buffers are created and recorded in ProgramInfo.Buffers by name.
	Buffers []string
}

// LoadProgram fetches both shader sources, compiles, links and binds them.
// Sources are fetched concurrently; every GL call happens on the calling
// goroutine.
func LoadProgram(ctx context.Context, gl Context, loader SourceLoader, opts ProgramOptions) (*ProgramInfo, error) {
	var vsrc, fsrc string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		vsrc, err = loader.LoadSource(gctx, opts.VertexShader)
		return err
	})
	g.Go(func() (err error) {
		fsrc, err = loader.LoadSource(gctx, opts.FragmentShader)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errgo.WithCausef(err, ErrSource, "load shaders")
	}

	vs, err := CompileShader(gl, VertexShader, vsrc)
	if err != nil {
		return nil, errgo.WithCausef(err, errgo.Cause(err), "%s", opts.VertexShader)
	}
	fs, err := CompileShader(gl, FragmentShader, fsrc)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, errgo.WithCausef(err, errgo.Cause(err), "%s", opts.FragmentShader)
	}
	p, err := LinkProgram(gl, vs, fs)
	// Shaders are no longer needed once linked.
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	if err != nil {
		return nil, errgo.Mask(err, isSetupError)
	}

	info, err := Bind(gl, p)
	if err != nil {
		gl.DeleteProgram(p)
		return nil, errgo.Mask(err, isSetupError)
	}
	for _, name := range opts.Buffers {
		b := gl.CreateBuffer()
		if b.Value == 0 {
			for _, created := range info.Buffers {
				gl.DeleteBuffer(created)
			}
			gl.DeleteProgram(p)
			return nil, errgo.WithCausef(nil, ErrBuffer, "cannot create buffer %q", name)
		}
		info.Buffers[name] = b
	}
	logger.Infof("loaded program %s + %s", opts.VertexShader, opts.FragmentShader)
	return info, nil
}
