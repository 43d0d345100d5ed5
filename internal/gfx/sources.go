package gfx

import (
	"context"
	"embed"
	"io/fs"
	"os"

	"gopkg.in/errgo.v1"
)

// Names of the built-in board shaders.
const (
	BoardVertexShader   = "board.vert"
	BoardFragmentShader = "board.frag"
)

// Attribute, uniform and buffer names used by the board shaders.
const (
	PositionAttribute = "position"
	ColorAttribute    = "vertexColor"
	ResolutionUniform = "resolution"
	PositionBuffer    = "vertex"
	ColorBuffer       = "color"
)

// BoardProgram describes the built-in board program.
var BoardProgram = ProgramOptions{
	VertexShader:   BoardVertexShader,
	FragmentShader: BoardFragmentShader,
	Buffers:        []string{PositionBuffer, ColorBuffer},
}

// SourceLoader fetches shader source text by name.
type SourceLoader interface {
	LoadSource(ctx context.Context, name string) (string, error)
}

//go:embed shaders
var embedded embed.FS

// FSLoader reads shader sources from a file system.
type FSLoader struct {
	FS fs.FS
}

// LoadSource implements SourceLoader.
func (l FSLoader) LoadSource(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errgo.Mask(err)
	}
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return "", errgo.Notef(err, "read shader %q", name)
	}
	return string(data), nil
}

// Embedded returns a loader for the shaders compiled into the binary.
func Embedded() SourceLoader {
	sub, err := fs.Sub(embedded, "shaders")
	if err != nil {
		panic(err)
	}
	return FSLoader{FS: sub}
}

// Dir returns a loader reading shaders from a directory, for iterating on
// shader code without rebuilding.
func Dir(dir string) SourceLoader {
	return FSLoader{FS: os.DirFS(dir)}
}
