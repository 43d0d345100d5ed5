package gfx

import "gopkg.in/errgo.v1"

// Setup error causes. Every error returned by this package carries one of
// these as its errgo cause.
var (
	ErrSource          = errgo.New("shader source unavailable")
	ErrCreate          = errgo.New("cannot create GL object")
	ErrCompile         = errgo.New("shader compilation failed")
	ErrLink            = errgo.New("program link failed")
	ErrBuffer          = errgo.New("cannot create buffer")
	ErrQuery           = errgo.New("cannot query active variable")
	ErrLocation        = errgo.New("variable has no location")
	ErrUnsupportedType = errgo.New("unsupported uniform type")
)

func isSetupError(err error) bool {
	switch err {
	case ErrSource, ErrCreate, ErrCompile, ErrLink, ErrBuffer, ErrQuery, ErrLocation, ErrUnsupportedType:
		return true
	}
	return false
}
