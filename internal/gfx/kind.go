package gfx

// Kind is the closed set of uniform variable types the binder can upload.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindVec2
	KindVec3
	KindVec4
	KindInt
	KindIVec2
	KindIVec3
	KindIVec4
	KindBool
	KindBVec2
	KindBVec3
	KindBVec4
	KindMat2
	KindMat3
	KindMat4
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindFloat:   "float",
	KindVec2:    "vec2",
	KindVec3:    "vec3",
	KindVec4:    "vec4",
	KindInt:     "int",
	KindIVec2:   "ivec2",
	KindIVec3:   "ivec3",
	KindIVec4:   "ivec4",
	KindBool:    "bool",
	KindBVec2:   "bvec2",
	KindBVec3:   "bvec3",
	KindBVec4:   "bvec4",
	KindMat2:    "mat2",
	KindMat3:    "mat3",
	KindMat4:    "mat4",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// KindOf maps a GL type enumerant onto a Kind. It reports false for types the
// binder cannot upload, such as samplers.
func KindOf(ty Enum) (Kind, bool) {
	switch ty {
	case Float:
		return KindFloat, true
	case FloatVec2:
		return KindVec2, true
	case FloatVec3:
		return KindVec3, true
	case FloatVec4:
		return KindVec4, true
	case Int:
		return KindInt, true
	case IntVec2:
		return KindIVec2, true
	case IntVec3:
		return KindIVec3, true
	case IntVec4:
		return KindIVec4, true
	case Bool:
		return KindBool, true
	case BoolVec2:
		return KindBVec2, true
	case BoolVec3:
		return KindBVec3, true
	case BoolVec4:
		return KindBVec4, true
	case FloatMat2:
		return KindMat2, true
	case FloatMat3:
		return KindMat3, true
	case FloatMat4:
		return KindMat4, true
	}
	return KindInvalid, false
}

// Components returns the number of scalars in one element of the kind.
func (k Kind) Components() int {
	switch k {
	case KindFloat, KindInt, KindBool:
		return 1
	case KindVec2, KindIVec2, KindBVec2:
		return 2
	case KindVec3, KindIVec3, KindBVec3:
		return 3
	case KindVec4, KindIVec4, KindBVec4, KindMat2:
		return 4
	case KindMat3:
		return 9
	case KindMat4:
		return 16
	}
	return 0
}

// Integer reports whether the kind is uploaded from int32 data.
func (k Kind) Integer() bool {
	switch k {
	case KindInt, KindIVec2, KindIVec3, KindIVec4, KindBool, KindBVec2, KindBVec3, KindBVec4:
		return true
	}
	return false
}
