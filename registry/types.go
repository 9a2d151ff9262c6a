// SPDX-License-Identifier: Unlicense OR MIT

package registry

import (
	"fmt"
	"go/token"
	"strings"
)

// scalars maps GL typedefs to the Go types of package gl.
var scalars = map[string]string{
	"GLenum":     "Enum",
	"GLbitfield": "Bitfield",
	"GLboolean":  "Boolean",
	"GLsync":     "Sync",

	"GLbyte":    "int8",
	"GLubyte":   "uint8",
	"GLchar":    "uint8",
	"GLcharARB": "uint8",
	"GLshort":   "int16",
	"GLushort":  "uint16",
	"GLhalf":    "uint16",
	"GLhalfNV":  "uint16",
	"GLint":     "int32",
	"GLuint":    "uint32",
	"GLsizei":   "int32",
	"GLfixed":   "int32",
	"GLclampx":  "int32",
	"GLfloat":   "float32",
	"GLclampf":  "float32",
	"GLdouble":  "float64",
	"GLclampd":  "float64",

	"GLintptr":         "int",
	"GLsizeiptr":       "int",
	"GLintptrARB":      "int",
	"GLsizeiptrARB":    "int",
	"GLvdpauSurfaceNV": "int",
	"GLint64":          "int64",
	"GLint64EXT":       "int64",
	"GLuint64":         "uint64",
	"GLuint64EXT":      "uint64",
	"GLhandleARB":      "uint32",

	// Callbacks are passed as C function addresses.
	"GLDEBUGPROC":          "uintptr",
	"GLDEBUGPROCARB":       "uintptr",
	"GLDEBUGPROCKHR":       "uintptr",
	"GLDEBUGPROCAMD":       "uintptr",
	"GLVULKANPROCNV":       "uintptr",
	"GLeglImageOES":        "unsafe.Pointer",
	"GLeglClientBufferEXT": "unsafe.Pointer",
}

// goType maps a C parameter or return type to Go. lenAttr is the
// param len attribute; strings without one are passed as Go strings.
func goType(c string, isParam bool, lenAttr string) (string, error) {
	stars := strings.Count(c, "*")
	isConst := false
	base := ""
	for _, f := range strings.Fields(strings.ReplaceAll(c, "*", " ")) {
		switch f {
		case "const":
			isConst = true
		case "struct":
			base = "struct"
		default:
			if base == "" {
				base = f
			}
		}
	}
	if base == "struct" || strings.HasPrefix(base, "_cl_") {
		if stars == 0 {
			return "", fmt.Errorf("struct value %q", c)
		}
		return "unsafe.Pointer", nil
	}
	switch stars {
	case 0:
		if base == "void" {
			if isParam {
				return "", fmt.Errorf("void parameter")
			}
			return "", nil
		}
	case 1:
		if base == "void" {
			return "unsafe.Pointer", nil
		}
		if isParam && isConst && lenAttr == "" && (base == "GLchar" || base == "GLcharARB") {
			return "string", nil
		}
	case 2:
		if base == "void" {
			return "*unsafe.Pointer", nil
		}
	default:
		return "", fmt.Errorf("unsupported indirection %q", c)
	}
	s, ok := scalars[base]
	if !ok {
		return "", fmt.Errorf("unknown type %q", base)
	}
	return strings.Repeat("*", stars) + s, nil
}

// goIdent returns a Go identifier for a C parameter name.
func goIdent(name string) string {
	if token.IsKeyword(name) || name == "string" {
		return "x" + name
	}
	return name
}

// goName strips the API prefix from a command or enum name.
func goName(name string) string {
	switch {
	case strings.HasPrefix(name, "gl"):
		return name[2:]
	case strings.HasPrefix(name, "GL_"):
		s := name[3:]
		if s != "" && s[0] >= '0' && s[0] <= '9' {
			// GL_2D and friends.
			return name
		}
		return s
	}
	return name
}
