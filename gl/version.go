// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
	"strings"
)

// Version is an OpenGL or OpenGL ES version.
type Version struct {
	Major, Minor int
	ES           bool
}

// ParseVersion parses the GL_VERSION string of a context.
func ParseVersion(s string) (Version, error) {
	var v Version
	es := s
	// OpenGL ES 1.x names its Common or Common-Lite profile.
	for _, p := range []string{"OpenGL ES-CM ", "OpenGL ES-CL "} {
		if rest, ok := strings.CutPrefix(s, p); ok {
			es = "OpenGL ES " + rest
		}
	}
	if _, err := fmt.Sscanf(es, "OpenGL ES %d.%d", &v.Major, &v.Minor); err == nil {
		v.ES = true
		return v, nil
	} else if _, err := fmt.Sscanf(s, "WebGL %d.%d", &v.Major, &v.Minor); err == nil {
		// WebGL major version v corresponds to OpenGL ES version v + 1
		v.Major++
		v.ES = true
		return v, nil
	} else if _, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor); err == nil {
		return v, nil
	}
	return Version{}, fmt.Errorf("gl: failed to parse OpenGL version (%s)", s)
}

// AtLeast reports whether v is major.minor or later.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || v.Major == major && v.Minor >= minor
}

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// Context describes the current GL context.
type Context struct {
	Version  Version
	Vendor   string
	Renderer string
	// Extensions is the set of advertised extension names.
	Extensions map[string]bool
}

var errNoContext = errors.New("gl: no current context")

// QueryContext reads the version and extensions of the current context.
func QueryContext() (*Context, error) {
	s := GetString(VERSION)
	if s == nil {
		return nil, errNoContext
	}
	v, err := ParseVersion(GoString(s))
	if err != nil {
		return nil, err
	}
	c := &Context{
		Version:    v,
		Vendor:     GoString(GetString(VENDOR)),
		Renderer:   GoString(GetString(RENDERER)),
		Extensions: make(map[string]bool),
	}
	if v.AtLeast(3, 0) && Available("glGetStringi") {
		// Core profiles no longer accept GL_EXTENSIONS in glGetString.
		var n int32
		GetIntegerv(NUM_EXTENSIONS, &n)
		for i := int32(0); i < n; i++ {
			if ext := GoString(GetStringi(EXTENSIONS, uint32(i))); ext != "" {
				c.Extensions[ext] = true
			}
		}
		return c, nil
	}
	for _, ext := range strings.Fields(GoString(GetString(EXTENSIONS))) {
		c.Extensions[ext] = true
	}
	return c, nil
}

// Supports reports whether the context satisfies a compatibility tag:
// a GL_VERSION_x_y, GL_VERSION_ES_CM_x_y or GL_ES_VERSION_x_y feature of
// the context's API, or an advertised extension.
func (c *Context) Supports(tag string) bool {
	var major, minor int
	if n, _ := fmt.Sscanf(tag, "GL_VERSION_ES_CM_%d_%d", &major, &minor); n == 2 {
		// OpenGL ES 2.0 and later dropped the fixed-function API.
		return c.Version.ES && c.Version.Major == 1 && c.Version.AtLeast(major, minor)
	}
	if n, _ := fmt.Sscanf(tag, "GL_ES_VERSION_%d_%d", &major, &minor); n == 2 {
		return c.Version.ES && c.Version.AtLeast(major, minor)
	}
	if n, _ := fmt.Sscanf(tag, "GL_VERSION_%d_%d", &major, &minor); n == 2 {
		return !c.Version.ES && c.Version.AtLeast(major, minor)
	}
	return c.Extensions[tag]
}

// SymbolSupported reports whether any compatibility tag of the named
// function is satisfied by c. Unlike Available, it doesn't consult the
// loader, whose answer is unreliable for functions of another API.
func (c *Context) SymbolSupported(name string) bool {
	s, ok := procs.Symbol(name)
	if !ok {
		return false
	}
	for _, t := range s.Tags {
		if c.Supports(t) {
			return true
		}
	}
	return false
}
