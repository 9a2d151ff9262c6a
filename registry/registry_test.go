// SPDX-License-Identifier: Unlicense OR MIT

package registry

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func loadTestRegistry(t *testing.T) *Registry {
	t.Helper()
	f, err := os.Open("testdata/gl.xml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	reg, err := Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func commandNames(sel *Selection) []string {
	var names []string
	for _, c := range sel.Commands {
		names = append(names, c.Name)
	}
	return names
}

func TestParse(t *testing.T) {
	reg := loadTestRegistry(t)
	if n := len(reg.Commands); n != 12 {
		t.Errorf("parsed %d commands, want 12", n)
	}
	if n := len(reg.Features); n != 7 {
		t.Errorf("parsed %d features, want 7", n)
	}
	c, ok := reg.Command("glShaderSource")
	if !ok {
		t.Fatal("glShaderSource missing")
	}
	if n := len(c.Params); n != 4 {
		t.Errorf("glShaderSource has %d params, want 4", n)
	}
	if _, ok := reg.Command("glNotAFunction"); ok {
		t.Error("unknown command found")
	}
	ext := reg.Extensions[2]
	if ext.Name != "GL_KHR_debug" || !ext.Supports("gles2") || ext.Supports("gles1") {
		t.Errorf("extension %s supported by %q", ext.Name, ext.Supported)
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse(strings.NewReader("<registry><commands>")); err == nil {
		t.Error("truncated registry parsed")
	}
	const nameless = `<registry><commands><command><proto>void</proto></command></commands></registry>`
	if _, err := Parse(strings.NewReader(nameless)); err == nil {
		t.Error("command without a name parsed")
	}
}

func TestSelect(t *testing.T) {
	reg := loadTestRegistry(t)
	tests := []struct {
		name  string
		f     Filter
		cmds  []string
		enums []string
	}{
		{
			name:  "core 3.3",
			f:     Filter{API: "gl", Version: "3.3", Profile: "core"},
			cmds:  []string{"glBindAttribLocation", "glClear", "glFenceSync", "glGetString", "glMapBuffer", "glShaderSource"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_VERSION"},
		},
		{
			name:  "compatibility 3.3",
			f:     Filter{API: "gl", Version: "3.3", Profile: "compatibility"},
			cmds:  []string{"glBegin", "glBindAttribLocation", "glClear", "glFenceSync", "glGetString", "glMapBuffer", "glShaderSource"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_VERSION"},
		},
		{
			name:  "core 4.3",
			f:     Filter{API: "gl", Version: "4.3", Profile: "core"},
			cmds:  []string{"glBindAttribLocation", "glClear", "glDebugMessageCallback", "glDispatchCompute", "glFenceSync", "glGetString", "glMapBuffer", "glShaderSource"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_VERSION"},
		},
		{
			name:  "gl 1.0",
			f:     Filter{API: "gl", Version: "1.0"},
			cmds:  []string{"glBegin", "glClear", "glGetString"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_VERSION"},
		},
		{
			name:  "es 3.1 with extensions",
			f:     Filter{API: "gles2", Version: "3.1", Extensions: []string{"GL_OES_vertex_array_object", "GL_KHR_debug"}},
			cmds:  []string{"glBindVertexArrayOES", "glClear", "glDebugMessageCallbackKHR", "glDispatchCompute", "glGetString"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_TEXTURE_2D"},
		},
		{
			name:  "es 2.0 all extensions",
			f:     Filter{API: "gles2", Version: "2.0", Extensions: []string{"*"}},
			cmds:  []string{"glBindVertexArrayOES", "glClear", "glDebugMessageCallbackKHR", "glGetString"},
			enums: []string{"GL_ACTIVE_PROGRAM_EXT", "GL_COLOR_BUFFER_BIT", "GL_TEXTURE_2D"},
		},
		{
			name:  "core 3.3 with debug",
			f:     Filter{API: "gl", Version: "3.3", Profile: "core", Extensions: []string{"GL_KHR_debug"}},
			cmds:  []string{"glBindAttribLocation", "glClear", "glDebugMessageCallback", "glFenceSync", "glGetString", "glMapBuffer", "glShaderSource"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_VERSION"},
		},
		{
			name:  "compatibility 3.3 with debug",
			f:     Filter{API: "gl", Version: "3.3", Profile: "compatibility", Extensions: []string{"GL_KHR_debug"}},
			cmds:  []string{"glBegin", "glBindAttribLocation", "glClear", "glDebugMessageCallback", "glFenceSync", "glGetPointerv", "glGetString", "glMapBuffer", "glShaderSource"},
			enums: []string{"GL_COLOR_BUFFER_BIT", "GL_VERSION"},
		},
		{
			name: "everything",
			f:    Filter{},
			cmds: []string{
				"glBegin", "glBindAttribLocation", "glBindVertexArrayOES", "glClear",
				"glDebugMessageCallback", "glDebugMessageCallbackKHR", "glDispatchCompute",
				"glFenceSync", "glGetPointerv", "glGetString", "glMapBuffer", "glShaderSource",
			},
			enums: []string{"GL_ACTIVE_PROGRAM_EXT", "GL_COLOR_BUFFER_BIT", "GL_TEXTURE_2D", "GL_VERSION"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sel, err := reg.Select(test.f)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.cmds, commandNames(sel)); diff != "" {
				t.Errorf("commands (-want +got):\n%s", diff)
			}
			var enums []string
			for _, e := range sel.Enums {
				enums = append(enums, e.Name)
			}
			if diff := cmp.Diff(test.enums, enums); diff != "" {
				t.Errorf("enums (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectErrors(t *testing.T) {
	reg := loadTestRegistry(t)
	tests := []struct {
		f    Filter
		want string
	}{
		{Filter{API: "gl", Extensions: []string{"GL_OES_vertex_array_object"}}, "not supported by gl"},
		{Filter{API: "gl", Extensions: []string{"GL_ARB_compute_shader", "GL_FOO_bar"}}, "unknown extensions [GL_FOO_bar]"},
		{Filter{API: "gl", Version: "four"}, "invalid version"},
		{Filter{Version: "4.6"}, "version 4.6 requires an API"},
	}
	for _, test := range tests {
		_, err := reg.Select(test.f)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("Select(%+v) = %v, want error containing %q", test.f, err, test.want)
		}
	}
}

func TestSelectTags(t *testing.T) {
	reg := loadTestRegistry(t)
	// Tags don't depend on the filter.
	sel, err := reg.Select(Filter{API: "gl", Version: "4.6", Profile: "core"})
	if err != nil {
		t.Fatal(err)
	}
	tags := make(map[string][]string)
	for _, c := range sel.Commands {
		tags[c.Name] = c.Tags
	}
	want := map[string][]string{
		"glClear":                {"GL_VERSION_1_0", "GL_ES_VERSION_2_0"},
		"glDispatchCompute":      {"GL_VERSION_4_3", "GL_ES_VERSION_3_1", "GL_ARB_compute_shader"},
		"glDebugMessageCallback": {"GL_VERSION_4_3", "GL_KHR_debug"},
		"glFenceSync":            {"GL_VERSION_3_2"},
	}
	for name, w := range want {
		if diff := cmp.Diff(w, tags[name]); diff != "" {
			t.Errorf("%s tags (-want +got):\n%s", name, diff)
		}
	}
}

func TestSelectEnumAPI(t *testing.T) {
	reg := loadTestRegistry(t)
	for api, want := range map[string]string{"gl": "0x8259", "gles2": "0x8B8D", "": "0x8259"} {
		f := Filter{API: api, Extensions: []string{"GL_EXT_separate_shader_objects"}}
		sel, err := reg.Select(f)
		if err != nil {
			t.Fatal(err)
		}
		var got string
		for _, e := range sel.Enums {
			if e.Name == "GL_ACTIVE_PROGRAM_EXT" {
				got = e.Value
				if e.GoName != "ACTIVE_PROGRAM_EXT" {
					t.Errorf("GoName = %s", e.GoName)
				}
			}
		}
		if got != want {
			t.Errorf("api %q: GL_ACTIVE_PROGRAM_EXT = %q, want %q", api, got, want)
		}
	}
}

func TestEntries(t *testing.T) {
	reg := loadTestRegistry(t)
	sel, err := reg.Select(Filter{})
	if err != nil {
		t.Fatal(err)
	}
	entries := make(map[string]Entry)
	for _, e := range sel.Commands {
		entries[e.Name] = e
	}
	want := []Entry{
		{
			Name:   "glGetString",
			GoName: "GetString",
			Params: []Arg{{Name: "name", GoName: "name", CType: "GLenum", GoType: "Enum"}},
			Return: "*uint8",
			Tags:   []string{"GL_VERSION_1_0", "GL_ES_VERSION_2_0"},
		},
		{
			Name:   "glShaderSource",
			GoName: "ShaderSource",
			Params: []Arg{
				{Name: "shader", GoName: "shader", CType: "GLuint", GoType: "uint32"},
				{Name: "count", GoName: "count", CType: "GLsizei", GoType: "int32"},
				{Name: "string", GoName: "xstring", CType: "const GLchar *const*", GoType: "**uint8"},
				{Name: "length", GoName: "length", CType: "const GLint *", GoType: "*int32"},
			},
			Tags: []string{"GL_VERSION_2_0"},
		},
		{
			Name:   "glBindAttribLocation",
			GoName: "BindAttribLocation",
			Params: []Arg{
				{Name: "program", GoName: "program", CType: "GLuint", GoType: "uint32"},
				{Name: "index", GoName: "index", CType: "GLuint", GoType: "uint32"},
				{Name: "name", GoName: "name", CType: "const GLchar *", GoType: "string"},
			},
			Tags: []string{"GL_VERSION_2_0"},
		},
		{
			Name:   "glMapBuffer",
			GoName: "MapBuffer",
			Params: []Arg{
				{Name: "target", GoName: "target", CType: "GLenum", GoType: "Enum"},
				{Name: "access", GoName: "access", CType: "GLenum", GoType: "Enum"},
			},
			Return: "unsafe.Pointer",
			Tags:   []string{"GL_VERSION_1_5"},
		},
		{
			Name:   "glDebugMessageCallback",
			GoName: "DebugMessageCallback",
			Params: []Arg{
				{Name: "callback", GoName: "callback", CType: "GLDEBUGPROC", GoType: "uintptr"},
				{Name: "userParam", GoName: "userParam", CType: "const void *", GoType: "unsafe.Pointer"},
			},
			Tags: []string{"GL_VERSION_4_3", "GL_KHR_debug"},
		},
		{
			Name:   "glGetPointerv",
			GoName: "GetPointerv",
			Params: []Arg{
				{Name: "pname", GoName: "pname", CType: "GLenum", GoType: "Enum"},
				{Name: "params", GoName: "params", CType: "void **", GoType: "*unsafe.Pointer"},
			},
			Tags: []string{"GL_VERSION_4_3", "GL_KHR_debug"},
		},
		{
			Name:   "glFenceSync",
			GoName: "FenceSync",
			Params: []Arg{
				{Name: "condition", GoName: "condition", CType: "GLenum", GoType: "Enum"},
				{Name: "flags", GoName: "flags", CType: "GLbitfield", GoType: "Bitfield"},
			},
			Return: "Sync",
			Tags:   []string{"GL_VERSION_3_2"},
		},
	}
	for _, w := range want {
		if diff := cmp.Diff(w, entries[w.Name]); diff != "" {
			t.Errorf("%s (-want +got):\n%s", w.Name, diff)
		}
	}
}

func TestGoType(t *testing.T) {
	tests := []struct {
		c       string
		isParam bool
		len     string
		want    string
	}{
		{"void", false, "", ""},
		{"GLboolean", false, "", "Boolean"},
		{"const GLchar *", true, "", "string"},
		{"const GLchar *", true, "bufSize", "*uint8"},
		{"GLchar *", true, "", "*uint8"},
		{"const GLchar *", false, "", "*uint8"},
		{"const GLuint *", true, "n", "*uint32"},
		{"GLintptr", true, "", "int"},
		{"GLuint64", true, "", "uint64"},
		{"GLeglImageOES", true, "", "unsafe.Pointer"},
		{"struct _cl_context *", true, "", "unsafe.Pointer"},
		{"void **", true, "", "*unsafe.Pointer"},
		{"const void *const*", true, "", "*unsafe.Pointer"},
	}
	for _, test := range tests {
		got, err := goType(test.c, test.isParam, test.len)
		if err != nil {
			t.Errorf("goType(%q): %v", test.c, err)
			continue
		}
		if got != test.want {
			t.Errorf("goType(%q) = %q, want %q", test.c, got, test.want)
		}
	}
	for _, bad := range []string{"void", "GLmystery", "struct _cl_event", "GLint ***"} {
		if got, err := goType(bad, true, ""); err == nil {
			t.Errorf("goType(%q) = %q, want error", bad, got)
		}
	}
}

func TestGoNames(t *testing.T) {
	names := map[string]string{
		"glClear":             "Clear",
		"GL_COLOR_BUFFER_BIT": "COLOR_BUFFER_BIT",
		"GL_2D":               "GL_2D",
		"GL_3_BYTES":          "GL_3_BYTES",
		"wglSwapBuffers":      "wglSwapBuffers",
	}
	for in, want := range names {
		if got := goName(in); got != want {
			t.Errorf("goName(%s) = %s, want %s", in, got, want)
		}
	}
	idents := map[string]string{"type": "xtype", "func": "xfunc", "string": "xstring", "mask": "mask"}
	for in, want := range idents {
		if got := goIdent(in); got != want {
			t.Errorf("goIdent(%s) = %s, want %s", in, got, want)
		}
	}
}
