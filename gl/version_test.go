// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"4.6.0 NVIDIA 535.154.05", Version{Major: 4, Minor: 6}},
		{"3.3 (Core Profile) Mesa 23.1.4", Version{Major: 3, Minor: 3}},
		{"OpenGL ES 3.2 V@0502.0", Version{Major: 3, Minor: 2, ES: true}},
		{"OpenGL ES 2.0 (ANGLE 2.1.0)", Version{Major: 2, Minor: 0, ES: true}},
		{"WebGL 2.0", Version{Major: 3, Minor: 0, ES: true}},
		{"OpenGL ES-CM 1.1", Version{Major: 1, Minor: 1, ES: true}},
		{"OpenGL ES-CL 1.0 Android", Version{Major: 1, Minor: 0, ES: true}},
	}
	for _, test := range tests {
		got, err := ParseVersion(test.in)
		if err != nil {
			t.Errorf("ParseVersion(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseVersion(%q) = %v, want %v", test.in, got, test.want)
		}
	}
	for _, in := range []string{"garbage", "OpenGL ES-CM"} {
		if _, err := ParseVersion(in); err == nil {
			t.Errorf("ParseVersion accepted %q", in)
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := (Version{Major: 3, Minor: 1, ES: true}).String(); got != "OpenGL ES 3.1" {
		t.Errorf("got %q", got)
	}
	if got := (Version{Major: 4, Minor: 5}).String(); got != "OpenGL 4.5" {
		t.Errorf("got %q", got)
	}
}

func setFakeContext(t *testing.T, version string, exts ...string) {
	t.Helper()
	old := fakeContext
	fakeContext.version = version
	fakeContext.extensions = exts
	t.Cleanup(func() { fakeContext = old })
}

func TestQueryContextUnlisted(t *testing.T) {
	setFakeContext(t, "4.6.0 NVIDIA 535.154.05", "GL_KHR_debug")
	// The driver counts extensions it returns no name for.
	fakeContext.unlisted = 2
	c, err := QueryContext()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]bool{"GL_KHR_debug": true}, c.Extensions); diff != "" {
		t.Errorf("extensions (-want +got):\n%s", diff)
	}
}

func TestQueryContext(t *testing.T) {
	tests := []struct {
		version string
		exts    []string
		want    Version
	}{
		// Extensions listed through glGetStringi.
		{"4.6.0 NVIDIA 535.154.05", []string{"GL_ARB_direct_state_access", "GL_KHR_debug"}, Version{Major: 4, Minor: 6}},
		// Legacy GL_EXTENSIONS string.
		{"OpenGL ES 2.0 Mesa", []string{"GL_OES_vertex_array_object", "GL_EXT_discard_framebuffer"}, Version{Major: 2, Minor: 0, ES: true}},
	}
	for _, test := range tests {
		setFakeContext(t, test.version, test.exts...)
		c, err := QueryContext()
		if err != nil {
			t.Fatalf("%s: %v", test.version, err)
		}
		if c.Version != test.want {
			t.Errorf("%s: version %v, want %v", test.version, c.Version, test.want)
		}
		if c.Vendor != "Fake" || c.Renderer != "Recorder" {
			t.Errorf("%s: vendor %q renderer %q", test.version, c.Vendor, c.Renderer)
		}
		want := make(map[string]bool)
		for _, e := range test.exts {
			want[e] = true
		}
		if diff := cmp.Diff(want, c.Extensions); diff != "" {
			t.Errorf("%s: extensions (-want +got):\n%s", test.version, diff)
		}
	}
}

func TestQueryContextNone(t *testing.T) {
	setFakeContext(t, "")
	if _, err := QueryContext(); err == nil {
		t.Error("QueryContext succeeded without a context")
	}
}

func TestSupports(t *testing.T) {
	desktop := &Context{
		Version:    Version{Major: 4, Minor: 3},
		Extensions: map[string]bool{"GL_ARB_direct_state_access": true},
	}
	es := &Context{
		Version:    Version{Major: 3, Minor: 0, ES: true},
		Extensions: map[string]bool{"GL_EXT_disjoint_timer_query": true},
	}
	es1 := &Context{Version: Version{Major: 1, Minor: 1, ES: true}}
	tests := []struct {
		c    *Context
		tag  string
		want bool
	}{
		{desktop, "GL_VERSION_1_0", true},
		{desktop, "GL_VERSION_4_3", true},
		{desktop, "GL_VERSION_4_5", false},
		{desktop, "GL_ES_VERSION_2_0", false},
		{desktop, "GL_ARB_direct_state_access", true},
		{desktop, "GL_KHR_debug", false},
		{es, "GL_ES_VERSION_2_0", true},
		{es, "GL_ES_VERSION_3_1", false},
		{es, "GL_VERSION_1_0", false},
		{es, "GL_EXT_disjoint_timer_query", true},
		{es, "GL_VERSION_ES_CM_1_0", false},
		{desktop, "GL_VERSION_ES_CM_1_0", false},
		{es1, "GL_VERSION_ES_CM_1_0", true},
		{es1, "GL_ES_VERSION_2_0", false},
		{es1, "GL_VERSION_1_0", false},
	}
	for _, test := range tests {
		if got := test.c.Supports(test.tag); got != test.want {
			t.Errorf("%v.Supports(%s) = %v, want %v", test.c.Version, test.tag, got, test.want)
		}
	}
}

func TestSymbolSupported(t *testing.T) {
	es2 := &Context{
		Version:    Version{Major: 2, Minor: 0, ES: true},
		Extensions: map[string]bool{"GL_OES_vertex_array_object": true},
	}
	gl45 := &Context{Version: Version{Major: 4, Minor: 5}}
	es1 := &Context{Version: Version{Major: 1, Minor: 1, ES: true}}
	tests := []struct {
		c    *Context
		name string
		want bool
	}{
		{es2, "glClear", true},
		{es2, "glBindVertexArrayOES", true},
		{es2, "glBindVertexArray", false},
		{es2, "glDispatchCompute", false},
		{gl45, "glDispatchCompute", true},
		{gl45, "glCreateBuffers", true},
		{gl45, "glBindVertexArrayOES", false},
		{gl45, "glNotAFunction", false},
		{gl45, "glAlphaFuncx", false},
		{es1, "glAlphaFuncx", true},
		{es1, "glClear", true},
		{es1, "glUseProgram", false},
	}
	for _, test := range tests {
		if got := test.c.SymbolSupported(test.name); got != test.want {
			t.Errorf("%v.SymbolSupported(%s) = %v, want %v", test.c.Version, test.name, got, test.want)
		}
	}
}
