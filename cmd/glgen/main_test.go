// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/glproc/registry"
)

func loadRegistry(t *testing.T, path string) *registry.Registry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	reg, err := registry.Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	return reg
}

func selectTest(t *testing.T, f registry.Filter) *registry.Selection {
	t.Helper()
	sel, err := loadRegistry(t, "../../registry/testdata/gl.xml").Select(f)
	if err != nil {
		t.Fatal(err)
	}
	return sel
}

func TestFuncs(t *testing.T) {
	g := &generator{Registry: "gl.xml", Package: "gl"}
	sel := selectTest(t, registry.Filter{API: "gles2", Version: "3.1", Extensions: []string{"GL_KHR_debug"}})
	src, err := g.funcs(sel)
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	for _, want := range []string{
		"// Code generated by glgen from gl.xml. DO NOT EDIT.\n\npackage gl\n",
		"import (\n\t\"unsafe\"\n\n\t\"gioui.org/glproc/proc\"\n)\n",
		`var fnClear = proc.Declare[func(mask Bitfield)](procs, "glClear", "GL_VERSION_1_0", "GL_ES_VERSION_2_0")

// Clear calls glClear.
func Clear(mask Bitfield) {
	fnClear.Get()(mask)
}
`,
		`var fnGetString = proc.Declare[func(name Enum) *uint8](procs, "glGetString", "GL_VERSION_1_0", "GL_ES_VERSION_2_0")

// GetString calls glGetString.
func GetString(name Enum) *uint8 {
	return fnGetString.Get()(name)
}
`,
		"func DebugMessageCallbackKHR(callback uintptr, userParam unsafe.Pointer) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated funcs lack\n%s\ngot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "func Begin(") {
		t.Error("generated a gl-only command for gles2")
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "funcs.go", src, 0); err != nil {
		t.Error(err)
	}
}

func TestFuncsWithoutUnsafe(t *testing.T) {
	g := &generator{Registry: "gl.xml", Package: "gl"}
	src, err := g.funcs(selectTest(t, registry.Filter{API: "gl", Version: "1.0"}))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(src, []byte(`"unsafe"`)) {
		t.Errorf("unsafe imported without pointer arguments:\n%s", src)
	}
}

func TestFuncsEmpty(t *testing.T) {
	g := &generator{Registry: "gl.xml", Package: "gl"}
	if _, err := g.funcs(new(registry.Selection)); err == nil {
		t.Error("empty selection generated")
	}
}

func TestEnums(t *testing.T) {
	g := &generator{Registry: "gl.xml", Package: "gles"}
	src, err := g.enums(selectTest(t, registry.Filter{API: "gl", Version: "1.0"}))
	if err != nil {
		t.Fatal(err)
	}
	want := `package gles

const (
	COLOR_BUFFER_BIT = 0x00004000
	VERSION          = 0x1F02
)
`
	if !strings.HasSuffix(string(src), want) {
		t.Errorf("got\n%s\nwant suffix\n%s", src, want)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	g := &generator{Registry: "gl.xml", Package: "gl"}
	if err := g.writeFiles(dir, selectTest(t, registry.Filter{})); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"funcs.go", "enums.go"} {
		if _, err := parser.ParseFile(token.NewFileSet(), filepath.Join(dir, name), nil, 0); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

// TestGeneratedPackage checks that package gl is up to date with its
// registry.
func TestGeneratedPackage(t *testing.T) {
	sel, err := loadRegistry(t, "../../gl/gl.xml").Select(registry.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	g := &generator{Registry: "gl.xml", Package: "gl"}
	for name, gen := range map[string]func(*registry.Selection) ([]byte, error){
		"funcs.go": g.funcs,
		"enums.go": g.enums,
	} {
		want, err := gen(sel)
		if err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(filepath.Join("../../gl", name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("gl/%s is stale; run go generate in gl", name)
		}
	}
}
