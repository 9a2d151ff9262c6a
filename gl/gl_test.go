// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"

	"gioui.org/glproc/proc"
	"gioui.org/glproc/proc/proctest"
)

const (
	addrClear        = 0x1000
	addrGetString    = 0x1001
	addrGetStringi   = 0x1002
	addrGetIntegerv  = 0x1003
	addrIsEnabled    = 0x1004
	addrClearColor   = 0x1005
	addrBindTexture  = 0x1006
	addrShaderSource = 0x1007
	addrMapBuffer    = 0x1008
)

// fakeContext backs the string queries of the recorded driver.
var fakeContext struct {
	version    string
	extensions []string
	// unlisted is the number of extensions counted by
	// GL_NUM_EXTENSIONS beyond those in extensions.
	unlisted int
}

// fakeBuffer is the storage of the buffer bound to ARRAY_BUFFER.
var fakeBuffer [64]byte

var (
	fakeLoader = &proctest.Loader{Addrs: map[string]uintptr{
		"glClear":          addrClear,
		"glGetString":      addrGetString,
		"glGetStringi":     addrGetStringi,
		"glGetIntegerv":    addrGetIntegerv,
		"glIsEnabled":      addrIsEnabled,
		"glClearColor":     addrClearColor,
		"glBindTexture":    addrBindTexture,
		"glShaderSource":   addrShaderSource,
		"glMapBufferRange": addrMapBuffer,
	}}
	fakeDriver = &proctest.Recorder{Impls: map[uintptr]any{
		addrGetString: func(name Enum) *uint8 {
			switch name {
			case VERSION:
				if fakeContext.version == "" {
					return nil
				}
				return cstr(fakeContext.version)
			case VENDOR:
				return cstr("Fake")
			case RENDERER:
				return cstr("Recorder")
			case EXTENSIONS:
				return cstr(strings.Join(fakeContext.extensions, " "))
			}
			return nil
		},
		addrGetStringi: func(name Enum, index uint32) *uint8 {
			if name != EXTENSIONS || int(index) >= len(fakeContext.extensions) {
				return nil
			}
			return cstr(fakeContext.extensions[index])
		},
		addrGetIntegerv: func(pname Enum, data *int32) {
			if pname == NUM_EXTENSIONS {
				*data = int32(len(fakeContext.extensions) + fakeContext.unlisted)
			}
		},
		addrIsEnabled: func(c Enum) Boolean {
			return Bool(c == BLEND)
		},
		addrMapBuffer: func(target Enum, offset, length int, access Bitfield) unsafe.Pointer {
			if target != ARRAY_BUFFER || offset < 0 || length <= 0 || offset+length > len(fakeBuffer) {
				return nil
			}
			return unsafe.Pointer(&fakeBuffer[offset])
		},
	}}
)

func cstr(s string) *uint8 {
	b := append([]byte(s), 0)
	return &b[0]
}

func TestMain(m *testing.M) {
	procs.SetBinder(fakeDriver)
	Use(proc.NewResolver(fakeLoader.Lookup, proc.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))))
	os.Exit(m.Run())
}

func callsSince(n int) []proctest.Call {
	return fakeDriver.Calls()[n:]
}

func TestClear(t *testing.T) {
	n := len(fakeDriver.Calls())
	Clear(COLOR_BUFFER_BIT)
	Clear(COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT)
	want := []proctest.Call{
		{Addr: addrClear, Args: []any{Bitfield(0x4000)}},
		{Addr: addrClear, Args: []any{Bitfield(0x4100)}},
	}
	if diff := cmp.Diff(want, callsSince(n)); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if got := fakeLoader.Calls("glClear"); got != 1 {
		t.Errorf("glClear looked up %d times, want 1", got)
	}
	if got := fakeDriver.Binds(addrClear); got != 1 {
		t.Errorf("glClear bound %d times, want 1", got)
	}
}

func TestForwarding(t *testing.T) {
	n := len(fakeDriver.Calls())
	ClearColor(0.25, 0.5, 0.75, 1)
	BindTexture(TEXTURE_2D, 7)
	src := cstr("void main() {}")
	ShaderSource(3, 1, &src, nil)
	want := []proctest.Call{
		{Addr: addrClearColor, Args: []any{float32(0.25), float32(0.5), float32(0.75), float32(1)}},
		{Addr: addrBindTexture, Args: []any{Enum(0x0DE1), uint32(7)}},
		{Addr: addrShaderSource, Args: []any{uint32(3), int32(1), &src, (*int32)(nil)}},
	}
	if diff := cmp.Diff(want, callsSince(n)); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if IsEnabled(BLEND) != TRUE {
		t.Error("IsEnabled(BLEND) didn't return the driver result")
	}
	if IsEnabled(DEPTH_TEST) != FALSE {
		t.Error("IsEnabled(DEPTH_TEST) didn't return the driver result")
	}
}

func TestUnsupported(t *testing.T) {
	if Available("glDispatchCompute") {
		t.Fatal("glDispatchCompute available without a driver entry point")
	}
	if !Available("glClear") {
		t.Error("glClear unavailable")
	}
	if Available("glNotAFunction") {
		t.Error("undeclared function reported available")
	}
	err := Require("glClear", "glDispatchCompute", "glMemoryBarrier")
	if !errors.Is(err, proc.ErrUnsupported) {
		t.Fatalf("Require returned %v, want ErrUnsupported", err)
	}
	for _, name := range []string{"glDispatchCompute", "glMemoryBarrier"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Require error %q doesn't name %s", err, name)
		}
	}
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, proc.ErrUnsupported) {
			t.Fatalf("DispatchCompute panicked with %v, want ErrUnsupported", err)
		}
		if want := "unsupported GL function: glDispatchCompute"; !strings.HasPrefix(err.Error(), want) {
			t.Errorf("panic %q, want prefix %q", err, want)
		}
	}()
	DispatchCompute(1, 1, 1)
}

func TestFuncs(t *testing.T) {
	var found bool
	for _, s := range Funcs() {
		if s.Name != "glClear" {
			continue
		}
		found = true
		if diff := cmp.Diff([]string{"GL_VERSION_1_0", "GL_VERSION_ES_CM_1_0", "GL_ES_VERSION_2_0"}, s.Tags); diff != "" {
			t.Errorf("glClear tags (-want +got):\n%s", diff)
		}
	}
	if !found {
		t.Error("glClear not declared")
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != TRUE || Bool(false) != FALSE {
		t.Error("Bool mismatch")
	}
}

func TestCoreFuncs(t *testing.T) {
	tags := make(map[string][]string)
	for _, s := range Funcs() {
		tags[s.Name] = s.Tags
	}
	want := map[string][]string{
		"glVertexAttribDivisor":     {"GL_VERSION_3_3", "GL_ES_VERSION_3_0"},
		"glDrawArraysIndirect":      {"GL_VERSION_4_0", "GL_ES_VERSION_3_1"},
		"glBufferStorage":           {"GL_VERSION_4_4"},
		"glSpecializeShader":        {"GL_VERSION_4_6"},
		"glOrthox":                  {"GL_VERSION_ES_CM_1_0"},
		"glPrimitiveBoundingBox":    {"GL_ES_VERSION_3_2"},
		"glProgramUniformMatrix4dv": {"GL_VERSION_4_1"},
	}
	for name, w := range want {
		got, ok := tags[name]
		if !ok {
			t.Errorf("%s not declared", name)
			continue
		}
		if diff := cmp.Diff(w, got); diff != "" {
			t.Errorf("%s tags (-want +got):\n%s", name, diff)
		}
	}
}

func TestMapBufferBytes(t *testing.T) {
	t.Cleanup(func() { fakeBuffer = [64]byte{} })
	b := MapBufferBytes(ARRAY_BUFFER, 16, 8, MAP_WRITE_BIT)
	if len(b) != 8 {
		t.Fatalf("mapped %d bytes, want 8", len(b))
	}
	copy(b, "vertices")
	if got := string(fakeBuffer[16:24]); got != "vertices" {
		t.Errorf("buffer holds %q, want the bytes written through the mapping", got)
	}
	if b := MapBufferBytes(ELEMENT_ARRAY_BUFFER, 0, 8, MAP_READ_BIT); b != nil {
		t.Errorf("failed mapping returned %d bytes, want nil", len(b))
	}
}
