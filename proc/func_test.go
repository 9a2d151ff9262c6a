// SPDX-License-Identifier: Unlicense OR MIT

package proc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"gioui.org/glproc/proc/proctest"
)

func newTestTable(l *proctest.Loader, rec *proctest.Recorder) *Table {
	t := NewTable(newTestResolver(l))
	t.SetBinder(rec)
	return t
}

func TestFuncForwardsCall(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{"glClear": 0x1000}}
	rec := new(proctest.Recorder)
	tab := newTestTable(l, rec)
	glClear := Declare[func(mask uint32)](tab, "glClear", "GL_VERSION_1_0", "GL_ES_VERSION_2_0")

	if l.Calls("glClear") != 0 {
		t.Fatal("declaring a function resolved it")
	}
	glClear.Get()(0x00004000)
	glClear.Get()(0x00000100)

	if n := l.Calls("glClear"); n != 1 {
		t.Errorf("looked up %d times, want 1", n)
	}
	if n := rec.Binds(0x1000); n != 1 {
		t.Errorf("bound %d times, want 1", n)
	}
	want := []proctest.Call{
		{Addr: 0x1000, Args: []any{uint32(0x00004000)}},
		{Addr: 0x1000, Args: []any{uint32(0x00000100)}},
	}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestFuncReturnValue(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{"glIsEnabled": 0x10}}
	rec := &proctest.Recorder{Impls: map[uintptr]any{
		0x10: func(c uint32) bool { return c == 0xbe2 },
	}}
	tab := newTestTable(l, rec)
	isEnabled := Declare[func(uint32) bool](tab, "glIsEnabled", "GL_VERSION_1_0")
	if !isEnabled.Get()(0xbe2) {
		t.Error("return value not forwarded")
	}
	if isEnabled.Get()(0xb71) {
		t.Error("return value not forwarded")
	}
}

func TestFuncUnsupportedPanics(t *testing.T) {
	l := &proctest.Loader{}
	tab := newTestTable(l, new(proctest.Recorder))
	f := Declare[func()](tab, "glResolveMultisampleFramebufferAPPLE", "GL_APPLE_framebuffer_multisample")
	if f.Available() {
		t.Fatal("missing function reported available")
	}
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrUnsupported) {
			t.Fatalf("got panic %v, want ErrUnsupported", err)
		}
		if !strings.Contains(err.Error(), "glResolveMultisampleFramebufferAPPLE") {
			t.Errorf("panic message %q lacks the function name", err)
		}
		if n := l.Calls("glResolveMultisampleFramebufferAPPLE"); n != 1 {
			t.Errorf("looked up %d times, want 1", n)
		}
	}()
	f.Get()()
	t.Fatal("call to a missing function returned")
}

func TestFuncBindError(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{"glFlush": 0x30}}
	tab := NewTable(newTestResolver(l))
	bindErr := errors.New("no calling convention")
	tab.SetBinder(BinderFunc(func(fptr any, addr uintptr) error {
		return bindErr
	}))
	f := Declare[func()](tab, "glFlush", "GL_VERSION_1_0")
	if _, err := f.Load(); !errors.Is(err, bindErr) {
		t.Errorf("got %v, want %v", err, bindErr)
	}
}

func TestTableUse(t *testing.T) {
	first := &proctest.Loader{Addrs: map[string]uintptr{"glFinish": 0x1}}
	second := &proctest.Loader{Addrs: map[string]uintptr{"glFinish": 0x2}}
	rec := new(proctest.Recorder)
	tab := newTestTable(first, rec)
	tab.Use(newTestResolver(second))
	f := Declare[func()](tab, "glFinish", "GL_VERSION_1_0")
	f.Get()()
	if first.Calls("glFinish") != 0 || second.Calls("glFinish") != 1 {
		t.Error("Use did not replace the resolver")
	}
	if calls := rec.Calls(); len(calls) != 1 || calls[0].Addr != 0x2 {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestCheck(t *testing.T) {
	l := &proctest.Loader{Addrs: map[string]uintptr{"glEnable": 0x1}}
	tab := newTestTable(l, new(proctest.Recorder))
	Declare[func(uint32)](tab, "glEnable", "GL_VERSION_1_0")
	Declare[func(uint32)](tab, "glBlendBarrierKHR", "GL_KHR_blend_equation_advanced")
	Declare[func()](tab, "glFrameTerminatorGREMEDY", "GL_GREMEDY_frame_terminator")

	if err := Check(tab, "glEnable"); err != nil {
		t.Errorf("Check(glEnable) = %v", err)
	}
	err := Check(tab)
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), err)
	}
	for _, e := range errs {
		if !errors.Is(e, ErrUnsupported) {
			t.Errorf("unexpected error %v", e)
		}
	}
	if err := Check(tab, "glUndeclared"); err == nil {
		t.Error("Check accepted an undeclared function")
	}
	want := []string{"glBlendBarrierKHR", "glEnable", "glFrameTerminatorGREMEDY"}
	var got []string
	for _, s := range tab.Funcs() {
		got = append(got, s.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("funcs (-want +got):\n%s", diff)
	}
}

func TestDeclareMisuse(t *testing.T) {
	tab := NewTable(NewResolver(func(string) uintptr { return 0 }))
	Declare[func()](tab, "glFlush")
	for name, declare := range map[string]func(){
		"duplicate": func() { Declare[func()](tab, "glFlush") },
		"non-func":  func() { Declare[int](tab, "glFinish") },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: Declare did not panic", name)
				}
			}()
			declare()
		}()
	}
}
