// SPDX-License-Identifier: Unlicense OR MIT

//go:build (darwin || linux || windows) && (amd64 || arm64)

package proc

import (
	"strings"
	"testing"

	"github.com/ebitengine/purego"
	"github.com/google/go-cmp/cmp"

	"gioui.org/glproc/proc/proctest"
)

type bitfield uint32

// manyArgs needs more argument slots than the C calling convention
// wrappers provide.
type manyArgs func(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15 uintptr)

func TestNativeBinderCallsAddress(t *testing.T) {
	var got []uintptr
	addr := purego.NewCallback(func(mask uintptr) uintptr {
		got = append(got, mask)
		return 0
	})
	l := &proctest.Loader{Addrs: map[string]uintptr{"glClear": addr}}
	tab := NewTable(newTestResolver(l))
	glClear := Declare[func(mask bitfield)](tab, "glClear", "GL_VERSION_1_0")

	glClear.Get()(0x4000)
	glClear.Get()(0x0100)
	if diff := cmp.Diff([]uintptr{0x4000, 0x0100}, got); diff != "" {
		t.Errorf("native calls (-want +got):\n%s", diff)
	}
	if n := l.Calls("glClear"); n != 1 {
		t.Errorf("looked up %d times, want 1", n)
	}
}

func TestNativeBinderResult(t *testing.T) {
	addr := purego.NewCallback(func(target, index uintptr) uintptr {
		return target<<8 | index
	})
	l := &proctest.Loader{Addrs: map[string]uintptr{"glGetIndexed": addr}}
	tab := NewTable(newTestResolver(l))
	get := Declare[func(target, index uint32) uint32](tab, "glGetIndexed")
	if got := get.Get()(0x12, 0x34); got != 0x1234 {
		t.Errorf("got %#x, want 0x1234", got)
	}
}

func TestNativeBinderRejectsSignature(t *testing.T) {
	addr := purego.NewCallback(func() uintptr { return 0 })
	tests := []struct {
		name string
		fptr any
		want string
	}{
		{"complex", new(func(complex128)), "unsupported kind complex128"},
		{"arguments", new(manyArgs), "too many arguments"},
	}
	for _, test := range tests {
		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%s: Bind panicked: %v", test.name, r)
				}
			}()
			err = NativeBinder.Bind(test.fptr, addr)
		}()
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: got error %v, want %q", test.name, err, test.want)
		}
	}

	l := &proctest.Loader{Addrs: map[string]uintptr{"glComplex": addr}}
	tab := NewTable(newTestResolver(l))
	f := Declare[func(complex128)](tab, "glComplex")
	_, err := f.Load()
	if err == nil || !strings.Contains(err.Error(), "proc: bind glComplex") {
		t.Fatalf("Load returned %v, want a bind error", err)
	}
	if f.Available() {
		t.Error("function with an unbindable signature reported available")
	}
}
