// SPDX-License-Identifier: Unlicense OR MIT

package loader

import (
	"errors"
	"testing"
)

func TestValidProcAddress(t *testing.T) {
	tests := []struct {
		addr  uintptr
		valid bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{3, false},
		{^uintptr(0), false},
		{4, true},
		{0x7ff6a0001000, true},
	}
	for _, test := range tests {
		if got := validProcAddress(test.addr); got != test.valid {
			t.Errorf("validProcAddress(%#x) = %v, want %v", test.addr, got, test.valid)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("libglproc-does-not-exist.so.42", "glproc-missing.dll")
	if !errors.Is(err, ErrNoLoader) {
		t.Errorf("got %v, want ErrNoLoader", err)
	}
}

func TestProcAddressOrder(t *testing.T) {
	var calls []string
	l := &Library{
		getProc: func(name string) uintptr {
			calls = append(calls, name)
			if name == "glSpecializeShaderARB" {
				return 0x500
			}
			// Some drivers return 1, 2 or 3 instead of NULL.
			return 2
		},
	}
	if addr := l.ProcAddress("glSpecializeShaderARB"); addr != 0x500 {
		t.Errorf("got %#x, want 0x500", addr)
	}
	if addr := l.ProcAddress("glNotAFunction"); addr != 0 {
		t.Errorf("sentinel address %#x leaked through", addr)
	}
	if len(calls) != 2 {
		t.Errorf("window system lookup called %d times, want 2", len(calls))
	}
}
