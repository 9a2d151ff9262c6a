// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"testing"
	"unsafe"
)

func TestGoString(t *testing.T) {
	tests := [][2]string{
		{"Hello\x00", "Hello"},
		{"\x00", ""},
		{"4.6.0 NVIDIA 535.54\x00trailing", "4.6.0 NVIDIA 535.54"},
	}
	for _, test := range tests {
		b := []byte(test[0])
		got := GoString(&b[0])
		if exp := test[1]; exp != got {
			t.Errorf("expected %q got %q", exp, got)
		}
	}
	if got := GoString(nil); got != "" {
		t.Errorf("expected empty string for nil, got %q", got)
	}
}

func TestPointer(t *testing.T) {
	floats := []float32{1, 2, 3}
	if got := Pointer(floats); got != unsafe.Pointer(&floats[0]) {
		t.Errorf("slice: got %p, want %p", got, &floats[0])
	}
	var v uint32
	if got := Pointer(&v); got != unsafe.Pointer(&v) {
		t.Errorf("pointer: got %p, want %p", got, &v)
	}
	if got := Pointer([]byte{}); got != nil {
		t.Errorf("empty slice: got %p, want nil", got)
	}
	if got := Pointer(nil); got != nil {
		t.Errorf("nil: got %p, want nil", got)
	}
}
