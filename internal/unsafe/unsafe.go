// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"fmt"
	"reflect"
	"unsafe"
)

// SliceOf returns a byte view of n bytes at a (native) pointer.
func SliceOf(p *byte, n int) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice(p, n)
}

// GoString converts a NUL-terminated C string to a Go string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// Pointer returns the address of the data referenced by v, which must be
// a pointer, a slice, an unsafe.Pointer or a uintptr offset into a bound
// buffer object. Empty slices and nil map to nil.
func Pointer(v any) unsafe.Pointer {
	if v == nil {
		return nil
	}
	switch v := v.(type) {
	case unsafe.Pointer:
		return v
	case uintptr:
		return unsafe.Pointer(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		return rv.UnsafePointer()
	case reflect.Slice:
		if rv.Len() == 0 {
			return nil
		}
		return rv.Index(0).Addr().UnsafePointer()
	default:
		panic(fmt.Errorf("unsafe: unsupported pointer value of type %T", v))
	}
}
