// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gl exposes the OpenGL and OpenGL ES entry points as Go functions.

Every function is looked up through the platform loader on its first call
and bound once; later calls go straight to the driver. A function the
driver doesn't provide panics with a *proc.UnsupportedError when called,
so code using optional entry points should test them with Available or
Require first, or with Context.Supports for a version or extension.

Like the C API, the functions must be called from the thread the GL
context is current on.
*/
package gl

import (
	"unsafe"

	"gioui.org/glproc/internal/loader"
	gunsafe "gioui.org/glproc/internal/unsafe"
	"gioui.org/glproc/proc"
)

//go:generate go run gioui.org/glproc/cmd/glgen -registry gl.xml -pkg gl -o .

type (
	Enum     uint32
	Bitfield uint32
	Boolean  uint8
	// Sync is a GLsync fence handle.
	Sync uintptr
)

var procs = proc.NewTable(proc.NewResolver(loader.Lookup))

// Use makes the package resolve functions through r instead of the
// system OpenGL libraries, for example with a lookup from the window
// toolkit that created the context. It must be called before the first
// GL call.
func Use(r *proc.Resolver) {
	procs.Use(r)
}

// Resolver returns the Resolver in use.
func Resolver() *proc.Resolver {
	return procs.Resolver()
}

// Available reports whether the named function, such as
// "glDispatchCompute", can be called.
func Available(name string) bool {
	return procs.Load(name) == nil
}

// Require loads the named functions, or every function of the package if
// none are named, and returns an error describing each one that is
// missing.
func Require(names ...string) error {
	return proc.Check(procs, names...)
}

// Funcs lists the functions of the package with their compatibility
// tags.
func Funcs() []proc.Symbol {
	return procs.Funcs()
}

// GoString converts a string returned by GetString or GetStringi.
func GoString(s *uint8) string {
	return gunsafe.GoString(s)
}

// Ptr returns the address of the pointer or slice v for the
// unsafe.Pointer arguments of buffer and texture uploads. A uintptr
// is converted as is, for offsets into a bound buffer.
func Ptr(v any) unsafe.Pointer {
	return gunsafe.Pointer(v)
}

// MapBufferBytes maps length bytes at offset of the buffer bound to
// target with MapBufferRange and returns them as a slice, or nil if the
// mapping failed. The slice must not be used after UnmapBuffer.
func MapBufferBytes(target Enum, offset, length int, access Bitfield) []byte {
	p := MapBufferRange(target, offset, length, access)
	return gunsafe.SliceOf((*byte)(p), length)
}

// Bool converts a Go bool.
func Bool(b bool) Boolean {
	if b {
		return TRUE
	}
	return FALSE
}
