// SPDX-License-Identifier: Unlicense OR MIT

package loader

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// wglGetProcAddress only knows functions beyond OpenGL 1.1; the rest are
// exported by opengl32.dll itself.
const preferGetProc = true

func defaultLibraries() []string {
	return []string{"opengl32.dll"}
}

func openLibrary(name string) (uintptr, error) {
	h, err := windows.LoadLibraryEx(name, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return 0, fmt.Errorf("loader: failed to load %s: %v", name, err)
	}
	return uintptr(h), nil
}

func symbol(h uintptr, name string) uintptr {
	addr, err := windows.GetProcAddress(windows.Handle(h), name)
	if err != nil {
		return 0
	}
	return addr
}

func newGetProc(addr uintptr) func(name string) uintptr {
	return func(name string) uintptr {
		cname, err := windows.BytePtrFromString(name)
		if err != nil {
			return 0
		}
		r, _, _ := syscall.SyscallN(addr, uintptr(unsafe.Pointer(cname)))
		issue34474KeepAlive(cname)
		return r
	}
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}
