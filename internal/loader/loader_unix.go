// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || freebsd || linux || netbsd

package loader

import (
	"runtime"

	"github.com/ebitengine/purego"
)

const preferGetProc = false

func defaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"/System/Library/Frameworks/OpenGL.framework/OpenGL"}
	case "android":
		return []string{"libEGL.so", "libGLESv3.so", "libGLESv2.so"}
	default:
		// libglvnd layout: libGL wraps GLX, libEGL and libGLESv2
		// dispatch to the vendor library of the current context.
		return []string{"libGL.so.1", "libEGL.so.1", "libGLESv2.so.2", "libOpenGL.so.0"}
	}
}

func openLibrary(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func symbol(h uintptr, name string) uintptr {
	addr, err := purego.Dlsym(h, name)
	if err != nil {
		return 0
	}
	return addr
}

func newGetProc(addr uintptr) func(name string) uintptr {
	var getProc func(name string) uintptr
	purego.RegisterFunc(&getProc, addr)
	return getProc
}
